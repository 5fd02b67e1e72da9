package scheduling

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agenda-saas/internal/models"
)

// Store é o colaborador de persistência. Todo horário trocado aqui já está
// em UTC — a normalização acontece antes, nos usecases.
type Store interface {
	// -------- Business --------
	GetBusiness(
		ctx context.Context,
		id uint,
	) (*models.Business, error)

	// -------- Appointment --------
	Insert(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetByPublicID(
		ctx context.Context,
		businessID uint,
		publicID string,
	) (*models.Appointment, error)

	GetByBusinessAndRange(
		ctx context.Context,
		businessID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	UpdateStatus(
		ctx context.Context,
		ap *models.Appointment,
	) error
}

// CapacityProvider é o colaborador de perfil do negócio para a conta de
// ocupação.
type CapacityProvider interface {
	GetCapacity(ctx context.Context, businessID uint) (int, error)
}
