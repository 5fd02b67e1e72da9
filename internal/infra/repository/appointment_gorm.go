package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/agenda-saas/internal/domain/scheduling"
	"github.com/BruksfildServices01/agenda-saas/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Business
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBusiness(
	ctx context.Context,
	id uint,
) (*models.Business, error) {

	var biz models.Business
	if err := r.db.WithContext(ctx).First(&biz, id).Error; err != nil {
		return nil, err
	}
	return &biz, nil
}

// GetCapacity é o colaborador de perfil para a conta de ocupação.
func (r *AppointmentGormRepository) GetCapacity(
	ctx context.Context,
	businessID uint,
) (int, error) {

	biz, err := r.GetBusiness(ctx, businessID)
	if err != nil {
		return 0, err
	}
	return biz.TotalCapacity, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) Insert(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetByPublicID(
	ctx context.Context,
	businessID uint,
	publicID string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("business_id = ? AND public_id = ?", businessID, publicID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

// GetByBusinessAndRange busca por início em [start, end), ambos UTC.
func (r *AppointmentGormRepository) GetByBusinessAndRange(
	ctx context.Context,
	businessID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"business_id = ? AND start_time >= ? AND start_time < ?",
			businessID, start, end,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) UpdateStatus(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// Compile-time check
var (
	_ domain.Store            = (*AppointmentGormRepository)(nil)
	_ domain.CapacityProvider = (*AppointmentGormRepository)(nil)
)
