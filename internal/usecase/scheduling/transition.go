package scheduling

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/agenda-saas/internal/audit"
	domain "github.com/BruksfildServices01/agenda-saas/internal/domain/scheduling"
	"github.com/BruksfildServices01/agenda-saas/internal/httperr"
	"github.com/BruksfildServices01/agenda-saas/internal/models"
	"github.com/BruksfildServices01/agenda-saas/internal/timezone"
)

type TransitionStatus struct {
	store domain.Store
	cache *SnapshotCache
	audit Auditor
}

func NewTransitionStatus(
	store domain.Store,
	cache *SnapshotCache,
	audit Auditor,
) *TransitionStatus {
	return &TransitionStatus{
		store: store,
		cache: cache,
		audit: audit,
	}
}

func (uc *TransitionStatus) Execute(
	ctx context.Context,
	businessID uint,
	publicID string,
	to domain.Status,
	actorID string,
) (*models.Appointment, error) {

	if !to.Valid() {
		return nil, domain.ValidationError{Field: "status", Reason: "unknown status"}
	}

	ap, err := uc.store.GetByPublicID(ctx, businessID, publicID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Transition(ap, to, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.store.UpdateStatus(ctx, ap); err != nil {
		return nil, fmt.Errorf("scheduling: update status: %w", err)
	}

	// Cancelamento/conclusão mudam a ocupação do período
	uc.cache.ClearByPrefix(snapshotPrefix(businessID))

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		UserID:     &actorID,
		Action:     "appointment_" + string(to),
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}
