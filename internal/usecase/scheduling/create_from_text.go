package scheduling

import (
	"context"

	domain "github.com/BruksfildServices01/agenda-saas/internal/domain/scheduling"
	"github.com/BruksfildServices01/agenda-saas/internal/models"
	"github.com/BruksfildServices01/agenda-saas/internal/nltime"
	"github.com/BruksfildServices01/agenda-saas/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateFromNaturalLanguageInput struct {
	BusinessID uint
	UserID     string

	// Texto livre do agente de voz / chatbot ("tomorrow 10 AM")
	Text     string
	Timezone string

	PartySize       int
	DurationMinutes int
}

// ======================================================
// USE CASE
// ======================================================

type CreateFromNaturalLanguage struct {
	store domain.Store
	cache *SnapshotCache
	audit Auditor
}

func NewCreateFromNaturalLanguage(
	store domain.Store,
	cache *SnapshotCache,
	audit Auditor,
) *CreateFromNaturalLanguage {
	return &CreateFromNaturalLanguage{
		store: store,
		cache: cache,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateFromNaturalLanguage) Execute(
	ctx context.Context,
	in CreateFromNaturalLanguageInput,
) (*models.Appointment, error) {

	// Falha de parse sobe direto, sem tocar a persistência
	start, err := nltime.Parse(in.Text, in.Timezone, timezone.Now())
	if err != nil {
		return nil, err
	}

	return persistAppointment(ctx, uc.store, uc.cache, uc.audit, persistInput{
		BusinessID:      in.BusinessID,
		UserID:          in.UserID,
		StartUTC:        start,
		Timezone:        in.Timezone,
		PartySize:       in.PartySize,
		DurationMinutes: in.DurationMinutes,
	})
}
