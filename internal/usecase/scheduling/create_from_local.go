package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-saas/internal/audit"
	domain "github.com/BruksfildServices01/agenda-saas/internal/domain/scheduling"
	"github.com/BruksfildServices01/agenda-saas/internal/models"
	"github.com/BruksfildServices01/agenda-saas/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateFromLocalTimeInput struct {
	BusinessID uint
	UserID     string

	// Horário de parede na zona do chamador
	Civil    timezone.CivilTime
	Timezone string

	PartySize       int
	DurationMinutes int // 0 → DefaultSlotMinutes
}

// ======================================================
// USE CASE
// ======================================================

type CreateFromLocalTime struct {
	store domain.Store
	cache *SnapshotCache
	audit Auditor
}

func NewCreateFromLocalTime(
	store domain.Store,
	cache *SnapshotCache,
	audit Auditor,
) *CreateFromLocalTime {
	return &CreateFromLocalTime{
		store: store,
		cache: cache,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateFromLocalTime) Execute(
	ctx context.Context,
	in CreateFromLocalTimeInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Normaliza para UTC (único formato persistido)
	// --------------------------------------------------
	start, err := timezone.LocalToUTC(in.Civil, in.Timezone)
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

// ======================================================
// Caminho comum de criação (local e linguagem natural)
// ======================================================

type persistInput struct {
	BusinessID      uint
	UserID          string
	StartUTC        time.Time
	Timezone        string
	PartySize       int
	DurationMinutes int
}

func persistAppointment(
	ctx context.Context,
	store domain.Store,
	snapshots *SnapshotCache,
	auditor Auditor,
	in persistInput,
) (*models.Appointment, error) {

	duration := in.DurationMinutes
	if duration <= 0 {
		duration = DefaultSlotMinutes
	}

	ap := &models.Appointment{
		PublicID:     uuid.NewString(),
		BusinessID:   in.BusinessID,
		UserID:       in.UserID,
		StartTime:    in.StartUTC,
		EndTime:      in.StartUTC.Add(time.Duration(duration) * time.Minute),
		PartySize:    in.PartySize,
		Status:       string(domain.InitialStatus()),
		UserTimezone: in.Timezone,
	}

	// --------------------------------------------------
	// 2️⃣ Invariantes estruturais
	// --------------------------------------------------
	if err := domain.Validate(ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Persistência (colaborador externo)
	// --------------------------------------------------
	if err := store.Insert(ctx, ap); err != nil {
		return nil, fmt.Errorf("scheduling: insert appointment: %w", err)
	}

	// --------------------------------------------------
	// 4️⃣ Snapshot de ocupação do período ficou velho
	// --------------------------------------------------
	snapshots.ClearByPrefix(snapshotPrefix(in.BusinessID))

	// --------------------------------------------------
	// 5️⃣ Auditoria
	// --------------------------------------------------
	auditor.Dispatch(audit.Event{
		BusinessID: in.BusinessID,
		UserID:     &in.UserID,
		Action:     "appointment_created",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}
