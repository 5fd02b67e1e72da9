package scheduling

import (
	"time"

	"github.com/BruksfildServices01/agenda-saas/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition aplica a mudança de status no agendamento, validando contra a
// máquina de estados e marcando os timestamps terminais.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)
	switch to {
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}
	return nil
}

// Validate checa os invariantes estruturais de um agendamento novo.
func Validate(ap *models.Appointment) error {
	if ap.PartySize <= 0 {
		return ValidationError{Field: "party_size", Reason: "must be positive"}
	}
	if !ap.EndTime.After(ap.StartTime) {
		return ValidationError{Field: "end_time", Reason: "must be after start_time"}
	}
	return nil
}
