package scheduling

import (
	"context"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/agenda-saas/internal/domain/scheduling"
	"github.com/BruksfildServices01/agenda-saas/internal/dto"
	"github.com/BruksfildServices01/agenda-saas/internal/httperr"
	"github.com/BruksfildServices01/agenda-saas/internal/timezone"
)

type ListDay struct {
	store domain.Store
}

func NewListDay(store domain.Store) *ListDay {
	return &ListDay{store: store}
}

// Execute lista os agendamentos do dia-calendário local (leitura do
// calendário do dashboard).
func (uc *ListDay) Execute(
	ctx context.Context,
	businessID uint,
	date time.Time,
	tz string,
) ([]dto.AppointmentListDTO, error) {

	if tz == "" {
		biz, err := uc.store.GetBusiness(ctx, businessID)
		if err != nil {
			return nil, httperr.ErrBusiness("business_not_found")
		}
		tz = biz.Timezone
		if tz == "" {
			tz = timezone.DefaultTimezone
		}
	}

	loc, err := timezone.Location(tz)
	if err != nil {
		return nil, err
	}

	period := domain.Day(date, loc)

	apps, err := uc.store.GetByBusinessAndRange(
		ctx,
		businessID,
		period.Start.UTC(),
		period.End.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("scheduling: list appointments: %w", err)
	}

	out := make([]dto.AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		startLocal, _ := timezone.FormatInZone(ap.StartTime, tz, timezone.PresetMedium)
		endLocal, _ := timezone.FormatTimeOnly(ap.EndTime, tz, false)

		out = append(out, dto.AppointmentListDTO{
			PublicID:   ap.PublicID,
			StartTime:  ap.StartTime,
			EndTime:    ap.EndTime,
			StartLocal: startLocal,
			EndLocal:   endLocal,
			TzAbbr:     timezone.Abbreviation(tz, ap.StartTime),
			Status:     ap.Status,
			PartySize:  ap.PartySize,
			UserID:     ap.UserID,
		})
	}

	return out, nil
}
