package capacity

import (
	"time"

	"github.com/BruksfildServices01/agenda-saas/internal/domain/scheduling"
	"github.com/BruksfildServices01/agenda-saas/internal/models"
	"github.com/BruksfildServices01/agenda-saas/internal/timezone"
)

// Cálculo de ocupação (unidades reservadas vs. capacidade total) por dia e
// por semana. Sempre recalculado ou servido de cache — nunca persistido.

// ===============================
// Snapshot
// ===============================

type Snapshot struct {
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`

	BookedUnits   int `json:"booked_units"`
	TotalCapacity int `json:"total_capacity"`

	// nil quando a capacidade é desconhecida (<= 0) — nunca divide por zero
	Percentage *float64 `json:"percentage"`
}

// ===============================
// Faixas de ocupação
// ===============================

type Band string

const (
	BandLow     Band = "low"
	BandMedium  Band = "medium"
	BandHigh    Band = "high"
	BandUnknown Band = "unknown"
)

// Limiares fixos de apresentação: < 50 baixa, < 80 média, >= 80 alta.
func BandFor(pct *float64) Band {
	if pct == nil {
		return BandUnknown
	}

	switch {
	case *pct < 50:
		return BandLow
	case *pct < 80:
		return BandMedium
	default:
		return BandHigh
	}
}

// ===============================
// Utilização
// ===============================

// Utilization computa o snapshot do período [periodStart, periodEnd).
//
// O pertencimento ao período é decidido pelo DIA-CALENDÁRIO do início do
// agendamento visto na zona dada — não pelo instante UTC cru. Agendamento
// perto da meia-noite UTC pode cair em outro dia local; é por isso que a
// zona é entrada obrigatória.
func Utilization(
	appointments []models.Appointment,
	totalCapacity int,
	periodStart time.Time,
	periodEnd time.Time,
	tz string,
) (Snapshot, error) {

	loc, err := timezone.Location(tz)
	if err != nil {
		return Snapshot{}, err
	}

	startDay := localDay(periodStart, loc)
	endDay := localDay(periodEnd, loc)

	booked := 0
	for _, ap := range appointments {
		if ap.Status == string(scheduling.StatusCancelled) {
			continue
		}

		day := localDay(ap.StartTime, loc)
		if day.Before(startDay) || !day.Before(endDay) {
			continue
		}

		// party_size ausente/negativo conta zero
		if ap.PartySize > 0 {
			booked += ap.PartySize
		}
	}

	snap := Snapshot{
		PeriodStart:   periodStart,
		PeriodEnd:     periodEnd,
		BookedUnits:   booked,
		TotalCapacity: totalCapacity,
	}

	// capacidade <= 0 é "desconhecida", degradado e não erro
	if totalCapacity > 0 {
		pct := float64(booked) / float64(totalCapacity) * 100
		snap.Percentage = &pct
	}

	return snap, nil
}

// WeekUtilization compõe sete chamadas diárias e soma. Semana parcial não
// tem tratamento especial: o chamador fornece os limites exatos.
func WeekUtilization(
	appointments []models.Appointment,
	totalCapacity int,
	weekStart time.Time,
	tz string,
) (Snapshot, error) {

	loc, err := timezone.Location(tz)
	if err != nil {
		return Snapshot{}, err
	}

	dayStart := localDay(weekStart, loc)
	booked := 0

	for i := 0; i < 7; i++ {
		ds := dayStart.AddDate(0, 0, i)
		de := dayStart.AddDate(0, 0, i+1)

		day, err := Utilization(appointments, totalCapacity, ds, de, tz)
		if err != nil {
			return Snapshot{}, err
		}
		booked += day.BookedUnits
	}

	snap := Snapshot{
		PeriodStart:   dayStart,
		PeriodEnd:     dayStart.AddDate(0, 0, 7),
		BookedUnits:   booked,
		TotalCapacity: totalCapacity,
	}

	// capacidade semanal = 7x a diária
	if totalCapacity > 0 {
		pct := float64(booked) / float64(totalCapacity*7) * 100
		snap.Percentage = &pct
	}

	return snap, nil
}

// localDay trunca o instante para 00:00 do dia-calendário na zona dada.
func localDay(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}
