package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/BruksfildServices01/agenda-saas/internal/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},

		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tc := range cases {
		err := CanTransition(tc.from, tc.to)

		if tc.allowed && err != nil {
			t.Fatalf("%s -> %s: want allowed, got %v", tc.from, tc.to, err)
		}

		if !tc.allowed {
			var se StateError
			if !errors.As(err, &se) {
				t.Fatalf("%s -> %s: want StateError, got %v", tc.from, tc.to, err)
			}
			if se.From != tc.from || se.To != tc.to {
				t.Fatalf("StateError must name the rejected transition, got %+v", se)
			}
		}
	}
}

func TestTransitionStampsTimestamps(t *testing.T) {
	now := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusPending)}
	if err := Transition(ap, StatusCancelled, now); err != nil {
		t.Fatal(err)
	}
	if ap.Status != string(StatusCancelled) || ap.CancelledAt == nil || !ap.CancelledAt.Equal(now) {
		t.Fatalf("cancel: got %+v", ap)
	}

	ap = &models.Appointment{Status: string(StatusConfirmed)}
	if err := Transition(ap, StatusCompleted, now); err != nil {
		t.Fatal(err)
	}
	if ap.CompletedAt == nil {
		t.Fatal("complete must stamp CompletedAt")
	}

	// transição rejeitada não muta nada
	ap = &models.Appointment{Status: string(StatusCompleted)}
	if err := Transition(ap, StatusPending, now); err == nil {
		t.Fatal("completed is terminal")
	}
	if ap.Status != string(StatusCompleted) {
		t.Fatalf("rejected transition mutated status: %s", ap.Status)
	}
}

func TestValidate(t *testing.T) {
	start := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)

	ok := &models.Appointment{PartySize: 2, StartTime: start, EndTime: start.Add(time.Hour)}
	if err := Validate(ok); err != nil {
		t.Fatalf("valid appointment rejected: %v", err)
	}

	cases := []struct {
		name  string
		ap    *models.Appointment
		field string
	}{
		{"zero party", &models.Appointment{PartySize: 0, StartTime: start, EndTime: start.Add(time.Hour)}, "party_size"},
		{"negative party", &models.Appointment{PartySize: -1, StartTime: start, EndTime: start.Add(time.Hour)}, "party_size"},
		{"end equals start", &models.Appointment{PartySize: 1, StartTime: start, EndTime: start}, "end_time"},
		{"end before start", &models.Appointment{PartySize: 1, StartTime: start, EndTime: start.Add(-time.Minute)}, "end_time"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ve ValidationError
			if err := Validate(tc.ap); !errors.As(err, &ve) || ve.Field != tc.field {
				t.Fatalf("want ValidationError on %s, got %v", tc.field, err)
			}
		})
	}
}

func TestPeriodDayAndWeek(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	anchor := time.Date(2025, time.October, 31, 18, 30, 0, 0, loc)

	day := Day(anchor, loc)
	if day.Start.Hour() != 0 || day.Start.Day() != 31 {
		t.Fatalf("day start: %v", day.Start)
	}
	if !day.End.Equal(day.Start.AddDate(0, 0, 1)) {
		t.Fatalf("day end: %v", day.End)
	}

	week := Week(anchor, loc)
	if !week.End.Equal(week.Start.AddDate(0, 0, 7)) {
		t.Fatalf("week span: %+v", week)
	}

	if !day.Contains(anchor) {
		t.Fatal("anchor must be inside its own day")
	}
	if day.Contains(day.End) {
		t.Fatal("period is half-open, end excluded")
	}
}
