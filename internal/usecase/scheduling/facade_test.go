package scheduling

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/agenda-saas/internal/audit"
	"github.com/BruksfildServices01/agenda-saas/internal/cache"
	"github.com/BruksfildServices01/agenda-saas/internal/capacity"
	domain "github.com/BruksfildServices01/agenda-saas/internal/domain/scheduling"
	"github.com/BruksfildServices01/agenda-saas/internal/models"
	"github.com/BruksfildServices01/agenda-saas/internal/nltime"
	"github.com/BruksfildServices01/agenda-saas/internal/timezone"
)

// ======================================================
// Dublês
// ======================================================

type fakeStore struct {
	businesses   map[uint]*models.Business
	appointments []models.Appointment

	inserted []*models.Appointment
	updated  []*models.Appointment

	rangeCalls    int
	capacityCalls int

	insertErr error
	rangeErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		businesses: map[uint]*models.Business{
			1: {ID: 1, Name: "Salão Aurora", Timezone: "America/New_York", TotalCapacity: 50},
		},
	}
}

func (f *fakeStore) GetBusiness(_ context.Context, id uint) (*models.Business, error) {
	biz, ok := f.businesses[id]
	if !ok {
		return nil, fmt.Errorf("business %d not found", id)
	}
	return biz, nil
}

func (f *fakeStore) GetCapacity(_ context.Context, id uint) (int, error) {
	f.capacityCalls++
	biz, ok := f.businesses[id]
	if !ok {
		return 0, fmt.Errorf("business %d not found", id)
	}
	return biz.TotalCapacity, nil
}

func (f *fakeStore) Insert(_ context.Context, ap *models.Appointment) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	ap.ID = uint(len(f.inserted) + 1)
	f.inserted = append(f.inserted, ap)
	f.appointments = append(f.appointments, *ap)
	return nil
}

func (f *fakeStore) GetByPublicID(_ context.Context, businessID uint, publicID string) (*models.Appointment, error) {
	for i := range f.appointments {
		ap := &f.appointments[i]
		if ap.BusinessID == businessID && ap.PublicID == publicID {
			return ap, nil
		}
	}
	return nil, fmt.Errorf("appointment %s not found", publicID)
}

func (f *fakeStore) GetByBusinessAndRange(_ context.Context, businessID uint, start, end time.Time) ([]models.Appointment, error) {
	f.rangeCalls++
	if f.rangeErr != nil {
		return nil, f.rangeErr
	}

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BusinessID == businessID && !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateStatus(_ context.Context, ap *models.Appointment) error {
	f.updated = append(f.updated, ap)
	return nil
}

var _ domain.Store = (*fakeStore)(nil)
var _ domain.CapacityProvider = (*fakeStore)(nil)

type recordingAuditor struct {
	events []audit.Event
}

func (r *recordingAuditor) Dispatch(ev audit.Event) {
	r.events = append(r.events, ev)
}

func newSnapshots() *SnapshotCache {
	return cache.New[capacity.Snapshot](time.Minute)
}

// ======================================================
// CreateFromLocalTime
// ======================================================

func TestCreateFromLocalTimeNormalizesToUTC(t *testing.T) {
	store := newFakeStore()
	snapshots := newSnapshots()
	auditor := &recordingAuditor{}

	// snapshot velho que a criação deve derrubar
	snapshots.Set(snapshotKey(1, time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC), "day", "Asia/Kolkata"), capacity.Snapshot{})

	uc := NewCreateFromLocalTime(store, snapshots, auditor)

	ap, err := uc.Execute(context.Background(), CreateFromLocalTimeInput{
		BusinessID: 1,
		UserID:     "user-7",
		Civil:      timezone.CivilTime{Year: 2025, Month: time.October, Day: 31, Hour: 10},
		Timezone:   "Asia/Kolkata",
		PartySize:  4,
	})
	require.NoError(t, err)

	// 10:00 em Kolkata (UTC+5:30) = 04:30 UTC
	want := time.Date(2025, time.October, 31, 4, 30, 0, 0, time.UTC)
	assert.True(t, ap.StartTime.Equal(want), "start must be UTC-normalized, got %v", ap.StartTime)
	assert.True(t, ap.EndTime.Equal(want.Add(time.Hour)), "default slot is 60 min")

	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.NotEmpty(t, ap.PublicID)
	assert.Equal(t, "Asia/Kolkata", ap.UserTimezone)

	require.Len(t, store.inserted, 1)
	assert.Equal(t, 0, snapshots.Len(), "stale snapshots must be invalidated")

	require.Len(t, auditor.events, 1)
	assert.Equal(t, "appointment_created", auditor.events[0].Action)
}

func TestCreateFromLocalTimeValidation(t *testing.T) {
	store := newFakeStore()
	uc := NewCreateFromLocalTime(store, newSnapshots(), &recordingAuditor{})

	_, err := uc.Execute(context.Background(), CreateFromLocalTimeInput{
		BusinessID: 1,
		UserID:     "u",
		Civil:      timezone.CivilTime{Year: 2025, Month: time.October, Day: 31, Hour: 10},
		Timezone:   "Asia/Kolkata",
		PartySize:  0,
	})

	var ve domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "party_size", ve.Field)
	assert.Empty(t, store.inserted, "invalid input must not reach the store")
}

func TestCreateFromLocalTimeInvalidZone(t *testing.T) {
	store := newFakeStore()
	uc := NewCreateFromLocalTime(store, newSnapshots(), &recordingAuditor{})

	_, err := uc.Execute(context.Background(), CreateFromLocalTimeInput{
		BusinessID: 1,
		UserID:     "u",
		Civil:      timezone.CivilTime{Year: 2025, Month: time.October, Day: 31, Hour: 10},
		Timezone:   "Middle/Nowhere",
		PartySize:  2,
	})

	var tzErr timezone.TimezoneError
	require.ErrorAs(t, err, &tzErr)
	assert.Empty(t, store.inserted)
}

func TestCreateFromLocalTimeWrapsStoreError(t *testing.T) {
	store := newFakeStore()
	sentinel := errors.New("connection reset")
	store.insertErr = sentinel

	uc := NewCreateFromLocalTime(store, newSnapshots(), &recordingAuditor{})

	_, err := uc.Execute(context.Background(), CreateFromLocalTimeInput{
		BusinessID: 1,
		UserID:     "u",
		Civil:      timezone.CivilTime{Year: 2025, Month: time.October, Day: 31, Hour: 10},
		Timezone:   "Asia/Kolkata",
		PartySize:  2,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel, "collaborator failure must keep the cause")
}

// ======================================================
// CreateFromNaturalLanguage
// ======================================================

func TestCreateFromNaturalLanguage(t *testing.T) {
	store := newFakeStore()
	uc := NewCreateFromNaturalLanguage(store, newSnapshots(), &recordingAuditor{})

	ap, err := uc.Execute(context.Background(), CreateFromNaturalLanguageInput{
		BusinessID: 1,
		UserID:     "caller-1",
		Text:       "tomorrow 10 am",
		Timezone:   "Asia/Kolkata",
		PartySize:  2,
	})
	require.NoError(t, err)

	local, err := timezone.UTCToLocal(ap.StartTime, "Asia/Kolkata")
	require.NoError(t, err)
	assert.Equal(t, 10, local.Hour)
	assert.Equal(t, 0, local.Minute)

	require.Len(t, store.inserted, 1)
}

func TestCreateFromNaturalLanguageParseFailure(t *testing.T) {
	store := newFakeStore()
	uc := NewCreateFromNaturalLanguage(store, newSnapshots(), &recordingAuditor{})

	_, err := uc.Execute(context.Background(), CreateFromNaturalLanguageInput{
		BusinessID: 1,
		UserID:     "caller-1",
		Text:       "   ",
		Timezone:   "Asia/Kolkata",
		PartySize:  2,
	})

	var perr nltime.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Empty(t, store.inserted, "parse failure must not attempt persistence")
}

// ======================================================
// GetUtilization (cache-aside)
// ======================================================

func seedDay(t *testing.T, store *fakeStore) time.Time {
	t.Helper()

	// dois agendamentos no dia local 2025-10-31 de NY, um de cada lado da
	// meia-noite UTC
	morning, err := timezone.LocalToUTC(timezone.CivilTime{Year: 2025, Month: time.October, Day: 31, Hour: 10}, "America/New_York")
	require.NoError(t, err)
	evening, err := timezone.LocalToUTC(timezone.CivilTime{Year: 2025, Month: time.October, Day: 31, Hour: 22}, "America/New_York")
	require.NoError(t, err)

	store.appointments = append(store.appointments,
		models.Appointment{BusinessID: 1, StartTime: morning, EndTime: morning.Add(time.Hour), PartySize: 10, Status: "confirmed"},
		models.Appointment{BusinessID: 1, StartTime: evening, EndTime: evening.Add(time.Hour), PartySize: 15, Status: "pending"},
	)

	return morning
}

func TestGetUtilizationCacheAside(t *testing.T) {
	store := newFakeStore()
	anchor := seedDay(t, store)

	snapshots := newSnapshots()
	uc := NewGetUtilization(store, store, snapshots, time.Minute)

	in := GetUtilizationInput{BusinessID: 1, Date: anchor, Range: RangeDay}

	snap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 25, snap.BookedUnits)
	require.NotNil(t, snap.Percentage)
	assert.Equal(t, float64(50), *snap.Percentage)
	assert.Equal(t, 1, store.rangeCalls)

	// segunda leitura vem do cache, sem tocar a fonte
	again, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, snap.BookedUnits, again.BookedUnits)
	assert.Equal(t, 1, store.rangeCalls, "cache hit must short-circuit the store")
	assert.Equal(t, 1, store.capacityCalls)
}

func TestGetUtilizationInvalidatedByCreate(t *testing.T) {
	store := newFakeStore()
	anchor := seedDay(t, store)

	snapshots := newSnapshots()
	auditor := &recordingAuditor{}

	utilUC := NewGetUtilization(store, store, snapshots, time.Minute)
	createUC := NewCreateFromLocalTime(store, snapshots, auditor)

	in := GetUtilizationInput{BusinessID: 1, Date: anchor, Range: RangeDay}

	_, err := utilUC.Execute(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, 1, store.rangeCalls)

	_, err = createUC.Execute(context.Background(), CreateFromLocalTimeInput{
		BusinessID: 1,
		UserID:     "u",
		Civil:      timezone.CivilTime{Year: 2025, Month: time.October, Day: 31, Hour: 12},
		Timezone:   "America/New_York",
		PartySize:  5,
	})
	require.NoError(t, err)

	snap, err := utilUC.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 2, store.rangeCalls, "create must invalidate the snapshot")
	assert.Equal(t, 30, snap.BookedUnits)
}

func TestGetUtilizationWrapsStoreError(t *testing.T) {
	store := newFakeStore()
	sentinel := errors.New("timeout")
	store.rangeErr = sentinel

	uc := NewGetUtilization(store, store, newSnapshots(), time.Minute)

	_, err := uc.Execute(context.Background(), GetUtilizationInput{
		BusinessID: 1,
		Date:       time.Date(2025, time.October, 31, 12, 0, 0, 0, time.UTC),
		Range:      RangeDay,
		Timezone:   "America/New_York",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
}

// ======================================================
// TransitionStatus
// ======================================================

func createPending(t *testing.T, store *fakeStore, snapshots *SnapshotCache) *models.Appointment {
	t.Helper()

	uc := NewCreateFromLocalTime(store, snapshots, &recordingAuditor{})
	ap, err := uc.Execute(context.Background(), CreateFromLocalTimeInput{
		BusinessID: 1,
		UserID:     "u",
		Civil:      timezone.CivilTime{Year: 2025, Month: time.October, Day: 31, Hour: 10},
		Timezone:   "America/New_York",
		PartySize:  2,
	})
	require.NoError(t, err)
	return ap
}

func TestTransitionStatus(t *testing.T) {
	store := newFakeStore()
	snapshots := newSnapshots()
	auditor := &recordingAuditor{}

	ap := createPending(t, store, snapshots)

	uc := NewTransitionStatus(store, snapshots, auditor)

	got, err := uc.Execute(context.Background(), 1, ap.PublicID, domain.StatusCancelled, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), got.Status)
	assert.NotNil(t, got.CancelledAt)
	require.Len(t, store.updated, 1)

	require.Len(t, auditor.events, 1)
	assert.Equal(t, "appointment_cancelled", auditor.events[0].Action)
}

func TestTransitionStatusRejectsInvalid(t *testing.T) {
	store := newFakeStore()
	snapshots := newSnapshots()

	ap := createPending(t, store, snapshots)

	uc := NewTransitionStatus(store, snapshots, &recordingAuditor{})

	// pending -> completed pula a confirmação
	_, err := uc.Execute(context.Background(), 1, ap.PublicID, domain.StatusCompleted, "owner-1")
	var se domain.StateError
	require.ErrorAs(t, err, &se)
	assert.Empty(t, store.updated, "rejected transition must not hit the store")

	_, err = uc.Execute(context.Background(), 1, ap.PublicID, domain.Status("archived"), "owner-1")
	var ve domain.ValidationError
	require.ErrorAs(t, err, &ve)
}

// ======================================================
// InvalidateSnapshots
// ======================================================

func TestInvalidateSnapshots(t *testing.T) {
	snapshots := newSnapshots()
	auditor := &recordingAuditor{}

	day1 := time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)

	snapshots.Set(snapshotKey(1, day1, "day", "UTC"), capacity.Snapshot{})
	snapshots.Set(snapshotKey(1, day2, "day", "UTC"), capacity.Snapshot{})
	snapshots.Set(snapshotKey(2, day1, "day", "UTC"), capacity.Snapshot{})

	uc := NewInvalidateSnapshots(snapshots, auditor)

	// escopo por período: só o dia 31 do negócio 1 cai
	n := uc.Execute(1, &day1)
	assert.Equal(t, 1, n)
	assert.Equal(t, 2, snapshots.Len())

	// sem período: derruba tudo do negócio 1
	n = uc.Execute(1, nil)
	assert.Equal(t, 1, n)
	assert.True(t, snapshots.Has(snapshotKey(2, day1, "day", "UTC")), "other tenants keep their snapshots")

	require.Len(t, auditor.events, 2)
	assert.Equal(t, "cache_invalidated", auditor.events[0].Action)
}
