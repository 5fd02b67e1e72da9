package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/agenda-saas/internal/capacity"
	domain "github.com/BruksfildServices01/agenda-saas/internal/domain/scheduling"
	"github.com/BruksfildServices01/agenda-saas/internal/httperr"
	"github.com/BruksfildServices01/agenda-saas/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type UtilizationRange string

const (
	RangeDay  UtilizationRange = "day"
	RangeWeek UtilizationRange = "week"
)

type GetUtilizationInput struct {
	BusinessID uint

	// Instante-âncora do período (qualquer horário dentro do dia serve)
	Date  time.Time
	Range UtilizationRange

	// Vazio → zona oficial do negócio
	Timezone string
}

// ======================================================
// USE CASE
// ======================================================

type GetUtilization struct {
	store    domain.Store
	capacity domain.CapacityProvider
	cache    *SnapshotCache
	ttl      time.Duration
}

// TTL curto de propósito: agenda muda durante o expediente, minutos e não
// horas.
func NewGetUtilization(
	store domain.Store,
	capacityProvider domain.CapacityProvider,
	snapshots *SnapshotCache,
	ttl time.Duration,
) *GetUtilization {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &GetUtilization{
		store:    store,
		capacity: capacityProvider,
		cache:    snapshots,
		ttl:      ttl,
	}
}

// ======================================================
// EXECUTE (cache-aside)
// ======================================================

func (uc *GetUtilization) Execute(
	ctx context.Context,
	in GetUtilizationInput,
) (capacity.Snapshot, error) {

	rng := in.Range
	if rng == "" {
		rng = RangeDay
	}

	// --------------------------------------------------
	// 1️⃣ Resolve a zona (pedido > perfil do negócio)
	// --------------------------------------------------
	tz := in.Timezone
	if tz == "" {
		biz, err := uc.store.GetBusiness(ctx, in.BusinessID)
		if err != nil {
			return capacity.Snapshot{}, httperr.ErrBusiness("business_not_found")
		}
		tz = biz.Timezone
		if tz == "" {
			tz = timezone.DefaultTimezone
		}
	}

	loc, err := timezone.Location(tz)
	if err != nil {
		return capacity.Snapshot{}, err
	}

	var period domain.Period
	if rng == RangeWeek {
		period = domain.Week(in.Date, loc)
	} else {
		period = domain.Day(in.Date, loc)
	}

	// --------------------------------------------------
	// 2️⃣ Cache primeiro — hit encerra a leitura
	// --------------------------------------------------
	key := snapshotKey(in.BusinessID, period.Start, string(rng), tz)
	if snap, ok := uc.cache.Get(key); ok {
		return snap, nil
	}

	// --------------------------------------------------
	// 3️⃣ Miss: busca agendamentos + capacidade na fonte
	// --------------------------------------------------
	apps, err := uc.store.GetByBusinessAndRange(
		ctx,
		in.BusinessID,
		period.Start.UTC(),
		period.End.UTC(),
	)
	if err != nil {
		return capacity.Snapshot{}, fmt.Errorf("scheduling: list appointments: %w", err)
	}

	total, err := uc.capacity.GetCapacity(ctx, in.BusinessID)
	if err != nil {
		return capacity.Snapshot{}, fmt.Errorf("scheduling: load capacity: %w", err)
	}

	// --------------------------------------------------
	// 4️⃣ Computa e memoiza
	// --------------------------------------------------
	var snap capacity.Snapshot
	if rng == RangeWeek {
		snap, err = capacity.WeekUtilization(apps, total, period.Start, tz)
	} else {
		snap, err = capacity.Utilization(apps, total, period.Start, period.End, tz)
	}
	if err != nil {
		return capacity.Snapshot{}, err
	}

	uc.cache.Set(key, snap, uc.ttl)
	return snap, nil
}
