package scheduling

import (
	"github.com/BruksfildServices01/agenda-saas/internal/audit"
	"github.com/BruksfildServices01/agenda-saas/internal/cache"
	"github.com/BruksfildServices01/agenda-saas/internal/capacity"
)

// Auditor é satisfeito por *audit.Dispatcher; interface fina para os testes
// não precisarem de banco.
type Auditor interface {
	Dispatch(ev audit.Event)
}

// SnapshotCache memoiza agregados de ocupação. Uma instância por processo,
// injetada na montagem das rotas.
type SnapshotCache = cache.Cache[capacity.Snapshot]

// Duração padrão do slot quando o chamador não informa (minutos).
const DefaultSlotMinutes = 60
