package cache

import (
	"strings"
	"sync"
	"time"
)

// Cache TTL em memória, uma instância por processo, injetada na montagem das
// rotas. Memoiza só agregados derivados (snapshots de ocupação, métricas) —
// nunca estado fonte-de-verdade. Sem varredura de fundo: expiração é
// preguiçosa, observada no Get/Has.

const DefaultTTL = 5 * time.Minute

type entry[V any] struct {
	value       V
	createdAt   time.Time
	expiry      time.Time
	originalTTL time.Duration
}

type Cache[V any] struct {
	mu         sync.Mutex
	entries    map[string]entry[V]
	defaultTTL time.Duration

	// injetável em teste
	now func() time.Time
}

func New[V any](defaultTTL time.Duration) *Cache[V] {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}

	return &Cache[V]{
		entries:    make(map[string]entry[V]),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// ===============================
// Escrita
// ===============================

// Set grava o valor, sobrescrevendo incondicionalmente qualquer entrada
// existente. TTL omitido usa o padrão da instância.
func (c *Cache[V]) Set(key string, value V, ttl ...time.Duration) {
	d := c.defaultTTL
	if len(ttl) > 0 && ttl[0] > 0 {
		d = ttl[0]
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.entries[key] = entry[V]{
		value:       value,
		createdAt:   now,
		expiry:      now.Add(d),
		originalTTL: d,
	}
}

// Refresh troca o valor de uma entrada VIVA e recomputa o vencimento a
// partir do TTL ORIGINAL da entrada (expiry = agora + originalTTL);
// createdAt e originalTTL não mudam. Entrada ausente ou já vencida é no-op
// e devolve false — renovar não ressuscita.
func (c *Cache[V]) Refresh(key string, value V) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false
	}

	now := c.now()
	if now.After(e.expiry) {
		delete(c.entries, key)
		return false
	}

	e.value = value
	e.expiry = now.Add(e.originalTTL)
	c.entries[key] = e
	return true
}

// ===============================
// Leitura
// ===============================

// Get devolve o valor vivo; entrada vencida é removida na hora e o segundo
// retorno é false.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}

	if c.now().After(e.expiry) {
		delete(c.entries, key)
		var zero V
		return zero, false
	}

	return e.value, true
}

func (c *Cache[V]) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// ===============================
// Invalidação explícita
// ===============================

func (c *Cache[V]) Clear(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// ClearByPrefix varre todas as chaves (linear, caches pequenos).
func (c *Cache[V]) ClearByPrefix(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
			n++
		}
	}
	return n
}

// ClearAll é também o hook de reset em teste.
func (c *Cache[V]) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[V])
}
