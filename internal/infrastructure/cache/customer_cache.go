package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/seu-usuario/clientes-api/internal/application/usecase"
	"github.com/seu-usuario/clientes-api/internal/domain/entity"
)

var _ usecase.CustomerCache = (*CustomerCache)(nil)

// CustomerCache cache em memória das consultas de cliente por ID, limitado
// por capacidade (despejo LRU) e por TTL. A invalidação nas mutações é feita
// pelo caso de uso via Invalidate.
type CustomerCache struct {
	mu       sync.Mutex
	entries  map[int64]*cacheEntry
	lru      *list.List // frente = usado mais recentemente
	capacity int
	ttl      time.Duration
}

type cacheEntry struct {
	customer  *entity.Customer
	expiresAt time.Time
	elem      *list.Element // valor: a chave int64
}

// NewCustomerCache constrói o cache. capacity <= 0 vira 1; ttl <= 0 vira 5m.
func NewCustomerCache(capacity int, ttl time.Duration) *CustomerCache {
	if capacity <= 0 {
		capacity = 1
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CustomerCache{
		entries:  make(map[int64]*cacheEntry, capacity),
		lru:      list.New(),
		capacity: capacity,
		ttl:      ttl,
	}
}

// Get devolve o cliente cacheado, se presente e não expirado.
func (c *CustomerCache) Get(id int64) (*entity.Customer, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[id]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.remove(id, e)
		return nil, false
	}
	c.lru.MoveToFront(e.elem)
	return e.customer, true
}

// Set grava o cliente sob o ID, despejando o menos usado se o cache encheu.
func (c *CustomerCache) Set(id int64, customer *entity.Customer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[id]; ok {
		e.customer = customer
		e.expiresAt = time.Now().Add(c.ttl)
		c.lru.MoveToFront(e.elem)
		return
	}
	if len(c.entries) >= c.capacity {
		if oldest := c.lru.Back(); oldest != nil {
			oldID := oldest.Value.(int64)
			c.remove(oldID, c.entries[oldID])
		}
	}
	c.entries[id] = &cacheEntry{
		customer:  customer,
		expiresAt: time.Now().Add(c.ttl),
		elem:      c.lru.PushFront(id),
	}
}

// Invalidate descarta a entrada do ID, se existir.
func (c *CustomerCache) Invalidate(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[id]; ok {
		c.remove(id, e)
	}
}

// Len quantidade de entradas vivas (inclui expiradas ainda não colhidas).
func (c *CustomerCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// remove exige o lock já tomado.
func (c *CustomerCache) remove(id int64, e *cacheEntry) {
	c.lru.Remove(e.elem)
	delete(c.entries, id)
}
