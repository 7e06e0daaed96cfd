package service

import (
	"sync"
	"time"

	"github.com/YusovID/defect-tracker/internal/domain"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	defectCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "defect_cache_hits_total",
		Help: "Total number of defect cache hits",
	})
	defectCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "defect_cache_misses_total",
		Help: "Total number of defect cache misses",
	})
)

// DefectCache keeps recently read defects by id. Entries expire after the
// configured TTL even when nothing writes to them.
//
// Writers use Set and Delete. Readers that load a defect from storage after
// a miss store it with Fill, passing the Snapshot taken before the load; the
// entry is dropped when any write happened in between.
type DefectCache struct {
	mu    sync.Mutex
	epoch uint64
	lru   *expirable.LRU[int64, domain.Defect]
}

func NewDefectCache(size int, ttl time.Duration) *DefectCache {
	return &DefectCache{
		lru: expirable.NewLRU[int64, domain.Defect](size, nil, ttl),
	}
}

func (c *DefectCache) Get(id int64) (domain.Defect, bool) {
	d, ok := c.lru.Get(id)
	if !ok {
		defectCacheMisses.Inc()
		return domain.Defect{}, false
	}

	defectCacheHits.Inc()

	return d, true
}

func (c *DefectCache) Snapshot() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.epoch
}

// Fill caches d unless a write happened since snapshot was taken.
func (c *DefectCache) Fill(d domain.Defect, snapshot uint64) {
	if d.ID == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.epoch != snapshot {
		return
	}

	c.lru.Add(*d.ID, d)
}

// Set stores d as the current state of the defect.
func (c *DefectCache) Set(d domain.Defect) {
	if d.ID == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	c.lru.Add(*d.ID, d)
}

func (c *DefectCache) Delete(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	c.lru.Remove(id)
}

func (c *DefectCache) Len() int {
	return c.lru.Len()
}
