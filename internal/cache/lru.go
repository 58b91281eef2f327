package cache

import (
	"atelier/internal/database"
	"atelier/internal/metrics"
	"atelier/internal/model"
	"container/list"
	"context"
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=lru.go -destination=./mocks/cache_mock.go -package=mocks Cache

// Cache хранит снимки состояния для страницы отслеживания по трек-номеру.
//
// Чтение из БД с последующим заполнением кэша идет так: Version до запроса,
// SetIfUnchanged после. Если между ними сущность изменилась и ключ был
// удален через Delete, устаревший снимок в кэш не попадет.
type Cache interface {
	Set(ctx context.Context, trackingCode string, snap *model.Snapshot)
	Get(ctx context.Context, trackingCode string) (*model.Snapshot, bool)
	Delete(ctx context.Context, trackingCode string)
	Version(ctx context.Context, trackingCode string) Version
	SetIfUnchanged(ctx context.Context, trackingCode string, snap *model.Snapshot, v Version) bool
}

// Version - отметка ключа, которую сдвигает каждый Delete.
type Version struct {
	epoch uint64
	gen   uint64
}

// minTracked - нижняя граница числа ключей, для которых помним поколение.
const minTracked = 1024

// lruCache реализует LRU (Least Recently Used) кэш.
type lruCache struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	queue    *list.List
	tracer   trace.Tracer

	// gens растет только на Delete. При переполнении сбрасывается целиком
	// со сменой epoch, и все выданные ранее Version становятся недействительными.
	gens       map[string]uint64
	epoch      uint64
	maxTracked int
}

type entry struct {
	code string
	snap *model.Snapshot
}

// NewLRUCache создает новый LRU-кэш с заданной емкостью.
// Кэш с нулевой емкостью ничего не хранит.
func NewLRUCache(capacity int) Cache {
	return &lruCache{
		capacity:   capacity,
		items:      make(map[string]*list.Element),
		queue:      list.New(),
		tracer:     otel.Tracer("lru-cache"),
		gens:       make(map[string]uint64),
		maxTracked: max(4*capacity, minTracked),
	}
}

func (c *lruCache) Set(ctx context.Context, trackingCode string, snap *model.Snapshot) {
	_, span := c.tracer.Start(ctx, "Cache.Set")
	defer span.End()

	if c.capacity <= 0 || snap == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(trackingCode, snap)
}

// SetIfUnchanged кладет снимок, только если с момента Version ключ не удаляли.
func (c *lruCache) SetIfUnchanged(ctx context.Context, trackingCode string, snap *model.Snapshot, v Version) bool {
	_, span := c.tracer.Start(ctx, "Cache.SetIfUnchanged")
	defer span.End()

	if c.capacity <= 0 || snap == nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if v != c.version(trackingCode) {
		metrics.CacheStaleFills.Inc()
		return false
	}
	c.set(trackingCode, snap)
	return true
}

func (c *lruCache) Version(ctx context.Context, trackingCode string) Version {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version(trackingCode)
}

func (c *lruCache) version(trackingCode string) Version {
	return Version{epoch: c.epoch, gen: c.gens[trackingCode]}
}

// set добавляет или обновляет элемент. Мьютекс уже захвачен.
func (c *lruCache) set(trackingCode string, snap *model.Snapshot) {
	if el, ok := c.items[trackingCode]; ok {
		c.queue.MoveToFront(el)
		el.Value.(*entry).snap = snap
		return
	}

	if c.queue.Len() >= c.capacity {
		c.removeOldest()
	}

	c.items[trackingCode] = c.queue.PushFront(&entry{code: trackingCode, snap: snap})
	metrics.CacheSize.Set(float64(c.queue.Len()))
}

func (c *lruCache) Get(ctx context.Context, trackingCode string) (*model.Snapshot, bool) {
	_, span := c.tracer.Start(ctx, "Cache.Get")
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[trackingCode]
	if !ok {
		metrics.CacheMisses.Inc()
		return nil, false
	}
	c.queue.MoveToFront(el)
	metrics.CacheHits.Inc()
	return el.Value.(*entry).snap, true
}

// Delete убирает снимок после изменения сущности. Следующее чтение пойдет в БД.
func (c *lruCache) Delete(ctx context.Context, trackingCode string) {
	_, span := c.tracer.Start(ctx, "Cache.Delete")
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.gens[trackingCode]++
	if len(c.gens) > c.maxTracked {
		c.gens = make(map[string]uint64)
		c.epoch++
	}

	if el, ok := c.items[trackingCode]; ok {
		c.queue.Remove(el)
		delete(c.items, trackingCode)
		metrics.CacheSize.Set(float64(c.queue.Len()))
	}
}

// removeOldest вытесняет самый старый элемент. Мьютекс уже захвачен.
func (c *lruCache) removeOldest() {
	el := c.queue.Back()
	if el == nil {
		return
	}
	e := c.queue.Remove(el).(*entry)
	delete(c.items, e.code)

	metrics.CacheEvictions.Inc()
	metrics.CacheSize.Set(float64(c.queue.Len()))
}

// WarmUp загружает в кэш снимки незакрытых заявок и заказов.
// Загружается не больше limit записей каждого типа.
func WarmUp(ctx context.Context, storage database.Storage, cache Cache, limit int) error {
	log.Println("Выполняется прогрев кэша...")

	commissions, err := storage.ActiveCommissions(ctx, limit)
	if err != nil {
		return err
	}
	for i := range commissions {
		cache.Set(ctx, commissions[i].TrackingCode, model.SnapshotOfCommission(&commissions[i]))
	}

	orders, err := storage.ActiveOrders(ctx, limit)
	if err != nil {
		return err
	}
	for i := range orders {
		cache.Set(ctx, orders[i].TrackingCode, model.SnapshotOfOrder(&orders[i]))
	}

	log.Printf("Кэш прогрет. Загружено заявок: %d, заказов: %d.", len(commissions), len(orders))
	return nil
}
