// Package catalog keeps the process-wide list of active products and keeps it
// in step with the products change feed.
package catalog

import (
	"context"
	"log"
	"sync"

	"github.com/junaidrashid-git/tribal-art-api/models"
	"github.com/junaidrashid-git/tribal-art-api/realtime"
)

const productsTable = "products"

// Source runs the catalog query: active products with their seller, newest
// first.
type Source interface {
	ActiveProducts(ctx context.Context) ([]models.Product, error)
}

// Feed delivers row change events for a table.
type Feed interface {
	Subscribe(table string) (<-chan realtime.Event, func())
}

// Patch edits a cached product in place.
type Patch func(p *models.Product)

type Cache struct {
	source Source

	mu       sync.RWMutex
	products []models.Product
	loading  bool

	cancel func()
	done   chan struct{}
}

func New(source Source) *Cache {
	return &Cache{source: source}
}

// Start loads the catalog and follows feed until ctx ends or Close is called.
// Inserts and updates trigger a full refresh; deletes are applied locally.
func (c *Cache) Start(ctx context.Context, feed Feed) {
	c.FetchAll(ctx)
	if feed == nil {
		return
	}

	events, unsubscribe := feed.Subscribe(productsTable)
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	c.mu.Lock()
	c.cancel = cancel
	c.done = done
	c.mu.Unlock()

	go func() {
		defer close(done)
		defer unsubscribe()
		for {
			select {
			case <-ctx.Done():
				return
			case e, ok := <-events:
				if !ok {
					return
				}
				c.apply(ctx, e)
			}
		}
	}()
}

func (c *Cache) apply(ctx context.Context, e realtime.Event) {
	switch e.Type {
	case realtime.Delete:
		if id := e.OldID(); id != "" {
			c.Remove(id)
		}
	case realtime.Insert, realtime.Update:
		c.Refresh(ctx)
	}
}

// FetchAll replaces the cached list with the current catalog. On error the
// previous list is kept.
func (c *Cache) FetchAll(ctx context.Context) {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	products, err := c.source.ActiveProducts(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		log.Printf("❌ Error fetching products: %v", err)
		return
	}
	c.products = activeOnly(products)
}

func (c *Cache) Refresh(ctx context.Context) {
	c.FetchAll(ctx)
}

// Update patches a cached product without a round trip. Unknown ids are
// ignored. A patch that takes the product out of active status drops it.
func (c *Cache) Update(id string, patch Patch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.products {
		if c.products[i].ID == id {
			patch(&c.products[i])
			c.products = activeOnly(c.products)
			return
		}
	}
}

func (c *Cache) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.products[:0:0]
	for _, p := range c.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	c.products = kept
}

// Products returns a copy of the cached list.
func (c *Cache) Products() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Cache) Get(id string) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (c *Cache) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Close stops following the feed and waits for the listener to exit.
func (c *Cache) Close() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func activeOnly(products []models.Product) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Status == models.ProductActive {
			out = append(out, p)
		}
	}
	return out
}
