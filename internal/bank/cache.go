package bank

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/nepal-utilities/backend/internal/models"
	"golang.org/x/sync/singleflight"
)

const sharedLoadTimeout = 30 * time.Second

// Cache keeps loaded banks in memory. Concurrent misses for the same
// category share one load, which runs detached from any single caller's
// context; each caller stops waiting when its own context ends.
type Cache struct {
	src   Source
	group singleflight.Group

	mu       sync.RWMutex
	banks    map[models.Category]models.QuestionData
	versions map[models.Category]uint64
}

func NewCache(src Source) *Cache {
	return &Cache{
		src:      src,
		banks:    make(map[models.Category]models.QuestionData),
		versions: make(map[models.Category]uint64),
	}
}

func (c *Cache) Load(ctx context.Context, category models.Category) (models.QuestionData, error) {
	c.mu.RLock()
	data, ok := c.banks[category]
	c.mu.RUnlock()
	if ok {
		return data, nil
	}

	ch := c.group.DoChan(string(category), func() (interface{}, error) {
		c.mu.RLock()
		data, ok := c.banks[category]
		version := c.versions[category]
		c.mu.RUnlock()
		if ok {
			return data, nil
		}

		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedLoadTimeout)
		defer cancel()

		data, err := c.src.Load(loadCtx, category)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		// Invalidate ran during the load; the document may be stale.
		if c.versions[category] == version {
			c.banks[category] = data
		}
		c.mu.Unlock()
		log.Printf("[bank] loaded %s: %d sections, %d questions", category, len(data.Sections), data.QuestionCount())
		return data, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return models.QuestionData{}, res.Err
		}
		return res.Val.(models.QuestionData), nil
	case <-ctx.Done():
		return models.QuestionData{}, loadErr(category, fmt.Errorf("waiting for bank: %w", ctx.Err()))
	}
}

// Invalidate drops a cached bank so the next Load reads the source again.
// A load already running when Invalidate is called is not stored.
func (c *Cache) Invalidate(category models.Category) {
	c.mu.Lock()
	delete(c.banks, category)
	c.versions[category]++
	c.mu.Unlock()
	c.group.Forget(string(category))
}
