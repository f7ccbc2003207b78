package exam

import (
	"sync"
	"time"
)

// countdown calls tick every interval until tick returns false or Stop is
// called. Stop may be called from inside tick.
type countdown struct {
	stop chan struct{}
	once sync.Once
}

func startCountdown(interval time.Duration, tick func() bool) *countdown {
	c := &countdown{stop: make(chan struct{})}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-c.stop:
				return
			case <-t.C:
				if !tick() {
					return
				}
			}
		}
	}()
	return c
}

func (c *countdown) Stop() {
	if c == nil {
		return
	}
	c.once.Do(func() { close(c.stop) })
}
