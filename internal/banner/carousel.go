// Пакет banner - автоматическая прокрутка баннера на главной странице.
package banner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Gunvolt24/ohsushi_storefront/internal/domain"
	"github.com/Gunvolt24/ohsushi_storefront/internal/ports"
	"github.com/Gunvolt24/ohsushi_storefront/pkg/metrics"
)

// DefaultInterval - период смены слайда.
const DefaultInterval = 4 * time.Second

// Проверка, что Carousel удовлетворяет интерфейсу ports.BackgroundRunner.
var _ ports.BackgroundRunner = (*Carousel)(nil)

// Carousel - индекс текущего слайда. Собственный мьютекс позволяет
// тикеру работать параллельно с событиями корзины.
type Carousel struct {
	mu       sync.Mutex
	count    int
	index    int
	interval time.Duration
	log      ports.Logger
}

// NewCarousel - карусель из count слайдов (минимум 1).
func NewCarousel(count int, interval time.Duration, log ports.Logger) *Carousel {
	if count < 1 {
		count = 1
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Carousel{count: count, interval: interval, log: log}
}

// Next - следующий слайд по кругу.
func (c *Carousel) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = (c.index + 1) % c.count
	return c.index
}

// Prev - предыдущий слайд по кругу.
func (c *Carousel) Prev() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = (c.index - 1 + c.count) % c.count
	return c.index
}

// Show - перейти к слайду i.
func (c *Carousel) Show(i int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= c.count {
		return fmt.Errorf("%w: %d (count=%d)", domain.ErrSlideOutOfRange, i, c.count)
	}
	c.index = i
	return nil
}

func (c *Carousel) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

func (c *Carousel) Count() int { return c.count }

// Run - смена слайда каждые interval до отмены ctx.
func (c *Carousel) Run(ctx context.Context) error {
	if c.count < 2 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			idx := c.Next()
			metrics.BannerRotations.Inc()
			c.log.Debugf(ctx, "banner rotated to slide %d/%d", idx+1, c.count)
		}
	}
}
