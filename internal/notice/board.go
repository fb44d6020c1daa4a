// Пакет notice - очередь уведомлений для пользователя.
package notice

import (
	"context"
	"sync"

	"github.com/Gunvolt24/ohsushi_storefront/internal/domain"
	"github.com/Gunvolt24/ohsushi_storefront/internal/ports"
)

// Проверка, что Board удовлетворяет интерфейсу ports.Notifier.
var _ ports.Notifier = (*Board)(nil)

// Board - накапливает уведомления до следующего снимка состояния.
type Board struct {
	mu      sync.Mutex
	pending []domain.Notice
	log     ports.Logger
}

func NewBoard(log ports.Logger) *Board {
	return &Board{log: log}
}

// Notify - поставить уведомление в очередь и продублировать его в лог.
func (b *Board) Notify(ctx context.Context, n domain.Notice) {
	b.mu.Lock()
	b.pending = append(b.pending, n)
	b.mu.Unlock()

	if n.Level == domain.NoticeWarning {
		b.log.Warnf(ctx, "notice: %q", n.Text)
		return
	}
	b.log.Infof(ctx, "notice: %q", n.Text)
}

// Drain - забрать накопленное; очередь очищается.
func (b *Board) Drain() []domain.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.pending
	b.pending = nil
	return out
}
