package ports

import (
	"context"

	"github.com/Gunvolt24/ohsushi_storefront/internal/domain"
)

// Notifier - поверхность предупреждений и подтверждений.
type Notifier interface {
	Notify(ctx context.Context, notice domain.Notice)
	// Drain - забрать накопленные уведомления (очередь очищается).
	Drain() []domain.Notice
}
