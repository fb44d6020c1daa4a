package ports

import "context"

// Logger - контракт логгера для всех слоёв витрины.
type Logger interface {
	Debugf(ctx context.Context, format string, args ...any) // Debugf - подробности (тики баннера и т.п.).
	Infof(ctx context.Context, format string, args ...any)  // Infof - ход обработки событий.
	Warnf(ctx context.Context, format string, args ...any)  // Warnf - восстановимые сбои.
	Errorf(ctx context.Context, format string, args ...any) // Errorf - ошибки инфраструктуры.
}
