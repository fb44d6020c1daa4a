package memory

import (
	"context"
	"sync"

	"github.com/Gunvolt24/ohsushi_storefront/internal/ports"
)

// Проверка, что Clipboard удовлетворяет интерфейсам ports.Clipboard и ports.ClipboardReader.
var (
	_ ports.Clipboard       = (*Clipboard)(nil)
	_ ports.ClipboardReader = (*Clipboard)(nil)
)

// Clipboard - буфер обмена в памяти процесса: хранит последний скопированный текст,
// который отдаётся через GET /api/clipboard.
type Clipboard struct {
	mu     sync.Mutex
	text   string
	filled bool
	log    ports.Logger
}

func NewClipboard(log ports.Logger) *Clipboard { return &Clipboard{log: log} }

func (c *Clipboard) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	c.text = text
	c.filled = true
	c.mu.Unlock()

	c.log.Infof(ctx, "clipboard updated bytes=%d", len(text))
	return nil
}

// Read - последний записанный текст; false, если записей ещё не было.
func (c *Clipboard) Read(_ context.Context) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, c.filled
}
