package notice

import (
	"context"
	"testing"

	"github.com/Gunvolt24/ohsushi_storefront/internal/domain"
)

type countingLogger struct{ infos, warns int }

func (*countingLogger) Debugf(context.Context, string, ...any)  {}
func (l *countingLogger) Infof(context.Context, string, ...any) { l.infos++ }
func (l *countingLogger) Warnf(context.Context, string, ...any) { l.warns++ }
func (*countingLogger) Errorf(context.Context, string, ...any)  {}

func TestBoard_NotifyDrain(t *testing.T) {
	log := &countingLogger{}
	b := NewBoard(log)
	ctx := context.Background()

	b.Notify(ctx, domain.Notice{Level: domain.NoticeWarning, Text: "Your cart is empty!"})
	b.Notify(ctx, domain.Notice{Level: domain.NoticeInfo, Text: "Order copied!"})

	got := b.Drain()
	if len(got) != 2 || got[0].Text != "Your cart is empty!" || got[1].Level != domain.NoticeInfo {
		t.Fatalf("unexpected notices: %+v", got)
	}
	if log.warns != 1 || log.infos != 1 {
		t.Fatalf("want 1 warn and 1 info log, got %d/%d", log.warns, log.infos)
	}
	if again := b.Drain(); len(again) != 0 {
		t.Fatalf("drain must empty the queue, got %+v", again)
	}
}
