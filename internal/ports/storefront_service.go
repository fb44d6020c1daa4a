package ports

import (
	"context"

	"github.com/Gunvolt24/ohsushi_storefront/internal/domain"
	"github.com/Gunvolt24/ohsushi_storefront/internal/view"
)

// StorefrontService - единая точка применения UI-событий.
type StorefrontService interface {
	Apply(ctx context.Context, event domain.Event) (view.ViewModel, error)
	View(ctx context.Context) view.ViewModel
}
