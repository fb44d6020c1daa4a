package domain

import "errors"

var (
	ErrInvalidEvent       = errors.New("invalid event")
	ErrInvalidItem        = errors.New("invalid line item")
	ErrInvalidQuantity    = errors.New("quantity must be a positive integer")
	ErrIndexOutOfRange    = errors.New("item index out of range")
	ErrNoPendingSelection = errors.New("no pending selection")
	ErrNotPicking         = errors.New("quantity picker is idle")
	ErrUnknownModal       = errors.New("unknown modal")
	ErrSlideOutOfRange    = errors.New("slide index out of range")
)

// IsRejection - ошибка вызвана некорректным событием и не исчезнет при повторе.
func IsRejection(err error) bool {
	for _, target := range []error{
		ErrInvalidEvent, ErrInvalidItem, ErrInvalidQuantity, ErrIndexOutOfRange,
		ErrNoPendingSelection, ErrNotPicking, ErrUnknownModal, ErrSlideOutOfRange,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
