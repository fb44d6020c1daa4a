package ports

import "context"

// Clipboard - общий буфер обмена, куда копируется текст заказа.
// Ошибка записи означает, что пользователю нужно отправить текст вручную.
type Clipboard interface {
	Write(ctx context.Context, text string) error
}

// ClipboardReader - буфер обмена, из которого можно забрать последний текст.
type ClipboardReader interface {
	Read(ctx context.Context) (string, bool)
}
