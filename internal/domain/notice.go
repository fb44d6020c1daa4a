package domain

// NoticeLevel - уровень пользовательского уведомления.
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
)

// Notice - сообщение для пользователя (аналог alert в браузере).
type Notice struct {
	Level NoticeLevel `json:"level"`
	Text  string      `json:"text"`
}
