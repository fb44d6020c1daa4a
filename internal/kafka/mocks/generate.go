//go:generate mockgen -source=../consumer.go         -destination=./mock_consumer.go         -package=mocks
//go:generate mockgen -source=../clipboard_writer.go -destination=./mock_clipboard_writer.go -package=mocks

package mocks
