//go:generate mockgen -source=../blob_store.go         -destination=./mock_blob_store.go         -package=mocks
//go:generate mockgen -source=../clipboard.go          -destination=./mock_clipboard.go          -package=mocks
//go:generate mockgen -source=../validator.go          -destination=./mock_validator.go          -package=mocks
//go:generate mockgen -source=../storefront_service.go -destination=./mock_storefront_service.go -package=mocks

package mocks
