package service

import (
	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
)

type Services struct {
	AuthService AuthService
	ItemService ItemService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	verifier, err := NewStaticAdminVerifier(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService: NewAuthService(verifier, cfg.App, logger),
		ItemService: NewItemService(storages.ItemRepository, storages.ImageStorage, logger),
	}, nil
}
