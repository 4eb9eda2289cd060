package service

import (
	"github.com/MKhiriev/echosell-api/internal/config"
	"github.com/MKhiriev/echosell-api/internal/logger"
	"github.com/MKhiriev/echosell-api/internal/store"
)

// Services aggregates every domain service exposed to the transport layer.
type Services struct {
	AuthService AuthService
	UserService UserService
	ItemService ItemService
}

// NewServices wires all domain services on top of the given storages.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	userService := NewUserService(storages.UserRepository, logger)

	return &Services{
		AuthService: NewAuthService(userService, storages.TokenCache, cfg, logger),
		UserService: userService,
		ItemService: NewItemService(storages.ItemRepository, logger),
	}
}
