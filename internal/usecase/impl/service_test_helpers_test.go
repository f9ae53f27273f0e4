package impl

import (
	"io"
	"log/slog"

	"storefront/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(adminEmail string) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 12,
			AdminEmail: adminEmail,
		},
	}
}
