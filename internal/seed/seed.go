package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/gradebook/internal/app/services"
	"github.com/yigit/gradebook/internal/config"
)

// CreateDefaultData creates the configured admin account when no account
// exists yet. Without a configured password nothing is created.
func CreateDefaultData(ctx context.Context, authService services.AuthService, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Seed.AdminPassword == "" {
		lgr.Info().Msg("No seed admin password configured, skipping default account")
		return nil
	}

	created, err := authService.EnsureAdmin(ctx, cfg.Seed.AdminUsername, cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("seed admin account: %w", err)
	}
	if created {
		lgr.Info().Str("username", cfg.Seed.AdminUsername).Msg("Default admin account created")
	} else {
		lgr.Debug().Msg("Accounts already exist, default admin not created")
	}
	return nil
}
