package migrate

import (
	"context"
	"fmt"

	"github.com/angelmondragon/cornerstore-backend/pkg/config"
	"github.com/angelmondragon/cornerstore-backend/pkg/db"
	"github.com/angelmondragon/cornerstore-backend/pkg/db/models"
	"github.com/angelmondragon/cornerstore-backend/pkg/db/seed"
	"github.com/angelmondragon/cornerstore-backend/pkg/logger"
)

// MaybeRun provisions the schema when the auto-migrate flag is on. SQLite gets GORM
// AutoMigrate plus the Go seed; Postgres runs the embedded goose migrations, and only
// in dev.
func MaybeRun(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	if cfg.FeatureFlags.UseSQLite {
		ctx = logg.WithField(ctx, "driver", "sqlite")
		logg.Info(ctx, "running AutoMigrate + seed")
		if err := client.DB().WithContext(ctx).AutoMigrate(models.All()...); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
		if err := seed.Apply(ctx, client.DB()); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		return nil
	}

	if !cfg.App.IsDev() {
		return nil
	}

	if err := Validate(Migrations, Dir); err != nil {
		return err
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "dir": Dir})
	logg.Info(ctx, "running goose migrations (dev auto-run)")

	if err := Run(ctx, sqlDB, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	logg.Info(ctx, "goose migrations completed")
	return nil
}
