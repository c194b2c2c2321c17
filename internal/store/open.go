package store

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/fireplan/internal/config"
	"go.uber.org/zap"
)

// Open creates the profile store selected by the settings
func Open(ctx context.Context, settings config.StoreSettings, logger *zap.Logger) (ProfileStore, error) {
	switch settings.Backend {
	case config.BackendFile, "":
		fs, err := NewFileStore(settings.Dir, logger)
		if err != nil {
			return nil, err
		}
		return fs, nil
	case config.BackendRedis:
		rs, err := DialRedisStore(ctx, RedisOptions{
			Addr:     settings.RedisAddr,
			Password: settings.RedisPassword,
			DB:       settings.RedisDB,
		}, logger)
		if err != nil {
			return nil, err
		}
		return rs, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", settings.Backend)
	}
}
