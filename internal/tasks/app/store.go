package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store/drivers/mongo"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store/drivers/redis"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store/drivers/sqlite"
)

const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMongo  = "mongo"
)

// DriverFor picks the store driver for a connection string. Anything without
// a recognised scheme is treated as a sqlite path or DSN.
func DriverFor(url string) (string, error) {
	scheme, _, found := strings.Cut(url, "://")
	if !found {
		return DriverSQLite, nil
	}

	switch strings.ToLower(scheme) {
	case "redis", "rediss":
		return DriverRedis, nil
	case "mongodb", "mongodb+srv":
		return DriverMongo, nil
	case "sqlite", "file":
		return DriverSQLite, nil
	default:
		return "", fmt.Errorf("unsupported database scheme %q", scheme)
	}
}

// OpenStore connects to the store named by url. Migrations are not applied.
func OpenStore(ctx context.Context, url string) (store.Store, error) {
	driver, err := DriverFor(url)
	if err != nil {
		return nil, err
	}

	var st store.Store
	switch driver {
	case DriverRedis:
		cfg := redis.DefaultConfig()
		cfg.URL = url
		st, err = redis.New(cfg)
	case DriverMongo:
		st, err = mongo.New(ctx, url)
	default:
		st, err = sqlite.NewStore(sqliteDSN(url))
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", driver, err)
	}
	return st, nil
}

// sqliteDSN turns "sqlite://path" into a plain path and "file://path" into a
// "file:path" URI; SQLite rejects a file URI with a non-local authority.
func sqliteDSN(url string) string {
	switch {
	case strings.HasPrefix(url, "sqlite://"):
		return strings.TrimPrefix(url, "sqlite://")
	case strings.HasPrefix(url, "file://"):
		return "file:" + strings.TrimPrefix(url, "file://")
	default:
		return url
	}
}
