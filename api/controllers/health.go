package controllers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/angelmondragon/cornerstore-backend/api/responses"
	"github.com/angelmondragon/cornerstore-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/cornerstore-backend/pkg/errors"
	"github.com/angelmondragon/cornerstore-backend/pkg/logger"
	"github.com/angelmondragon/cornerstore-backend/pkg/types"
)

const (
	envHeader    = "X-CornerStore-Env"
	readyTimeout = 2 * time.Second
)

// Pinger is a dependency the readiness probe checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, types.Health{Status: "live"})
	}
}

// HealthReady pings every named dependency and answers 503 if any is down.
func HealthReady(cfg *config.Config, checks map[string]Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		names := make([]string, 0, len(checks))
		for name := range checks {
			names = append(names, name)
		}
		sort.Strings(names)

		results := make(map[string]string, len(checks))
		failed := map[string]string{}
		for _, name := range names {
			if err := checks[name].Ping(ctx); err != nil {
				results[name] = "down"
				failed[name] = err.Error()
				continue
			}
			results[name] = "up"
		}

		if len(failed) > 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "dependency unavailable").WithDetails(failed))
			return
		}
		responses.WriteSuccess(w, types.Health{Status: "ready", Checks: results})
	}
}
