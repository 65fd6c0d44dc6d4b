package handlers

import (
	"context"
	"net/http"
	"time"

	applog "vartheme/internal/log"
	"vartheme/internal/theme"
)

const healthPingTimeout = 2 * time.Second

type healthResponse struct {
	Status   string    `json:"status"`
	Time     time.Time `json:"time"`
	Storage  string    `json:"storage"`
	Database string    `json:"database"`
	Stats    string    `json:"stats"`
	Palettes int       `json:"palettes"`
}

// Health reports readiness and where theme preferences are stored. An
// unreachable database is reported as degraded with a 200 status.
func Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp := healthResponse{
		Status:   "ok",
		Time:     time.Now().UTC(),
		Storage:  "session",
		Database: "none",
		Stats:    "placeholder",
		Palettes: len(theme.Palettes()),
	}
	if statsClient != nil {
		resp.Stats = "live"
	}
	if database != nil {
		resp.Storage = "session+database"
		resp.Database = "ok"
		if err := pingDatabase(ctx); err != nil {
			applog.Warn(ctx, "health check could not reach database", "error", err)
			resp.Status = "degraded"
			resp.Database = "unreachable"
		}
	}

	applog.Debug(ctx, "health check", "status", resp.Status, "database", resp.Database)
	writeJSON(ctx, w, http.StatusOK, resp)
}

func pingDatabase(ctx context.Context) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
