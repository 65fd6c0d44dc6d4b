package handlers

import (
	"time"

	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"

	"vartheme/internal/stats"
)

var (
	sessionManager *scs.SessionManager
	database       *gorm.DB
	statsClient    *stats.Client
	visitor        = visitorConfig{cookieName: defaultVisitorCookie, lifetime: defaultVisitorLifetime}
)

type visitorConfig struct {
	cookieName string
	lifetime   time.Duration
	secure     bool
}

const (
	defaultVisitorCookie   = "vartheme_visitor"
	defaultVisitorLifetime = 365 * 24 * time.Hour
)

// Configure installs the shared dependencies used by the HTTP handlers.
func Configure(sm *scs.SessionManager, db *gorm.DB) {
	sessionManager = sm
	database = db
}

// ConfigureStats installs the metrics client used by the stats fragment.
// A nil client leaves the placeholders in place.
func ConfigureStats(client *stats.Client) {
	statsClient = client
}

// ConfigureVisitor sets the cookie that keys durable preferences.
func ConfigureVisitor(cookieName string, lifetime time.Duration, secure bool) {
	if cookieName == "" {
		cookieName = defaultVisitorCookie
	}
	if lifetime <= 0 {
		lifetime = defaultVisitorLifetime
	}
	visitor = visitorConfig{cookieName: cookieName, lifetime: lifetime, secure: secure}
}
