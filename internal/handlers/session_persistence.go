package handlers

import (
	"context"

	"github.com/alexedwards/scs/v2"

	"vartheme/internal/theme"
)

const sessionThemePrefix = "theme:"

// sessionPersistence stores theme entries in the visitor's scs session.
// It needs a request context that passed through LoadAndSave.
type sessionPersistence struct {
	sm *scs.SessionManager
}

func (p sessionPersistence) Get(ctx context.Context, key string) (string, bool, error) {
	if p.sm == nil {
		return "", false, theme.ErrUnavailable
	}
	if !p.sm.Exists(ctx, sessionThemePrefix+key) {
		return "", false, nil
	}
	return p.sm.GetString(ctx, sessionThemePrefix+key), true, nil
}

func (p sessionPersistence) Set(ctx context.Context, key, value string) error {
	if p.sm == nil {
		return theme.ErrUnavailable
	}
	p.sm.Put(ctx, sessionThemePrefix+key, value)
	return nil
}
