package handlers

import (
	"context"
	"net/http"

	"vartheme/internal/db"
	applog "vartheme/internal/log"
	"vartheme/internal/theme"
)

// requestPersistence layers the session over the visitor's durable
// preferences. Reads prefer the session; writes go to both.
func requestPersistence(w http.ResponseWriter, r *http.Request) theme.Persistence {
	layers := theme.Layered{sessionPersistence{sm: sessionManager}}
	if token := visitorToken(w, r); token != "" {
		layers = append(layers, db.NewPreferenceStore(database, token))
	}
	return layers
}

// mountDocument builds the theme document for one request and mounts the
// page as its state-owning fragment. The returned context carries the
// document for passive fragments rendered inside the page.
func mountDocument(w http.ResponseWriter, r *http.Request) (context.Context, *theme.Document, func()) {
	doc := theme.NewDocument(requestPersistence(w, r), theme.WithSessionMemory(sessionPersistence{sm: sessionManager}))
	active := doc.Active(r.Context(), func(id theme.Identity, _ theme.ColorSet) {
		applog.Debug(r.Context(), "page identity", "theme", id.Name, "mode", id.Mode)
	})
	return theme.WithDocument(r.Context(), doc), doc, active.Unmount
}
