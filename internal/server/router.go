package server

import (
	"context"
	"net/http"

	"vartheme/internal/handlers"
	applog "vartheme/internal/log"
	"vartheme/internal/views/components"
)

type route struct {
	path    string
	handler http.HandlerFunc
}

func routes() []route {
	return []route{
		{"/healthz", handlers.Health},
		{"/docs", handlers.Docs},
		{"/customize", handlers.Customize},
		{"/customize/import", handlers.ImportBrand},
		{"/preferences", handlers.UpdatePreferences},
		{"/preferences/custom", handlers.UpdateCustomColors},
		{"/theme", handlers.ThemeState},
		{"/theme.css", handlers.Stylesheet},
		{components.StatsPath, handlers.StatsFragment},
		{"/", handlers.Home},
	}
}

func newRouter(staticDir string) http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")
	for _, rt := range routes() {
		mux.HandleFunc(rt.path, rt.handler)
		applog.Debug(context.Background(), "route registered", "path", rt.path)
	}
	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(staticDir))))
	applog.Debug(context.Background(), "route registered", "path", "/assets/", "static", true, "dir", staticDir)
	return mux
}
