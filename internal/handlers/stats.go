package handlers

import (
	"net/http"

	"vartheme/internal/stats"
	"vartheme/internal/views/components"
)

// StatsFragment renders the stat cards with live metrics. Lookups that
// fail keep their placeholder.
func StatsFragment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	cards := stats.PlaceholderCards()
	if statsClient != nil {
		cards = statsClient.Fetch(r.Context()).Cards()
	}
	renderComponent(r.Context(), w, http.StatusOK, components.StatsSection(cards))
}
