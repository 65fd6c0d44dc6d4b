package stats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, github, npm http.HandlerFunc) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/widgets", github)
	mux.HandleFunc("/downloads/point/last-month/widgets", npm)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()

	client, err := NewClient(Config{
		GitHubRepo:    "acme/widgets",
		NPMPackage:    "widgets",
		GitHubBaseURL: srv.URL,
		NPMBaseURL:    srv.URL + "/",
		HTTPClient:    srv.Client(),
	})
	require.NoError(t, err)
	return client
}

func TestFetchBothMetrics(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t,
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"stargazers_count": 1280}`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"downloads": 45210, "package": "widgets"}`))
		},
	)

	metrics := newTestClient(t, srv).Fetch(context.Background())

	assert.Equal(t, Available(1280), metrics.Stars)
	assert.Equal(t, Available(45210), metrics.Downloads)
	assert.Equal(t, "1,280", metrics.Stars.String())
	assert.Equal(t, "45,210", metrics.Downloads.String())
}

func TestFetchFailureLeavesPlaceholder(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t,
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusForbidden)
		},
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"downloads": 12}`))
		},
	)

	metrics := newTestClient(t, srv).Fetch(context.Background())

	assert.False(t, metrics.Stars.OK)
	assert.Equal(t, Placeholder, metrics.Stars.String())
	assert.Equal(t, "12", metrics.Downloads.String())
}

func TestDownloadsReportsNPMError(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t,
		func(w http.ResponseWriter, r *http.Request) {},
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error": "package widgets not found"}`))
		},
	)

	_, err := newTestClient(t, srv).Downloads(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestStarsRejectsMissingField(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t,
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"message": "Not Found"}`))
		},
		func(w http.ResponseWriter, r *http.Request) {},
	)

	_, err := newTestClient(t, srv).Stars(context.Background())
	assert.Error(t, err)
}

func TestNewClientValidatesRepo(t *testing.T) {
	t.Parallel()

	_, err := NewClient(Config{GitHubRepo: "just-a-name"})
	assert.Error(t, err)

	client, err := NewClient(Config{})
	require.NoError(t, err)
	assert.Equal(t, defaultGitHubRepo, client.githubRepo)
	assert.Equal(t, defaultNPMBaseURL, client.npmBaseURL)
}

func TestCards(t *testing.T) {
	t.Parallel()

	cards := PlaceholderCards()
	require.Len(t, cards, 4)
	assert.Equal(t, Placeholder, cards[0].Value)
	assert.Equal(t, Placeholder, cards[1].Value)
	assert.Equal(t, "7", cards[2].Value)
	assert.Equal(t, "kb", cards[2].Suffix)
	assert.Equal(t, "0", cards[3].Value)
}
