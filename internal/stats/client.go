// Package stats fetches the public popularity metrics shown on the home
// page: GitHub stars and monthly npm downloads.
package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	applog "vartheme/internal/log"
)

const (
	defaultGitHubBaseURL = "https://api.github.com"
	defaultNPMBaseURL    = "https://api.npmjs.org"
	defaultGitHubRepo    = "sumitt-wayne/vartheme"
	defaultNPMPackage    = "vartheme"
	defaultTimeout       = 5 * time.Second
)

// Config describes where metrics are fetched from.
type Config struct {
	GitHubRepo    string
	NPMPackage    string
	GitHubBaseURL string
	NPMBaseURL    string
	Timeout       time.Duration
	HTTPClient    *http.Client
}

// Client performs the metric lookups. There is no caching and no retry.
type Client struct {
	githubRepo    string
	npmPackage    string
	githubBaseURL string
	npmBaseURL    string
	httpClient    *http.Client
}

// NewClient builds a Client, filling unset fields with the public
// endpoints for the vartheme project.
func NewClient(cfg Config) (*Client, error) {
	repo := strings.Trim(strings.TrimSpace(cfg.GitHubRepo), "/")
	if repo == "" {
		repo = defaultGitHubRepo
	}
	if strings.Count(repo, "/") != 1 {
		return nil, fmt.Errorf("stats: github repo %q must be owner/name", repo)
	}

	pkg := strings.TrimSpace(cfg.NPMPackage)
	if pkg == "" {
		pkg = defaultNPMPackage
	}

	githubBaseURL := strings.TrimSpace(cfg.GitHubBaseURL)
	if githubBaseURL == "" {
		githubBaseURL = defaultGitHubBaseURL
	}
	npmBaseURL := strings.TrimSpace(cfg.NPMBaseURL)
	if npmBaseURL == "" {
		npmBaseURL = defaultNPMBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: timeout,
		}
	}

	return &Client{
		githubRepo:    repo,
		npmPackage:    pkg,
		githubBaseURL: strings.TrimRight(githubBaseURL, "/"),
		npmBaseURL:    strings.TrimRight(npmBaseURL, "/"),
		httpClient:    httpClient,
	}, nil
}

// Fetch performs both lookups concurrently. A failed lookup leaves its
// metric unavailable and never affects the other one.
func (c *Client) Fetch(ctx context.Context) Metrics {
	var (
		metrics Metrics
		group   errgroup.Group
	)

	group.Go(func() error {
		stars, err := c.Stars(ctx)
		if err != nil {
			applog.Error(ctx, "github stars lookup failed", "repo", c.githubRepo, "error", err)
			return nil
		}
		metrics.Stars = Available(stars)
		return nil
	})
	group.Go(func() error {
		downloads, err := c.Downloads(ctx)
		if err != nil {
			applog.Error(ctx, "npm downloads lookup failed", "package", c.npmPackage, "error", err)
			return nil
		}
		metrics.Downloads = Available(downloads)
		return nil
	})
	_ = group.Wait()

	return metrics
}

// Stars returns the stargazer count of the GitHub repository.
func (c *Client) Stars(ctx context.Context) (int64, error) {
	var payload struct {
		StargazersCount *int64 `json:"stargazers_count"`
	}
	endpoint := fmt.Sprintf("%s/repos/%s", c.githubBaseURL, c.githubRepo)
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return 0, err
	}
	if payload.StargazersCount == nil {
		return 0, errors.New("stats: github response missing stargazers_count")
	}
	return *payload.StargazersCount, nil
}

// Downloads returns the npm download count for the last month.
func (c *Client) Downloads(ctx context.Context) (int64, error) {
	var payload struct {
		Downloads *int64 `json:"downloads"`
		Error     string `json:"error"`
	}
	endpoint := fmt.Sprintf("%s/downloads/point/last-month/%s", c.npmBaseURL, url.PathEscape(c.npmPackage))
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return 0, err
	}
	if payload.Error != "" {
		return 0, fmt.Errorf("stats: npm returned %q", payload.Error)
	}
	if payload.Downloads == nil {
		return 0, errors.New("stats: npm response missing downloads")
	}
	return *payload.Downloads, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("stats: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("stats: call %s: %w", req.URL.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("stats: %s returned status %s", req.URL.Host, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("stats: decode response: %w", err)
	}
	return nil
}
