// Package spotify talks to the upstream streaming catalog: a
// client-credentials access token plus the top-shows search used by the
// refresh pipeline.
package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAccountsURL = "https://accounts.spotify.com"
	defaultAPIURL      = "https://api.spotify.com"
)

// ErrAuth marks a failed credential exchange so callers can tell an auth
// problem from a plain fetch failure.
var ErrAuth = errors.New("spotify: authentication failed")

// HTTPClient allows injecting a test transport.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Client)

func WithHTTPClient(hc HTTPClient) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithAccountsURL(u string) Option {
	return func(c *Client) { c.accountsURL = u }
}

func WithAPIURL(u string) Option {
	return func(c *Client) { c.apiURL = u }
}

type Client struct {
	clientID     string
	clientSecret string
	accountsURL  string
	apiURL       string
	httpClient   HTTPClient
}

func NewClient(clientID, clientSecret string, opts ...Option) *Client {
	c := &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		accountsURL:  defaultAccountsURL,
		apiURL:       defaultAPIURL,
		httpClient:   &http.Client{Timeout: 12 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Show is a normalized top-shows record.
type Show struct {
	ID            string
	Name          string
	Description   string
	Publisher     string
	URL           string
	ImageURL      string
	TotalEpisodes int
}

// Token obtains a client-credentials access token.
func (c *Client) Token(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.accountsURL+"/api/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("spotify: build token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuth, err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", ErrAuth, resp.StatusCode, string(body))
	}

	var tok struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", fmt.Errorf("%w: decode: %v", ErrAuth, err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrAuth)
	}
	return tok.AccessToken, nil
}

type searchResponse struct {
	Shows struct {
		Items []struct {
			ID           string `json:"id"`
			Name         string `json:"name"`
			Description  string `json:"description"`
			Publisher    string `json:"publisher"`
			ExternalURLs struct {
				Spotify string `json:"spotify"`
			} `json:"external_urls"`
			Images []struct {
				URL string `json:"url"`
			} `json:"images"`
			TotalEpisodes int `json:"total_episodes"`
		} `json:"items"`
	} `json:"shows"`
}

// TopShows fetches the current top business shows for one locale.
func (c *Client) TopShows(ctx context.Context, token, locale string, limit int) ([]Show, error) {
	u, err := url.Parse(c.apiURL + "/v1/search")
	if err != nil {
		return nil, fmt.Errorf("spotify: parse url: %w", err)
	}
	q := u.Query()
	q.Set("q", "business")
	q.Set("type", "show")
	q.Set("market", locale)
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("spotify: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("spotify: request: %w", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spotify: status %d: %s", resp.StatusCode, string(body))
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("spotify: decode: %w", err)
	}

	shows := make([]Show, 0, len(sr.Shows.Items))
	for _, item := range sr.Shows.Items {
		if item.ID == "" {
			continue
		}
		s := Show{
			ID:            item.ID,
			Name:          item.Name,
			Description:   item.Description,
			Publisher:     item.Publisher,
			URL:           item.ExternalURLs.Spotify,
			TotalEpisodes: item.TotalEpisodes,
		}
		if len(item.Images) > 0 {
			s.ImageURL = item.Images[0].URL
		}
		shows = append(shows, s)
	}
	return shows, nil
}
