package riot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrRateLimited signals an upstream 429. Callers must surface it as a
// retryable condition rather than a generic fetch failure.
var ErrRateLimited = errors.New("riot api rate limited")

// StatusError is a non-2xx, non-429 response from the Riot API.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("riot api error: %d %s", e.Status, e.Body)
}

// Client talks to the Riot platform and regional APIs.
type Client struct {
	apiKey     string
	httpClient *http.Client

	// baseURL overrides the riotgames.com hosts in tests.
	baseURL string
}

// NewClient builds a Riot API client with the given key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *Client) hostURL(host string) string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return fmt.Sprintf("https://%s.api.riotgames.com", host)
}

func (c *Client) get(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Riot-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("riot api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Status: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode riot response: %w", err)
	}
	return nil
}

// AccountByRiotID fetches account info for a gameName#tagLine pair via the
// regional routing host.
func (c *Client) AccountByRiotID(ctx context.Context, regional, gameName, tagLine string) (*Account, error) {
	u := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		c.hostURL(regional), url.PathEscape(gameName), url.PathEscape(tagLine))
	var account Account
	if err := c.get(ctx, u, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// SummonerByName fetches a summoner by legacy display name via the platform
// host.
func (c *Client) SummonerByName(ctx context.Context, platform, name string) (*Summoner, error) {
	u := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-name/%s",
		c.hostURL(platform), url.PathEscape(name))
	var summoner Summoner
	if err := c.get(ctx, u, &summoner); err != nil {
		return nil, err
	}
	return &summoner, nil
}

// MatchIDs fetches the most recent match ids for a player.
func (c *Client) MatchIDs(ctx context.Context, regional, puuid string, count int) ([]string, error) {
	u := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?start=0&count=%d",
		c.hostURL(regional), url.PathEscape(puuid), count)
	var ids []string
	if err := c.get(ctx, u, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Match fetches full match data by id.
func (c *Client) Match(ctx context.Context, regional, matchID string) (*Match, error) {
	u := fmt.Sprintf("%s/lol/match/v5/matches/%s", c.hostURL(regional), url.PathEscape(matchID))
	var match Match
	if err := c.get(ctx, u, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

// ResolvePlayer resolves a player input to a PUUID and display name. Inputs
// that parse as a riot id use the account API; anything else falls back to
// the legacy summoner-by-name lookup.
func (c *Client) ResolvePlayer(ctx context.Context, platform, regional, input string) (*Player, error) {
	if id := ParseRiotID(input); id != nil {
		account, err := c.AccountByRiotID(ctx, regional, id.GameName, id.TagLine)
		if err != nil {
			return nil, err
		}
		name := account.GameName
		if name == "" {
			name = input
		}
		return &Player{PUUID: account.PUUID, Name: name}, nil
	}

	summoner, err := c.SummonerByName(ctx, platform, input)
	if err != nil {
		return nil, err
	}
	name := summoner.Name
	if name == "" {
		name = input
	}
	return &Player{PUUID: summoner.PUUID, Name: name}, nil
}
