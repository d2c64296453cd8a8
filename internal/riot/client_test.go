package riot

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient("test-key")
	client.baseURL = server.URL
	return client
}

func TestClientRateLimited(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.MatchIDs(context.Background(), "europe", "puuid", 20)
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("a 429 must surface as ErrRateLimited, got %v", err)
	}
}

func TestClientStatusError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("not found"))
	})

	_, err := client.Match(context.Background(), "europe", "EUW1_1")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("a 404 must surface as a StatusError, got %v", err)
	}
	if statusErr.Status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", statusErr.Status)
	}
}

func TestClientSendsToken(t *testing.T) {
	var gotToken string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Riot-Token")
		_, _ = w.Write([]byte(`[]`))
	})

	if _, err := client.MatchIDs(context.Background(), "europe", "puuid", 20); err != nil {
		t.Fatalf("MatchIDs(...): unexpected error: %v", err)
	}
	if gotToken != "test-key" {
		t.Errorf("X-Riot-Token = %q, want the configured key", gotToken)
	}
}

func TestResolvePlayer(t *testing.T) {
	cases := map[string]struct {
		reason   string
		input    string
		wantPath string
		respond  string
		want     *Player
	}{
		"RiotID": {
			reason:   "A riot id resolves through the account API.",
			input:    "Alpha#EUW",
			wantPath: "/riot/account/v1/accounts/by-riot-id/Alpha/EUW",
			respond:  `{"puuid":"p-1","gameName":"Alpha","tagLine":"EUW"}`,
			want:     &Player{PUUID: "p-1", Name: "Alpha"},
		},
		"LegacyName": {
			reason:   "A plain name resolves through the legacy summoner API.",
			input:    "AlphaPlayer",
			wantPath: "/lol/summoner/v4/summoners/by-name/AlphaPlayer",
			respond:  `{"puuid":"p-2","name":"AlphaPlayer"}`,
			want:     &Player{PUUID: "p-2", Name: "AlphaPlayer"},
		},
		"MissingNameFallsBack": {
			reason:   "An account response without a game name keeps the caller's input.",
			input:    "Alpha#EUW",
			wantPath: "/riot/account/v1/accounts/by-riot-id/Alpha/EUW",
			respond:  `{"puuid":"p-3"}`,
			want:     &Player{PUUID: "p-3", Name: "Alpha#EUW"},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var gotPath string
			client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				_, _ = w.Write([]byte(tc.respond))
			})

			got, err := client.ResolvePlayer(context.Background(), "euw1", "europe", tc.input)
			if err != nil {
				t.Fatalf("\n%s\nResolvePlayer(...): unexpected error: %v", tc.reason, err)
			}
			if gotPath != tc.wantPath {
				t.Errorf("\n%s\nrequest path = %q, want %q", tc.reason, gotPath, tc.wantPath)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("\n%s\nResolvePlayer(...): -want, +got:\n%s", tc.reason, diff)
			}
		})
	}
}

func TestRoute(t *testing.T) {
	cases := map[string]struct {
		reason       string
		region       string
		wantPlatform string
		wantRegional string
		wantOK       bool
	}{
		"EUW": {
			reason: "euw routes to the euw1 platform on the europe cluster.",
			region: "euw", wantPlatform: "euw1", wantRegional: "europe", wantOK: true,
		},
		"NA": {
			reason: "na routes to the na1 platform on the americas cluster.",
			region: "na", wantPlatform: "na1", wantRegional: "americas", wantOK: true,
		},
		"Unknown": {
			reason: "Unknown regions are rejected rather than guessed.",
			region: "moon", wantOK: false,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			platform, regional, ok := Route(tc.region)
			if ok != tc.wantOK {
				t.Fatalf("\n%s\nRoute(%q): ok = %v, want %v", tc.reason, tc.region, ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if platform != tc.wantPlatform || regional != tc.wantRegional {
				t.Errorf("\n%s\nRoute(%q) = %q, %q, want %q, %q",
					tc.reason, tc.region, platform, regional, tc.wantPlatform, tc.wantRegional)
			}
		})
	}
}
