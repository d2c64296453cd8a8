package tierlist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"arenaduo/internal/duo"
)

func TestParse(t *testing.T) {
	cases := map[string]struct {
		reason string
		raw    string
		want   *duo.TierTable
	}{
		"Wrapped": {
			reason: "The hosted document wraps the letters under a tiers key.",
			raw:    `{"tiers":{"S":["Jinx"],"A":["Ahri"],"B":[],"C":["Leona"],"D":[]}}`,
			want: &duo.TierTable{
				ByChampion: map[string]string{"jinx": "S", "ahri": "A", "leona": "C"},
				Entries:    3,
			},
		},
		"TopLevel": {
			reason: "Letters at the top level parse without the wrapper.",
			raw:    `{"S":["Jinx"],"A":["Ahri"]}`,
			want: &duo.TierTable{
				ByChampion: map[string]string{"jinx": "S", "ahri": "A"},
				Entries:    2,
			},
		},
		"LowercaseLetters": {
			reason: "Lowercase tier keys are accepted.",
			raw:    `{"s":["Jinx"],"a":["Ahri"]}`,
			want: &duo.TierTable{
				ByChampion: map[string]string{"jinx": "S", "ahri": "A"},
				Entries:    2,
			},
		},
		"Aliases": {
			reason: "Known champion aliases collapse onto their api name.",
			raw:    `{"S":["Wukong"],"A":["Nunu and Willump"]}`,
			want: &duo.TierTable{
				ByChampion: map[string]string{"monkeyking": "S", "nunu": "A"},
				Entries:    2,
			},
		},
		"NormalizedNames": {
			reason: "Spaced and punctuated names normalize before storage.",
			raw:    `{"S":["Miss Fortune","Kai'Sa"]}`,
			want: &duo.TierTable{
				ByChampion: map[string]string{"missfortune": "S", "kaisa": "S"},
				Entries:    2,
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Parse([]byte(tc.raw))
			if err != nil {
				t.Fatalf("\n%s\nParse(...): unexpected error: %v", tc.reason, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("\n%s\nParse(...): -want, +got:\n%s", tc.reason, diff)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("tier list: jinx is S")); err == nil {
		t.Error("Parse(...): non-JSON input must return an error")
	}
}

type memoryStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string][]byte{}}
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *memoryStore) Put(_ context.Context, key string, value []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func TestSourceLoad(t *testing.T) {
	fetches := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		_, _ = w.Write([]byte(`{"S":["Jinx"],"A":["Ahri"]}`))
	}))
	t.Cleanup(server.Close)

	store := newMemoryStore()
	source := NewSource(server.URL, time.Hour, store)

	got, err := source.Load(context.Background())
	if err != nil {
		t.Fatalf("Load(...): unexpected error: %v", err)
	}
	if got.Entries != 2 {
		t.Errorf("entries = %d, want 2", got.Entries)
	}
	if fetches != 1 {
		t.Errorf("fetches = %d, want 1", fetches)
	}
}

func TestSourceLoadUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	source := NewSource(server.URL, time.Hour, newMemoryStore())
	if _, err := source.Load(context.Background()); err == nil {
		t.Error("Load(...): upstream failure must return an error for the caller to degrade on")
	}
}

func TestSourceLoadFromCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("the source must not hit the network when the cache holds the document")
	}))
	t.Cleanup(server.Close)

	store := newMemoryStore()
	source := NewSource(server.URL, time.Hour, store)
	key := "arenaduo:v2:tierlist:url=" + server.URL
	store.values[key] = []byte(`{"S":["Jinx"],"A":["Ahri"]}`)

	got, err := source.Load(context.Background())
	if err != nil {
		t.Fatalf("Load(...): unexpected error: %v", err)
	}
	if got.Entries != 2 {
		t.Errorf("entries = %d, want 2 from the cached document", got.Entries)
	}
}
