package tiles

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ougirez/riskmap/internal/pkg/constants"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestParseCoord(t *testing.T) {
	c, err := ParseCoord("7", "95", "54.png")
	if err != nil {
		t.Fatalf("ParseCoord: %v", err)
	}
	if c != (Coord{Z: 7, X: 95, Y: 54}) {
		t.Fatalf("ParseCoord = %+v", c)
	}

	bad := [][3]string{
		{"x", "0", "0"},
		{"20", "0", "0"},
		{"-1", "0", "0"},
		{"2", "4", "0"},
		{"2", "0", "-1"},
		{"3", "1", "y.png"},
	}
	for _, b := range bad {
		if _, err := ParseCoord(b[0], b[1], b[2]); !errors.Is(err, constants.ErrInvalidTile) {
			t.Errorf("ParseCoord(%v) err = %v, want ErrInvalidTile", b, err)
		}
	}
}

func TestURLPicksSubdomain(t *testing.T) {
	p := NewProxy(Options{Upstream: "https://{s}.tile.example.org/{z}/{x}/{y}.png"}, nil)
	if got, want := p.URL(Coord{Z: 7, X: 95, Y: 53}), "https://b.tile.example.org/7/95/53.png"; got != want {
		t.Fatalf("URL = %q, want %q", got, want)
	}
	if got, want := p.URL(Coord{Z: 1, X: 1, Y: 1}), "https://c.tile.example.org/1/1/1.png"; got != want {
		t.Fatalf("URL = %q, want %q", got, want)
	}
}

func TestFetchCachesTiles(t *testing.T) {
	var hits atomic.Int32
	var gotUA atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		gotUA.Store(r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngHeader)
	}))
	defer srv.Close()

	var results []string
	p := NewProxy(Options{
		Upstream:  srv.URL + "/{z}/{x}/{y}.png",
		UserAgent: "riskmap-test",
		CacheSize: 8,
	}, func(r string) { results = append(results, r) })

	for i := 0; i < 3; i++ {
		tile, err := p.Fetch(context.Background(), Coord{Z: 1, X: 0, Y: 1})
		if err != nil {
			t.Fatalf("Fetch: %v", err)
		}
		if tile.ContentType != "image/png" || len(tile.Data) != len(pngHeader) {
			t.Fatalf("unexpected tile %+v", tile)
		}
	}

	if hits.Load() != 1 {
		t.Fatalf("upstream hit %d times, want 1", hits.Load())
	}
	if gotUA.Load() != "riskmap-test" {
		t.Fatalf("User-Agent = %v", gotUA.Load())
	}
	if len(results) != 3 || results[0] != "fetched" || results[2] != "hit" {
		t.Fatalf("observed %v", results)
	}
}

func TestFetchRetriesServerErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write(pngHeader)
	}))
	defer srv.Close()

	p := NewProxy(Options{
		Upstream:   srv.URL + "/{z}/{x}/{y}.png",
		Retries:    3,
		RetryDelay: time.Millisecond,
	}, nil)

	tile, err := p.Fetch(context.Background(), Coord{})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if tile.ContentType != "image/png" {
		t.Fatalf("sniffed content type = %q", tile.ContentType)
	}
	if hits.Load() != 3 {
		t.Fatalf("upstream hit %d times, want 3", hits.Load())
	}
}

func TestFetchDoesNotRetryClientErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	p := NewProxy(Options{
		Upstream:   srv.URL + "/{z}/{x}/{y}.png",
		Retries:    5,
		RetryDelay: time.Millisecond,
	}, nil)

	_, err := p.Fetch(context.Background(), Coord{})
	if !errors.Is(err, constants.ErrTileUnavailable) {
		t.Fatalf("err = %v, want ErrTileUnavailable", err)
	}
	if hits.Load() != 1 {
		t.Fatalf("upstream hit %d times, want 1", hits.Load())
	}
}

func TestFetchUnreachableUpstream(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	p := NewProxy(Options{Upstream: url + "/{z}/{x}/{y}.png", Retries: 1, RetryDelay: time.Millisecond}, nil)
	if _, err := p.Fetch(context.Background(), Coord{}); !errors.Is(err, constants.ErrTileUnavailable) {
		t.Fatalf("err = %v, want ErrTileUnavailable", err)
	}
}

func TestCacheEvictsOldest(t *testing.T) {
	c := newCache(2)
	a, b, d := Coord{Z: 1}, Coord{Z: 2}, Coord{Z: 3}
	c.Add(a, &Tile{})
	c.Add(b, &Tile{})
	c.Add(d, &Tile{})

	if _, ok := c.Get(a); ok {
		t.Fatalf("oldest tile not evicted")
	}
	if _, ok := c.Get(d); !ok {
		t.Fatalf("newest tile missing")
	}
	if c.Len() != 2 {
		t.Fatalf("cache len = %d, want 2", c.Len())
	}

	if newCache(0) != nil {
		t.Fatalf("zero size did not disable the cache")
	}
}

func TestFetchWithoutCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write(pngHeader)
	}))
	defer srv.Close()

	p := NewProxy(Options{Upstream: srv.URL + "/{z}/{x}/{y}.png"}, nil)
	for i := 0; i < 2; i++ {
		if _, err := p.Fetch(context.Background(), Coord{}); err != nil {
			t.Fatalf("Fetch: %v", err)
		}
	}
	if hits.Load() != 2 {
		t.Fatalf("upstream hit %d times, want 2 with caching disabled", hits.Load())
	}
}
