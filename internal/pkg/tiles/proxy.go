package tiles

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/ougirez/riskmap/internal/pkg/constants"
	"github.com/ougirez/riskmap/internal/pkg/logger"
)

const MaxZoom = 19

type Options struct {
	// Upstream is a URL template with {s}, {z}, {x} and {y} placeholders.
	Upstream   string
	Subdomains []string
	UserAgent  string
	Retries    uint64
	RetryDelay time.Duration
	CacheSize  int
	Timeout    time.Duration
}

type Tile struct {
	Data        []byte
	ContentType string
}

type Coord struct {
	Z, X, Y int
}

// ParseCoord accepts the path segments of a tile request; y may carry an
// image extension.
func ParseCoord(z, x, y string) (Coord, error) {
	y = strings.TrimSuffix(strings.TrimSuffix(y, ".png"), ".jpg")

	var (
		c   Coord
		err error
	)
	if c.Z, err = strconv.Atoi(z); err != nil {
		return Coord{}, fmt.Errorf("%w: z=%q", constants.ErrInvalidTile, z)
	}
	if c.X, err = strconv.Atoi(x); err != nil {
		return Coord{}, fmt.Errorf("%w: x=%q", constants.ErrInvalidTile, x)
	}
	if c.Y, err = strconv.Atoi(y); err != nil {
		return Coord{}, fmt.Errorf("%w: y=%q", constants.ErrInvalidTile, y)
	}

	if c.Z < 0 || c.Z > MaxZoom {
		return Coord{}, fmt.Errorf("%w: zoom %d", constants.ErrInvalidTile, c.Z)
	}
	n := 1 << c.Z
	if c.X < 0 || c.X >= n || c.Y < 0 || c.Y >= n {
		return Coord{}, fmt.Errorf("%w: %d/%d/%d", constants.ErrInvalidTile, c.Z, c.X, c.Y)
	}

	return c, nil
}

type Proxy struct {
	opts   Options
	client *http.Client
	cache  *lru.Cache[Coord, *Tile]
	// observe is called once per Fetch with "hit", "fetched" or "failed".
	observe func(result string)
}

func NewProxy(opts Options, observe func(result string)) *Proxy {
	if len(opts.Subdomains) == 0 {
		opts.Subdomains = []string{"a", "b", "c"}
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 100 * time.Millisecond
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if observe == nil {
		observe = func(string) {}
	}

	return &Proxy{
		opts:    opts,
		client:  &http.Client{Timeout: opts.Timeout},
		cache:   newCache(opts.CacheSize),
		observe: observe,
	}
}

func (p *Proxy) URL(c Coord) string {
	s := p.opts.Subdomains[(c.X+c.Y)%len(p.opts.Subdomains)]
	return strings.NewReplacer(
		"{s}", s,
		"{z}", strconv.Itoa(c.Z),
		"{x}", strconv.Itoa(c.X),
		"{y}", strconv.Itoa(c.Y),
	).Replace(p.opts.Upstream)
}

func (p *Proxy) Fetch(ctx context.Context, c Coord) (*Tile, error) {
	if p.cache != nil {
		if t, ok := p.cache.Get(c); ok {
			p.observe("hit")
			return t, nil
		}
	}

	url := p.URL(c)
	var tile *Tile
	err := backoff.Retry(
		func() error {
			t, err := p.fetchOnce(ctx, url)
			if err != nil {
				return err
			}
			tile = t
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(p.opts.RetryDelay), p.opts.Retries),
			ctx,
		),
	)
	if err != nil {
		p.observe("failed")
		logger.Warnf(ctx, "tile %d/%d/%d: %s", c.Z, c.X, c.Y, err.Error())
		return nil, fmt.Errorf("%w: %s", constants.ErrTileUnavailable, err.Error())
	}

	if p.cache != nil {
		p.cache.Add(c, tile)
	}
	p.observe("fetched")
	return tile, nil
}

func (p *Proxy) fetchOnce(ctx context.Context, url string) (*Tile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("http.NewRequest: %w", err))
	}
	if p.opts.UserAgent != "" {
		req.Header.Set("User-Agent", p.opts.UserAgent)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http.Do: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
	default:
		return nil, backoff.Permanent(fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = http.DetectContentType(data)
	}

	return &Tile{Data: data, ContentType: ct}, nil
}

// newCache returns nil when size <= 0, which disables caching.
func newCache(size int) *lru.Cache[Coord, *Tile] {
	if size <= 0 {
		return nil
	}
	c, err := lru.New[Coord, *Tile](size)
	if err != nil {
		return nil
	}
	return c
}
