// Package mediacache opportunistically pre-fetches referenced media, at
// most once per URL.
//
// It is an optimization layer owned by whatever renders a parsed model; the
// parsing core never depends on it and remains correct if it is absent. A
// Cache is explicitly injected where needed rather than living in ambient
// shared state.
package mediacache

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Resolver maps a referenced media URL to the URL actually fetched,
// letting a host rewrite references to a CDN or local mirror.
type Resolver func(url string) string

// Identity is the default Resolver; it returns its argument.
func Identity(url string) string { return url }

// Entry is a fetched media blob.
type Entry struct {
	URL         string
	ContentType string
	Data        []byte
	FetchedAt   time.Time
}

// Cache fetches and retains media blobs keyed by URL. Concurrent FetchOnce
// calls for the same URL share a single in-flight request. The zero value
// is ready to use.
type Cache struct {
	// Client performs fetches; nil means http.DefaultClient.
	Client *http.Client
	// Resolve rewrites URLs before fetching; nil means Identity.
	Resolve Resolver

	group   singleflight.Group
	mu      sync.Mutex
	entries map[string]*Entry
}

// Get returns the cached entry for url, if any.
func (c *Cache) Get(url string) (*Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[url]
	return e, ok
}

// Len returns how many entries the cache holds.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// FetchOnce returns the entry for url, fetching it on first use. A failed
// fetch is not cached, so a later call retries.
func (c *Cache) FetchOnce(ctx context.Context, url string) (*Entry, error) {
	if e, ok := c.Get(url); ok {
		return e, nil
	}
	v, err, _ := c.group.Do(url, func() (interface{}, error) {
		if e, ok := c.Get(url); ok {
			return e, nil
		}
		e, err := c.fetch(ctx, url)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		if c.entries == nil {
			c.entries = make(map[string]*Entry)
		}
		c.entries[url] = e
		c.mu.Unlock()
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Entry), nil
}

func (c *Cache) fetch(ctx context.Context, url string) (*Entry, error) {
	resolve := c.Resolve
	if resolve == nil {
		resolve = Identity
	}
	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resolve(url), nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &Entry{
		URL:         url,
		ContentType: resp.Header.Get("Content-Type"),
		Data:        data,
		FetchedAt:   time.Now(),
	}, nil
}
