package mediacache_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calkit/stepdoc/mediacache"
)

func TestCacheFetchOnce(t *testing.T) {
	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		w.Header().Set("Content-Type", "video/mp4")
		w.Write([]byte("payload:" + r.URL.Path))
	}))
	defer srv.Close()

	var c mediacache.Cache
	url := srv.URL + "/a.mp4"

	t.Run("concurrent callers share one fetch", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				e, err := c.FetchOnce(context.Background(), url)
				assert.NoError(t, err)
				assert.Equal(t, []byte("payload:/a.mp4"), e.Data)
			}()
		}
		wg.Wait()
		assert.Equal(t, int64(1), atomic.LoadInt64(&hits))
	})

	t.Run("later calls hit the cache", func(t *testing.T) {
		e, err := c.FetchOnce(context.Background(), url)
		require.NoError(t, err)
		assert.Equal(t, "video/mp4", e.ContentType)
		assert.Equal(t, int64(1), atomic.LoadInt64(&hits))
		assert.Equal(t, 1, c.Len())
	})

	t.Run("distinct urls fetch separately", func(t *testing.T) {
		_, err := c.FetchOnce(context.Background(), srv.URL+"/b.mp4")
		require.NoError(t, err)
		assert.Equal(t, int64(2), atomic.LoadInt64(&hits))
		assert.Equal(t, 2, c.Len())
	})
}

func TestCacheFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	var c mediacache.Cache
	_, err := c.FetchOnce(context.Background(), srv.URL+"/missing.png")
	require.Error(t, err)
	// failures are not cached
	assert.Equal(t, 0, c.Len())
}

func TestCacheResolver(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.URL.Path))
	}))
	defer srv.Close()

	c := mediacache.Cache{Resolve: func(url string) string {
		return srv.URL + "/mirror/" + url
	}}
	e, err := c.FetchOnce(context.Background(), "x.png")
	require.NoError(t, err)
	assert.Equal(t, "x.png", e.URL)
	assert.Equal(t, []byte("/mirror/x.png"), e.Data)
}
