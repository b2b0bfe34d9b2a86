package http_test

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ogniew/pith"
	pithhttp "github.com/ogniew/pith/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the body on 200", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			_, _ = w.Write([]byte("<html><body>hello</body></html>"))
		}))
		defer srv.Close()

		f := pithhttp.NewFetcher()
		defer f.Close()

		got, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "<html><body>hello</body></html>", got)
	})

	t.Run("sends a user agent", func(t *testing.T) {
		t.Parallel()

		var ua string
		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			ua = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		f := pithhttp.NewFetcher(pithhttp.WithUserAgent("test-agent/0.1"))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "test-agent/0.1", ua)
	})

	t.Run("returns ENOTFOUND on 404", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusNotFound)
		}))
		defer srv.Close()

		f := pithhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, pith.ENOTFOUND, pith.ErrorCode(err))
	})

	t.Run("returns EINTERNAL on server errors", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusInternalServerError)
		}))
		defer srv.Close()

		f := pithhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, pith.EINTERNAL, pith.ErrorCode(err))
	})

	t.Run("returns EINVALID for a malformed URL", func(t *testing.T) {
		t.Parallel()

		f := pithhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), "http://exa mple.com")

		require.Error(t, err)
		assert.Equal(t, pith.EINVALID, pith.ErrorCode(err))
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			time.Sleep(2 * time.Second)
		}))
		defer srv.Close()

		f := pithhttp.NewFetcher()
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := f.Fetch(ctx, srv.URL)

		require.Error(t, err)
	})
}
