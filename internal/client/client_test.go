package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestjam/astrotools/internal/thumb"
)

func TestThumbURL(t *testing.T) {
	type args struct {
		token string
		alias thumb.Alias
	}

	type test struct {
		args args
		body string
		want string
	}

	newServer := func(t *testing.T, tt test) *httptest.Server {
		t.Helper()
		router := chi.NewRouter()
		router.Get("/{id}/{rev}/thumb/{alias}/", func(w http.ResponseWriter, r *http.Request) {
			token := thumb.ParseToken(tt.args.token)
			assert.Equal(t, token.ID, chi.URLParam(r, "id"))
			assert.Equal(t, token.Revision, chi.URLParam(r, "rev"))
			assert.Equal(t, string(tt.args.alias), chi.URLParam(r, "alias"))

			w.Header().Set("Content-Type", "application/json")
			_, err := w.Write([]byte(tt.body))
			require.NoError(t, err)
		})
		return httptest.NewServer(router)
	}

	t.Run("get thumb url", func(t *testing.T) {
		tt := test{
			args: args{
				token: "12345/2",
				alias: thumb.Real,
			},
			body: `{"url": "https://site/img_800x600_abcd.jpg"}`,
			want: "https://site/img_800x600_abcd.jpg",
		}
		server := newServer(t, tt)
		defer server.Close()

		client := New(WithBaseURL(server.URL))
		url, err := client.ThumbURL(context.Background(), thumb.ParseToken(tt.args.token), tt.args.alias)

		require.NoError(t, err)
		assert.Equal(t, tt.want, url)
	})

	t.Run("default revision", func(t *testing.T) {
		tt := test{
			args: args{
				token: "99",
				alias: thumb.QHD,
			},
			body: `{"url": "https://site/x_1x1_y.png"}`,
			want: "https://site/x_1x1_y.png",
		}
		var requested string
		router := chi.NewRouter()
		router.Get("/*", func(w http.ResponseWriter, r *http.Request) {
			requested = r.URL.Path
			_, _ = w.Write([]byte(tt.body))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		client := New(WithBaseURL(server.URL))
		_, err := client.ThumbURL(context.Background(), thumb.ParseToken(tt.args.token), tt.args.alias)

		require.NoError(t, err)
		assert.Equal(t, "/99/0/thumb/qhd/", requested)
	})

	t.Run("response has no url", func(t *testing.T) {
		tt := test{
			args: args{
				token: "1",
				alias: thumb.Real,
			},
			body: `{"detail": "Not found."}`,
		}
		server := newServer(t, tt)
		defer server.Close()

		client := New(WithBaseURL(server.URL))
		_, err := client.ThumbURL(context.Background(), thumb.ParseToken(tt.args.token), tt.args.alias)

		assert.ErrorIs(t, err, ErrNoURL)
	})

	t.Run("malformed json", func(t *testing.T) {
		tt := test{
			args: args{
				token: "1",
				alias: thumb.Real,
			},
			body: `<html></html>`,
		}
		server := newServer(t, tt)
		defer server.Close()

		client := New(WithBaseURL(server.URL))
		_, err := client.ThumbURL(context.Background(), thumb.ParseToken(tt.args.token), tt.args.alias)

		assert.Error(t, err)
	})

	t.Run("url is not a string", func(t *testing.T) {
		tt := test{
			args: args{
				token: "1",
				alias: thumb.Real,
			},
			body: `{"url": 42}`,
		}
		server := newServer(t, tt)
		defer server.Close()

		client := New(WithBaseURL(server.URL))
		_, err := client.ThumbURL(context.Background(), thumb.ParseToken(tt.args.token), tt.args.alias)

		assert.Error(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := New(WithBaseURL(server.URL))
		_, err := client.ThumbURL(context.Background(), thumb.ParseToken("1"), thumb.Real)

		assert.ErrorIs(t, err, ErrUnexpectedStatus)
	})

	t.Run("server does not respond", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		serverURL := server.URL
		server.Close()

		client := New(WithBaseURL(serverURL))
		_, err := client.ThumbURL(context.Background(), thumb.ParseToken("1"), thumb.Real)

		assert.Error(t, err)
	})

	t.Run("timeout", func(t *testing.T) {
		done := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-done:
			case <-time.After(time.Second):
			}
		}))
		defer server.Close()
		defer close(done)

		client := New(WithBaseURL(server.URL), WithTimeout(10*time.Millisecond))
		_, err := client.ThumbURL(context.Background(), thumb.ParseToken("1"), thumb.Real)

		assert.Error(t, err)
	})
}

func TestPageAliases(t *testing.T) {
	const page = `<html><body>
<div class="alias" data-alias="real">Real</div>
<a href="#" data-alias="qhd">QHD</a>
<a href="#" data-alias="real">Real again</a>
<span data-alias="">empty</span>
<img data-alias="story" src="x.png">
</body></html>`

	t.Run("collect aliases", func(t *testing.T) {
		router := chi.NewRouter()
		router.Get("/full/{id}/{rev}/", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "abc", chi.URLParam(r, "id"))
			assert.Equal(t, "0", chi.URLParam(r, "rev"))

			w.Header().Set("Content-Type", "text/html")
			_, err := w.Write([]byte(page))
			require.NoError(t, err)
		})
		server := httptest.NewServer(router)
		defer server.Close()

		client := New(WithBaseURL(server.URL))
		aliases, err := client.PageAliases(context.Background(), thumb.ParseToken("abc"))

		require.NoError(t, err)
		assert.Equal(t, []string{"real", "qhd", "story"}, aliases)
	})

	t.Run("not found", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		defer server.Close()

		client := New(WithBaseURL(server.URL))
		_, err := client.PageAliases(context.Background(), thumb.ParseToken("abc"))

		assert.ErrorIs(t, err, ErrUnexpectedStatus)
	})
}
