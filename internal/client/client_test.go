package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/target/bookshelf-web/internal/domain/model"
	apperrors "github.com/target/bookshelf-web/internal/errors"
)

// recorded captures what the fake backend received.
type recorded struct {
	Method      string
	Path        string
	Query       string
	Body        string
	ContentType string
	Token       string
}

// newBackend starts a fake backend that records each request and replies with reply.
func newBackend(t *testing.T, status int, reply string) (*httptest.Server, *[]recorded) {
	t.Helper()
	var got []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got = append(got, recorded{
			Method:      r.Method,
			Path:        r.URL.Path,
			Query:       r.URL.RawQuery,
			Body:        string(body),
			ContentType: r.Header.Get("Content-Type"),
			Token:       r.Header.Get(DefaultTokenHeader),
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func newTestClient(t *testing.T, baseURL string, cfg Config) *Client {
	t.Helper()
	cfg.BaseURL = baseURL
	c, err := New(cfg)
	require.NoError(t, err)
	return c
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)

	_, err = New(Config{BaseURL: "ftp://backend"})
	require.Error(t, err)
}

func TestCall_DecodesSuccessEnvelope(t *testing.T) {
	srv, got := newBackend(t, http.StatusOK,
		`{"code":1,"message":"ok","data":[{"id":1,"name":"Fiction","sort":1,"status":1}]}`)
	c := newTestClient(t, srv.URL, Config{})

	cats, err := c.Catalog.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Fiction", cats[0].Name)
	assert.Equal(t, http.MethodGet, (*got)[0].Method)
	assert.Equal(t, "/user/category/list", (*got)[0].Path)
	assert.Empty(t, (*got)[0].Token)
}

func TestCall_NonSuccessCodeIsAPIError(t *testing.T) {
	srv, _ := newBackend(t, http.StatusOK, `{"code":0,"message":"wrong password","data":null}`)
	c := newTestClient(t, srv.URL, Config{})

	_, err := c.Auth.LoginPassword(context.Background(), model.LoginForm{Email: "a@b.co", Password: "nope"})
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 0, apiErr.Code)
	assert.Equal(t, "wrong password", apiErr.Message)
	assert.Contains(t, err.Error(), "/user/login/password")
}

func TestCall_CustomSuccessCode(t *testing.T) {
	srv, _ := newBackend(t, http.StatusOK, `{"code":200,"message":"ok","data":true}`)
	c := newTestClient(t, srv.URL, Config{SuccessCode: 200})

	ok, err := c.Profile.Update(context.Background(), model.User{ID: 1})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCall_HTTPStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusUnauthorized, apperrors.IsUnauthorized},
		{http.StatusNotFound, apperrors.IsNotFound},
		{http.StatusBadGateway, apperrors.IsUpstream},
	}
	for _, tt := range tests {
		srv, _ := newBackend(t, tt.status, `{"code":0,"message":"nope"}`)
		c := newTestClient(t, srv.URL, Config{})
		_, err := c.Catalog.Book(context.Background(), 3)
		assert.True(t, tt.check(err), "status %d: %v", tt.status, err)
	}
}

func TestCall_MalformedEnvelopeIsUpstream(t *testing.T) {
	srv, _ := newBackend(t, http.StatusOK, `<html>oops</html>`)
	c := newTestClient(t, srv.URL, Config{})

	_, err := c.Catalog.Categories(context.Background())
	assert.True(t, apperrors.IsUpstream(err), "%v", err)
}

func TestCall_AttachesToken(t *testing.T) {
	srv, got := newBackend(t, http.StatusOK, `{"code":1,"data":[]}`)
	c := newTestClient(t, srv.URL, Config{Tokens: StaticToken("tok-1")})

	_, err := c.Cart.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", (*got)[0].Token)

	// Per-call token wins over the configured source.
	_, err = c.Cart.List(WithToken(context.Background(), "tok-2"))
	require.NoError(t, err)
	assert.Equal(t, "tok-2", (*got)[1].Token)
}

func TestCall_TokenScheme(t *testing.T) {
	var header string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get("Authorization")
		_, _ = io.WriteString(w, `{"code":1,"data":null}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, Config{
		TokenHeader: "Authorization",
		TokenScheme: "Bearer",
		Tokens:      StaticToken("abc"),
	})
	require.NoError(t, c.Cart.Clear(context.Background()))
	assert.Equal(t, "Bearer abc", header)
}

func TestCall_RetriesIdempotentReadsOnly(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = io.WriteString(w, `{"code":1,"data":[]}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, Config{RetryLimit: 1})
	_, err := c.Catalog.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())

	hits.Store(0)
	err = c.Cart.Clear(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestCall_ContextTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, Config{})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Catalog.Categories(ctx)
	require.Error(t, err)
	assert.True(t, apperrors.IsTimeout(err), "%v", err)
}

func TestProfile_UploadSendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/common/upload", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		f, hdr, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "avatar.png", hdr.Filename)
		assert.Equal(t, "PNGDATA", string(data))
		_ = json.NewEncoder(w).Encode(map[string]any{"code": 1, "data": "https://cdn.example.com/avatar.png"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, Config{})
	u, err := c.Profile.Upload(context.Background(), "avatar.png", strings.NewReader("PNGDATA"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/avatar.png", u)
}

func TestCall_EscapesPathIDsOnce(t *testing.T) {
	var rawPaths, paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawPaths = append(rawPaths, r.URL.EscapedPath())
		paths = append(paths, r.URL.Path)
		_, _ = io.WriteString(w, `{"code":1,"data":null}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL+"/api", Config{})
	require.NoError(t, c.Borrows.Complete(context.Background(), "a b/c"))
	require.NoError(t, c.Orders.Complete(context.Background(), "B-17%"))

	assert.Equal(t, []string{"/api/user/borrow/complete/a b/c", "/api/user/borrow/complete/B-17%"}, paths)
	assert.Equal(t, "/api/user/borrow/complete/a%20b%2Fc", rawPaths[0])
}
