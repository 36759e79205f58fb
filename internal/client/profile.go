package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/target/bookshelf-web/internal/domain/model"
	apperrors "github.com/target/bookshelf-web/internal/errors"
)

// ProfileAPI covers the reader profile and avatar upload.
type ProfileAPI struct{ c *Client }

// Get returns the profile of a user.
func (a *ProfileAPI) Get(ctx context.Context, id int64) (model.User, error) {
	return call[model.User](ctx, a.c, request{
		method: http.MethodGet,
		path:   "/user/profile",
		query:  url.Values{"id": {strconv.FormatInt(id, 10)}},
	})
}

// Update saves profile changes and reports whether the backend applied them.
func (a *ProfileAPI) Update(ctx context.Context, user model.User) (bool, error) {
	return call[bool](ctx, a.c, request{method: http.MethodPut, path: "/user/profile", body: user})
}

// Upload sends a file as multipart field "file" and returns its public URL.
func (a *ProfileAPI) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "create multipart file")
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "copy upload")
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	return call[string](ctx, a.c, request{
		method:      http.MethodPost,
		path:        "/user/common/upload",
		rawBody:     &buf,
		contentType: mw.FormDataContentType(),
	})
}
