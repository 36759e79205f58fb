package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/target/bookshelf-web/internal/domain/model"
)

// AddressAPI covers the reader's address book.
type AddressAPI struct{ c *Client }

// List returns every saved address.
func (a *AddressAPI) List(ctx context.Context) ([]model.AddressBook, error) {
	return call[[]model.AddressBook](ctx, a.c, request{method: http.MethodGet, path: "/user/addressBook/list"})
}

// Create saves a new address.
func (a *AddressAPI) Create(ctx context.Context, addr model.AddressBook) error {
	_, err := call[any](ctx, a.c, request{method: http.MethodPost, path: "/user/addressBook", body: addr})
	return err
}

// Update replaces an address.
func (a *AddressAPI) Update(ctx context.Context, addr model.AddressBook) error {
	_, err := call[any](ctx, a.c, request{method: http.MethodPut, path: "/user/addressBook", body: addr})
	return err
}

// Delete removes an address.
func (a *AddressAPI) Delete(ctx context.Context, id int64) error {
	_, err := call[any](ctx, a.c, request{
		method: http.MethodDelete,
		path:   "/user/addressBook",
		query:  url.Values{"id": {strconv.FormatInt(id, 10)}},
	})
	return err
}

// SetDefault marks an address as the default delivery address.
func (a *AddressAPI) SetDefault(ctx context.Context, id int64) error {
	_, err := call[any](ctx, a.c, request{
		method: http.MethodPut,
		path:   "/user/addressBook/default",
		body:   map[string]int64{"id": id},
	})
	return err
}
