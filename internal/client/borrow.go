package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/target/bookshelf-web/internal/domain/model"
)

// BorrowCartAPI covers the reader's book list before borrowing.
type BorrowCartAPI struct{ c *Client }

// Add puts a book on the list.
func (a *BorrowCartAPI) Add(ctx context.Context, item model.BookData) error {
	_, err := call[any](ctx, a.c, request{method: http.MethodPost, path: "/user/borrowCart/add", body: item})
	return err
}

// List returns the book list.
func (a *BorrowCartAPI) List(ctx context.Context) ([]model.BorrowCartItem, error) {
	return call[[]model.BorrowCartItem](ctx, a.c, request{method: http.MethodGet, path: "/user/borrowCart/list"})
}

// Remove deletes one entry.
func (a *BorrowCartAPI) Remove(ctx context.Context, id int64) error {
	_, err := call[any](ctx, a.c, request{method: http.MethodDelete, path: "/user/borrowCart/" + strconv.FormatInt(id, 10)})
	return err
}

// Clear empties the list.
func (a *BorrowCartAPI) Clear(ctx context.Context) error {
	_, err := call[any](ctx, a.c, request{method: http.MethodDelete, path: "/user/borrowCart/clean"})
	return err
}

// Submit borrows the listed books.
func (a *BorrowCartAPI) Submit(ctx context.Context, list model.BorrowList) (model.BorrowResponse, error) {
	return call[model.BorrowResponse](ctx, a.c, request{method: http.MethodPost, path: "/user/borrow/borrow", body: list})
}

// BorrowAPI covers borrow history and its actions.
type BorrowAPI struct{ c *Client }

// History pages through the reader's borrow records.
func (a *BorrowAPI) History(ctx context.Context, q model.BorrowQuery) (model.BorrowPage, error) {
	v := pageParams(q.PageQuery.Normalize())
	if q.Status != nil {
		v.Set("status", strconv.Itoa(int(*q.Status)))
	}
	return call[model.BorrowPage](ctx, a.c, request{method: http.MethodGet, path: "/user/borrow/history", query: v})
}

// Complete returns the books of a borrow record.
func (a *BorrowAPI) Complete(ctx context.Context, id string) error {
	_, err := call[any](ctx, a.c, request{method: http.MethodPut, path: "/user/borrow/complete/" + url.PathEscape(id)})
	return err
}

// Renew extends the due date of a borrow record.
func (a *BorrowAPI) Renew(ctx context.Context, id int64) error {
	_, err := call[any](ctx, a.c, request{method: http.MethodPut, path: "/user/borrow/renew/" + strconv.FormatInt(id, 10)})
	return err
}
