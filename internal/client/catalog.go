package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/target/bookshelf-web/internal/domain/model"
)

// CatalogAPI covers categories and books.
type CatalogAPI struct{ c *Client }

// Categories lists the catalog categories.
func (a *CatalogAPI) Categories(ctx context.Context) ([]model.Category, error) {
	return call[[]model.Category](ctx, a.c, request{method: http.MethodGet, path: "/user/category/list"})
}

// RandomBooks returns n randomly picked books for the home page.
func (a *CatalogAPI) RandomBooks(ctx context.Context, n int) ([]model.Book, error) {
	return call[[]model.Book](ctx, a.c, request{
		method: http.MethodGet,
		path:   "/user/book/random",
		query:  url.Values{"number": {strconv.Itoa(n)}},
	})
}

// BooksByCategory lists the books of one category.
func (a *CatalogAPI) BooksByCategory(ctx context.Context, categoryID int64) ([]model.Book, error) {
	return call[[]model.Book](ctx, a.c, request{
		method: http.MethodGet,
		path:   "/user/book/list",
		query:  url.Values{"category_id": {strconv.FormatInt(categoryID, 10)}},
	})
}

// Book returns a single book.
func (a *CatalogAPI) Book(ctx context.Context, id int64) (model.Book, error) {
	return call[model.Book](ctx, a.c, request{method: http.MethodGet, path: "/user/book/" + strconv.FormatInt(id, 10)})
}

// Search pages through the catalog. Zero-valued filters are not sent.
func (a *CatalogAPI) Search(ctx context.Context, q model.SearchQuery) (model.SearchPage, error) {
	return call[model.SearchPage](ctx, a.c, request{
		method: http.MethodGet,
		path:   "/user/book/page",
		query:  searchParams(q),
	})
}

func searchParams(q model.SearchQuery) url.Values {
	pq := q.PageQuery.Normalize()
	v := pageParams(pq)
	if q.Name != "" {
		v.Set("name", q.Name)
	}
	if q.CategoryID != 0 {
		v.Set("categoryId", strconv.FormatInt(q.CategoryID, 10))
	}
	if q.Status != 0 {
		v.Set("status", strconv.Itoa(q.Status))
	}
	return v
}

func pageParams(q model.PageQuery) url.Values {
	return url.Values{
		"page":     {strconv.Itoa(q.Page)},
		"pageSize": {strconv.Itoa(q.PageSize)},
	}
}
