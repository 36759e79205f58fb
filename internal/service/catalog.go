package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/target/bookshelf-web/internal/domain/model"
	"github.com/target/bookshelf-web/internal/domain/route"
	apperrors "github.com/target/bookshelf-web/internal/errors"
	"github.com/target/bookshelf-web/internal/ports"
)

// DefaultHomeBooks is the number of random books shown on the home page.
const DefaultHomeBooks = 8

// MaxHomeBooks caps the random pick.
const MaxHomeBooks = 50

// CatalogServiceOptions groups dependencies for CatalogService.
type CatalogServiceOptions struct {
	Backend ports.CatalogBackend
	Routes  *route.Table // Optional: defaults to route.DefaultTable()
	Logger  *slog.Logger
}

// CatalogService reads the catalog and links books to their detail page.
type CatalogService struct {
	backend ports.CatalogBackend
	routes  *route.Table
	logger  *slog.Logger
}

// NewCatalogService constructs a new CatalogService.
func NewCatalogService(opts CatalogServiceOptions) *CatalogService {
	if opts.Backend == nil {
		panic("CatalogBackend is required")
	}
	routes := opts.Routes
	if routes == nil {
		routes = route.DefaultTable()
	}
	if err := routes.Validate(route.NameIntroduction); err != nil {
		panic(err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{backend: opts.Backend, routes: routes, logger: logger}
}

// BookView is a book with the URL of its detail page.
type BookView struct {
	model.Book
	URL string `json:"url"`
}

// Home is the data behind the landing page.
type Home struct {
	Categories []model.Category `json:"categories"`
	Books      []BookView       `json:"books"`
}

// Home loads the categories and n random books concurrently.
// n <= 0 selects DefaultHomeBooks.
func (s *CatalogService) Home(ctx context.Context, n int) (*Home, error) {
	switch {
	case n <= 0:
		n = DefaultHomeBooks
	case n > MaxHomeBooks:
		n = MaxHomeBooks
	}

	var (
		categories []model.Category
		books      []model.Book
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = s.backend.Categories(gctx)
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		books, err = s.backend.RandomBooks(gctx, n)
		if err != nil {
			return fmt.Errorf("random books: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Home{Categories: categories, Books: s.views(books)}, nil
}

// Book returns one book.
func (s *CatalogService) Book(ctx context.Context, id int64) (*BookView, error) {
	if id <= 0 {
		return nil, apperrors.ValidationField("id", "book id must be positive")
	}
	b, err := s.backend.Book(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get book %d: %w", id, err)
	}
	v := s.view(b)
	return &v, nil
}

// SearchResult is a page of books.
type SearchResult struct {
	Total   int64      `json:"total"`
	Records []BookView `json:"records"`
}

// Search pages through the catalog.
func (s *CatalogService) Search(ctx context.Context, q model.SearchQuery) (*SearchResult, error) {
	q.PageQuery = q.PageQuery.Normalize()
	page, err := s.backend.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}
	return &SearchResult{Total: page.Total, Records: s.views(page.Records)}, nil
}

// BookURL returns the detail page of a book.
func (s *CatalogService) BookURL(id int64) string {
	u, err := s.routes.URL(route.NameIntroduction, map[string]string{"id": strconv.FormatInt(id, 10)})
	if err != nil {
		// The table was validated in the constructor.
		s.logger.Error("resolve book url", "book_id", id, "error", err)
		return ""
	}
	return u
}

func (s *CatalogService) view(b model.Book) BookView {
	return BookView{Book: b, URL: s.BookURL(b.ID)}
}

func (s *CatalogService) views(books []model.Book) []BookView {
	out := make([]BookView, 0, len(books))
	for _, b := range books {
		out = append(out, s.view(b))
	}
	return out
}
