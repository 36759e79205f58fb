package ports

import (
	"context"

	"github.com/target/bookshelf-web/internal/domain/model"
)

// AuthBackend signs readers in against the bookstore backend.
type AuthBackend interface {
	LoginPassword(ctx context.Context, form model.LoginForm) (model.LoginToken, error)
	LoginCode(ctx context.Context, form model.CodeLoginForm) (model.LoginToken, error)
	SendEmailCode(ctx context.Context, email string) error
	Register(ctx context.Context, form model.RegisterForm) (model.LoginToken, error)
}

// CatalogBackend reads the book catalog.
type CatalogBackend interface {
	Categories(ctx context.Context) ([]model.Category, error)
	RandomBooks(ctx context.Context, n int) ([]model.Book, error)
	Book(ctx context.Context, id int64) (model.Book, error)
	Search(ctx context.Context, q model.SearchQuery) (model.SearchPage, error)
}

// BorrowBackend reads and acts on the reader's borrow records.
type BorrowBackend interface {
	History(ctx context.Context, q model.BorrowQuery) (model.BorrowPage, error)
	Renew(ctx context.Context, id int64) error
	Complete(ctx context.Context, id string) error
}

// OrderBackend reads the reader's purchase orders.
type OrderBackend interface {
	History(ctx context.Context, q model.OrderQuery) (model.OrderPage, error)
}
