package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/target/bookshelf-web/internal/domain/model"
	"github.com/target/bookshelf-web/internal/domain/status"
)

func TestEndpoints_MethodPathQueryBody(t *testing.T) {
	returned := status.BorrowStatusReturned
	cancelled := status.OrderStatusCancelled

	tests := []struct {
		name   string
		invoke func(c *Client) error
		method string
		path   string
		query  string
		body   string
	}{
		{
			name: "verify code",
			invoke: func(c *Client) error {
				_, err := c.Auth.VerifyCode(context.Background(), "123456")
				return err
			},
			method: http.MethodPost, path: "/user/login/verify", body: `{"code":"123456"}`,
		},
		{
			name: "code login",
			invoke: func(c *Client) error {
				_, err := c.Auth.LoginCode(context.Background(), model.CodeLoginForm{Email: "a@b.co", Code: "1"})
				return err
			},
			method: http.MethodPost, path: "/user/login/code", body: `{"email":"a@b.co","code":"1"}`,
		},
		{
			name: "send email code",
			invoke: func(c *Client) error {
				return c.Auth.SendEmailCode(context.Background(), "a+b@example.com")
			},
			method: http.MethodPost, path: "/user/login/send", query: "email=a%2Bb%40example.com",
		},
		{
			name: "register",
			invoke: func(c *Client) error {
				_, err := c.Auth.Register(context.Background(), model.RegisterForm{Username: "u", Password: "p", Email: "e", Code: "c"})
				return err
			},
			method: http.MethodPost, path: "/user/register", body: `{"username":"u","password":"p","email":"e","code":"c"}`,
		},
		{
			name: "random books",
			invoke: func(c *Client) error {
				_, err := c.Catalog.RandomBooks(context.Background(), 8)
				return err
			},
			method: http.MethodGet, path: "/user/book/random", query: "number=8",
		},
		{
			name: "books by category",
			invoke: func(c *Client) error {
				_, err := c.Catalog.BooksByCategory(context.Background(), 5)
				return err
			},
			method: http.MethodGet, path: "/user/book/list", query: "category_id=5",
		},
		{
			name: "book",
			invoke: func(c *Client) error {
				_, err := c.Catalog.Book(context.Background(), 12)
				return err
			},
			method: http.MethodGet, path: "/user/book/12",
		},
		{
			name: "search omits empty filters",
			invoke: func(c *Client) error {
				_, err := c.Catalog.Search(context.Background(), model.SearchQuery{PageQuery: model.PageQuery{Page: 2, PageSize: 20}})
				return err
			},
			method: http.MethodGet, path: "/user/book/page", query: "page=2&pageSize=20",
		},
		{
			name: "search with filters",
			invoke: func(c *Client) error {
				_, err := c.Catalog.Search(context.Background(), model.SearchQuery{Name: "go", CategoryID: 3, Status: 1})
				return err
			},
			method: http.MethodGet, path: "/user/book/page", query: "categoryId=3&name=go&page=1&pageSize=10&status=1",
		},
		{
			name:   "cart add",
			invoke: func(c *Client) error { return c.Cart.Add(context.Background(), model.BookData{BookID: 4, Number: 2}) },
			method: http.MethodPost, path: "/user/shoppingCart/add", body: `{"book_id":4,"number":2}`,
		},
		{
			name: "cart update",
			invoke: func(c *Client) error {
				return c.Cart.Update(context.Background(), model.UpdateCartForm{BookID: 4, Number: 1})
			},
			method: http.MethodPut, path: "/user/shoppingCart/update", body: `{"book_id":4,"number":1}`,
		},
		{
			name:   "cart remove",
			invoke: func(c *Client) error { return c.Cart.Remove(context.Background(), 9) },
			method: http.MethodDelete, path: "/user/shoppingCart/9",
		},
		{
			name:   "cart clear",
			invoke: func(c *Client) error { return c.Cart.Clear(context.Background()) },
			method: http.MethodDelete, path: "/user/shoppingCart/clean",
		},
		{
			name: "submit order",
			invoke: func(c *Client) error {
				_, err := c.Cart.SubmitOrder(context.Background(), model.OrderSubmission{AddressBookID: 2, PayMethod: 1, Amount: 9.5})
				return err
			},
			method: http.MethodPost, path: "/user/order/submit", body: `{"address_book_id":2,"pay_method":1,"amount":9.5}`,
		},
		{
			name: "borrow cart add",
			invoke: func(c *Client) error {
				return c.BorrowCart.Add(context.Background(), model.BookData{BookID: 1, Number: 1})
			},
			method: http.MethodPost, path: "/user/borrowCart/add", body: `{"book_id":1,"number":1}`,
		},
		{
			name: "borrow cart list",
			invoke: func(c *Client) error {
				_, err := c.BorrowCart.List(context.Background())
				return err
			},
			method: http.MethodGet, path: "/user/borrowCart/list",
		},
		{
			name:   "borrow cart remove",
			invoke: func(c *Client) error { return c.BorrowCart.Remove(context.Background(), 3) },
			method: http.MethodDelete, path: "/user/borrowCart/3",
		},
		{
			name:   "borrow cart clear",
			invoke: func(c *Client) error { return c.BorrowCart.Clear(context.Background()) },
			method: http.MethodDelete, path: "/user/borrowCart/clean",
		},
		{
			name: "borrow submit",
			invoke: func(c *Client) error {
				_, err := c.BorrowCart.Submit(context.Background(), model.BorrowList{BookIDs: []int64{1, 2}})
				return err
			},
			method: http.MethodPost, path: "/user/borrow/borrow", body: `{"book_ids":[1,2]}`,
		},
		{
			name: "borrow history without status",
			invoke: func(c *Client) error {
				_, err := c.Borrows.History(context.Background(), model.BorrowQuery{PageQuery: model.PageQuery{Page: 1, PageSize: 5}})
				return err
			},
			method: http.MethodGet, path: "/user/borrow/history", query: "page=1&pageSize=5",
		},
		{
			name: "borrow history with status",
			invoke: func(c *Client) error {
				_, err := c.Borrows.History(context.Background(), model.BorrowQuery{Status: &returned})
				return err
			},
			method: http.MethodGet, path: "/user/borrow/history", query: "page=1&pageSize=10&status=2",
		},
		{
			name:   "borrow complete",
			invoke: func(c *Client) error { return c.Borrows.Complete(context.Background(), "B-17") },
			method: http.MethodPut, path: "/user/borrow/complete/B-17",
		},
		{
			name:   "borrow renew",
			invoke: func(c *Client) error { return c.Borrows.Renew(context.Background(), 17) },
			method: http.MethodPut, path: "/user/borrow/renew/17",
		},
		{
			name: "order history with status",
			invoke: func(c *Client) error {
				_, err := c.Orders.History(context.Background(), model.OrderQuery{Status: &cancelled})
				return err
			},
			method: http.MethodGet, path: "/user/borrow/history", query: "page=1&pageSize=10&status=6",
		},
		{
			name:   "order complete",
			invoke: func(c *Client) error { return c.Orders.Complete(context.Background(), "42") },
			method: http.MethodPut, path: "/user/borrow/complete/42",
		},
		{
			name:   "order remind",
			invoke: func(c *Client) error { return c.Orders.Remind(context.Background(), 42) },
			method: http.MethodPut, path: "/user/borrow/renew/42",
		},
		{
			name: "address list",
			invoke: func(c *Client) error {
				_, err := c.Addresses.List(context.Background())
				return err
			},
			method: http.MethodGet, path: "/user/addressBook/list",
		},
		{
			name: "address create",
			invoke: func(c *Client) error {
				return c.Addresses.Create(context.Background(), model.AddressBook{Consignee: "Li", Sex: "1", Phone: "13800138000", Detail: "Room 1"})
			},
			method: http.MethodPost, path: "/user/addressBook",
			body: `{"consignee":"Li","sex":"1","phone":"13800138000","detail":"Room 1","is_default":0}`,
		},
		{
			name: "address update",
			invoke: func(c *Client) error {
				return c.Addresses.Update(context.Background(), model.AddressBook{ID: 3, Consignee: "Li", Sex: "1", Phone: "13800138000", Detail: "Room 2", IsDefault: 1})
			},
			method: http.MethodPut, path: "/user/addressBook",
			body: `{"id":3,"consignee":"Li","sex":"1","phone":"13800138000","detail":"Room 2","is_default":1}`,
		},
		{
			name:   "address delete",
			invoke: func(c *Client) error { return c.Addresses.Delete(context.Background(), 3) },
			method: http.MethodDelete, path: "/user/addressBook", query: "id=3",
		},
		{
			name:   "address default",
			invoke: func(c *Client) error { return c.Addresses.SetDefault(context.Background(), 3) },
			method: http.MethodPut, path: "/user/addressBook/default", body: `{"id":3}`,
		},
		{
			name: "profile get",
			invoke: func(c *Client) error {
				_, err := c.Profile.Get(context.Background(), 7)
				return err
			},
			method: http.MethodGet, path: "/user/profile", query: "id=7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, got := newBackend(t, http.StatusOK, `{"code":1,"message":"ok","data":null}`)
			c := newTestClient(t, srv.URL, Config{})

			require.NoError(t, tt.invoke(c))
			require.Len(t, *got, 1)
			req := (*got)[0]
			assert.Equal(t, tt.method, req.Method)
			assert.Equal(t, tt.path, req.Path)
			assert.Equal(t, tt.query, req.Query)
			if tt.body == "" {
				assert.Empty(t, req.Body)
			} else {
				assert.JSONEq(t, tt.body, req.Body)
				assert.Equal(t, "application/json", req.ContentType)
			}
		})
	}
}
