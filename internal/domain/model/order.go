package model

import "github.com/target/bookshelf-web/internal/domain/status"

// OrderItem is one purchased book within an order.
type OrderItem struct {
	BookID   int64  `json:"book_id"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
}

// OrderSubmission places an order for the current shopping cart.
type OrderSubmission struct {
	AddressBookID int64   `json:"address_book_id"`
	PayMethod     int     `json:"pay_method"`
	Remark        string  `json:"remark,omitempty"`
	Amount        float64 `json:"amount"`
}

// OrderResponse acknowledges a submitted order.
type OrderResponse struct {
	ID          int64   `json:"id"`
	OrderNumber string  `json:"order_number"`
	OrderAmount float64 `json:"order_amount"`
	OrderTime   string  `json:"order_time"`
}

// Order is a purchase order.
type Order struct {
	ID          int64              `json:"id"`
	Number      string             `json:"number"`
	Status      status.OrderStatus `json:"status"`
	UserID      int64              `json:"user_id"`
	OrderTime   string             `json:"order_time"`
	Amount      float64            `json:"amount"`
	Address     string             `json:"address"`
	OrderDetail []OrderItem        `json:"order_detail_list"`
}

// OrderQuery filters order history. A nil Status lists every state.
type OrderQuery struct {
	PageQuery
	Status *status.OrderStatus `json:"status,omitempty"`
}

// OrderPage is a page of orders.
type OrderPage = Page[Order]
