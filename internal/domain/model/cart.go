package model

// CartItem is a line in the shopping cart.
type CartItem struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	UserID     int64   `json:"user_id"`
	BookID     int64   `json:"book_id"`
	Number     int     `json:"number"`
	Amount     float64 `json:"amount"`
	Image      string  `json:"image"`
	CreateTime string  `json:"create_time"`
}

// UpdateCartForm changes the quantity of a cart line.
type UpdateCartForm struct {
	BookID int64 `json:"book_id"`
	Number int   `json:"number"`
}

// BorrowCartItem is a line in the borrow cart (the reader's book list).
type BorrowCartItem struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	UserID     int64  `json:"user_id"`
	BookID     int64  `json:"book_id"`
	Number     int    `json:"number"`
	Image      string `json:"image"`
	CreateTime string `json:"create_time"`
	Selected   bool   `json:"selected"`
}

// BorrowList is the set of books submitted for borrowing.
type BorrowList struct {
	BookIDs []int64 `json:"book_ids"`
}
