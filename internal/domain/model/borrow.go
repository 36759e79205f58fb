package model

import "github.com/target/bookshelf-web/internal/domain/status"

// BorrowRecord is one borrowing transaction and its books.
type BorrowRecord struct {
	ID               int64               `json:"id"`
	Number           string              `json:"number"`
	Status           status.BorrowStatus `json:"status"`
	UserID           int64               `json:"user_id"`
	BorrowTime       string              `json:"borrow_time"`
	RenewCount       int                 `json:"renew_count"`
	DueDate          string              `json:"due_date"`
	UserName         string              `json:"user_name"`
	ReturnTime       string              `json:"return_time"`
	BorrowBooks      string              `json:"borrow_books"`
	BorrowDetailList []BorrowDetail      `json:"borrow_detail_list"`
}

// BorrowDetail is a single book within a borrow record.
type BorrowDetail struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	BorrowRecordID int64  `json:"borrow_record_id"`
	BookID         int64  `json:"book_id"`
	Number         int    `json:"number"`
	Image          string `json:"image"`
}

// BorrowQuery filters borrow history. A nil Status lists every state.
type BorrowQuery struct {
	PageQuery
	Status *status.BorrowStatus `json:"status,omitempty"`
}

// BorrowPage is a page of borrow records.
type BorrowPage = Page[BorrowRecord]

// BorrowResponse acknowledges a submitted borrow.
type BorrowResponse struct {
	ID           int64  `json:"id"`
	BorrowNumber string `json:"borrow_number"`
	BorrowTime   string `json:"borrow_time"`
}
