package model

// Book is a catalog entry.
type Book struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Author      string `json:"author"`
	CategoryID  string `json:"category_id"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Status      int    `json:"status"`
	Stock       int    `json:"stock"`
	ISBN        string `json:"isbn"`
	Location    string `json:"location"`
	Publisher   string `json:"publisher"`
	UpdateTime  string `json:"update_time"`
}

// BookStock is the stock level of a single book.
type BookStock struct {
	ID     int64 `json:"id"`
	BookID int64 `json:"book_id"`
	Stock  int   `json:"stock"`
}

// Category groups books in the catalog.
type Category struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Sort   int    `json:"sort"`
	Status int    `json:"status"`
}

// BookData identifies a quantity of one book, used when adding to either cart.
type BookData struct {
	BookID int64 `json:"book_id"`
	Number int   `json:"number"`
}

// SearchQuery filters the paginated catalog. Zero-valued filters are omitted.
type SearchQuery struct {
	PageQuery
	Name       string `json:"name,omitempty"`
	CategoryID int64  `json:"category_id,omitempty"`
	Status     int    `json:"status,omitempty"`
}

// SearchPage is a page of catalog results.
type SearchPage = Page[Book]

// Notice is a site announcement.
type Notice struct {
	ID         string `json:"id"`
	Content    string `json:"content"`
	Status     int    `json:"status"`
	CreateTime string `json:"create_time"`
}
