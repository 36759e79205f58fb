package testutil

import (
	"time"

	domainauth "github.com/target/bookshelf-web/internal/domain/auth"
	"github.com/target/bookshelf-web/internal/domain/model"
	"github.com/target/bookshelf-web/internal/domain/status"
)

// SessionBuilder provides a fluent interface for building sessions for testing.
type SessionBuilder struct {
	sess domainauth.Session
}

// NewSession creates a SessionBuilder for a reader signed in for the next 30 minutes.
func NewSession() *SessionBuilder {
	return &SessionBuilder{
		sess: domainauth.Session{
			ID:        "test-session",
			UserID:    7,
			Username:  "reader",
			Email:     "reader@example.com",
			Token:     "backend-token",
			ExpiresAt: time.Now().Add(30 * time.Minute),
		},
	}
}

// WithID sets the session id.
func (b *SessionBuilder) WithID(id string) *SessionBuilder {
	b.sess.ID = id
	return b
}

// WithToken sets the backend token.
func (b *SessionBuilder) WithToken(token string) *SessionBuilder {
	b.sess.Token = token
	return b
}

// ExpiresIn sets the expiry relative to now. Negative durations build an expired session.
func (b *SessionBuilder) ExpiresIn(d time.Duration) *SessionBuilder {
	b.sess.ExpiresAt = time.Now().Add(d)
	return b
}

// ExpiresAt sets an absolute expiry.
func (b *SessionBuilder) ExpiresAt(at time.Time) *SessionBuilder {
	b.sess.ExpiresAt = at
	return b
}

// Build returns the session.
func (b *SessionBuilder) Build() domainauth.Session {
	return b.sess
}

// BorrowRecordBuilder builds borrow records for testing.
type BorrowRecordBuilder struct {
	rec model.BorrowRecord
}

// NewBorrowRecord creates a BorrowRecordBuilder for a single checked-out book.
func NewBorrowRecord() *BorrowRecordBuilder {
	return &BorrowRecordBuilder{
		rec: model.BorrowRecord{
			ID:         1,
			Number:     "B-0001",
			Status:     status.BorrowStatusBorrowing,
			UserID:     7,
			BorrowTime: "2024-01-01 12:00:00",
			DueDate:    "2024-01-31",
			BorrowDetailList: []model.BorrowDetail{
				{ID: 1, Name: "The Go Programming Language", BorrowRecordID: 1, BookID: 11, Number: 1},
			},
		},
	}
}

// WithID sets the record id.
func (b *BorrowRecordBuilder) WithID(id int64) *BorrowRecordBuilder {
	b.rec.ID = id
	return b
}

// WithStatus sets the raw status code, which may be unregistered.
func (b *BorrowRecordBuilder) WithStatus(s status.BorrowStatus) *BorrowRecordBuilder {
	b.rec.Status = s
	return b
}

// Build returns the record.
func (b *BorrowRecordBuilder) Build() model.BorrowRecord {
	return b.rec
}

// Common pointer helper functions for tests.

// StringPtr returns a pointer to the given string value.
func StringPtr(s string) *string {
	return &s
}

// BorrowStatusPtr returns a pointer to the given borrow status.
func BorrowStatusPtr(s status.BorrowStatus) *status.BorrowStatus {
	return &s
}

// OrderStatusPtr returns a pointer to the given order status.
func OrderStatusPtr(s status.OrderStatus) *status.OrderStatus {
	return &s
}
