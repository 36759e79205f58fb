package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/target/bookshelf-web/internal/domain/model"
	"github.com/target/bookshelf-web/internal/domain/status"
	apperrors "github.com/target/bookshelf-web/internal/errors"
	"github.com/target/bookshelf-web/internal/ports"
)

// BorrowServiceOptions groups dependencies for BorrowService.
type BorrowServiceOptions struct {
	Backend ports.BorrowBackend
	Logger  *slog.Logger
}

// BorrowService lists a reader's borrow records with their display state.
type BorrowService struct {
	backend ports.BorrowBackend
	logger  *slog.Logger
}

// NewBorrowService constructs a new BorrowService.
func NewBorrowService(opts BorrowServiceOptions) *BorrowService {
	if opts.Backend == nil {
		panic("BorrowBackend is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &BorrowService{backend: opts.Backend, logger: logger}
}

// BorrowView is a borrow record with the label and tag for its status.
type BorrowView struct {
	model.BorrowRecord
	State status.Descriptor `json:"state"`
}

// BorrowHistory is a page of decorated borrow records.
type BorrowHistory struct {
	Total   int64        `json:"total"`
	Records []BorrowView `json:"records"`
}

// History pages through the reader's borrow records. ctx must carry the
// reader's backend token (see WithSession).
func (s *BorrowService) History(ctx context.Context, q model.BorrowQuery) (*BorrowHistory, error) {
	if q.Status != nil && !q.Status.Known() {
		return nil, apperrors.ValidationField("status", fmt.Sprintf("unknown borrow status %d", int(*q.Status)))
	}
	q.PageQuery = q.PageQuery.Normalize()

	page, err := s.backend.History(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("borrow history: %w", err)
	}

	out := &BorrowHistory{Total: page.Total, Records: make([]BorrowView, 0, len(page.Records))}
	for _, rec := range page.Records {
		d := status.DescribeBorrow(rec.Status)
		if d.IsUnknown() {
			s.logger.WarnContext(ctx, "borrow record has unregistered status",
				"record_id", rec.ID, "status", int(rec.Status))
		}
		out.Records = append(out.Records, BorrowView{BorrowRecord: rec, State: d})
	}
	return out, nil
}

// Renew extends the due date of a record.
func (s *BorrowService) Renew(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ValidationField("id", "borrow record id must be positive")
	}
	if err := s.backend.Renew(ctx, id); err != nil {
		return fmt.Errorf("renew borrow %d: %w", id, rejectedAs(err, apperrors.ErrCodeConflict))
	}
	return nil
}

// Complete marks a record's books as returned.
func (s *BorrowService) Complete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperrors.ValidationField("id", "borrow record id is required")
	}
	if err := s.backend.Complete(ctx, id); err != nil {
		return fmt.Errorf("complete borrow %s: %w", id, rejectedAs(err, apperrors.ErrCodeConflict))
	}
	return nil
}
