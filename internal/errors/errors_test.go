package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err: &AppError{
				Code:    ErrCodeNotFound,
				Message: "book not found",
			},
			want: "book not found",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeUpstream,
				Message: "backend request failed",
				Cause:   errors.New("connection refused"),
			},
			want: "backend request failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(cause, ErrCodeInternal, "wrapped error")

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(%v, cause) = false, want true", err)
	}
	if Wrap(nil, ErrCodeInternal, "nothing") != nil {
		t.Errorf("Wrap(nil) should return nil")
	}
}

func TestIsHelpers_ThroughWrapping(t *testing.T) {
	base := ValidationField("email", "email is required")
	wrapped := fmt.Errorf("login: %w", base)

	if !IsValidation(wrapped) {
		t.Errorf("IsValidation(wrapped) = false")
	}
	if GetField(wrapped) != "email" {
		t.Errorf("GetField() = %q, want email", GetField(wrapped))
	}
	if IsNotFound(wrapped) {
		t.Errorf("IsNotFound(wrapped) = true")
	}
	if GetCode(errors.New("plain")) != "" {
		t.Errorf("GetCode(plain) should be empty")
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusUnauthorized, IsUnauthorized},
		{http.StatusForbidden, IsUnauthorized},
		{http.StatusNotFound, IsNotFound},
		{http.StatusConflict, IsConflict},
		{http.StatusBadRequest, IsValidation},
		{http.StatusGatewayTimeout, IsTimeout},
		{http.StatusBadGateway, IsUpstream},
		{http.StatusInternalServerError, IsUpstream},
	}
	for _, tt := range tests {
		if err := MapHTTPStatus(tt.status, "boom"); !tt.check(err) {
			t.Errorf("MapHTTPStatus(%d) = %v", tt.status, err)
		}
	}
	if err := MapHTTPStatus(http.StatusOK, ""); err != nil {
		t.Errorf("MapHTTPStatus(200) = %v, want nil", err)
	}
}

func TestMapTransportError(t *testing.T) {
	if MapTransportError(nil) != nil {
		t.Fatalf("nil should map to nil")
	}
	if !IsTimeout(MapTransportError(context.DeadlineExceeded)) {
		t.Errorf("deadline should map to timeout")
	}
	if !IsCanceled(MapTransportError(fmt.Errorf("do: %w", context.Canceled))) {
		t.Errorf("canceled should map to canceled")
	}
	if !IsUpstream(MapTransportError(errors.New("dial tcp: refused"))) {
		t.Errorf("transport failure should map to upstream")
	}
	nf := NotFound("x")
	if !errors.Is(MapTransportError(nf), nf) {
		t.Errorf("AppError should pass through unchanged")
	}
}
