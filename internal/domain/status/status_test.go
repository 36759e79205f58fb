package status

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeBorrow_RegisteredCodes(t *testing.T) {
	tests := []struct {
		code     BorrowStatus
		label    string
		severity Severity
	}{
		{BorrowStatusBorrowing, "borrowing", SeveritySuccess},
		{BorrowStatusReturned, "returned", SeverityInfo},
		{BorrowStatusOverdue, "overdue", SeverityWarning},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			d := DescribeBorrow(tt.code)
			assert.Equal(t, tt.label, d.Label)
			assert.Equal(t, tt.severity, d.Severity)
			assert.True(t, tt.code.Known())
		})
	}
}

func TestDescribeOrder_RegisteredCodes(t *testing.T) {
	tests := []struct {
		code     OrderStatus
		label    string
		severity Severity
	}{
		{OrderStatusPendingPayment, "pending payment", SeverityWarning},
		{OrderStatusAwaitingAcceptance, "awaiting acceptance", SeverityPrimary},
		{OrderStatusAccepted, "accepted", SeverityPrimary},
		{OrderStatusDelivering, "delivering", SeverityInfo},
		{OrderStatusCompleted, "completed", SeveritySuccess},
		{OrderStatusCancelled, "cancelled", SeverityDanger},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			d := DescribeOrder(tt.code)
			assert.Equal(t, tt.label, d.Label)
			assert.Equal(t, tt.severity, d.Severity)
		})
	}
}

func TestRegistries_AllEntriesHaveLabelAndValidSeverity(t *testing.T) {
	for _, d := range []Domain{DomainBorrow, DomainOrder} {
		entries := Entries(d)
		require.NotEmpty(t, entries, d)
		for _, e := range entries {
			assert.NotEmpty(t, e.Descriptor.Label, "%s code %d", d, e.Code)
			assert.True(t, e.Descriptor.Severity.Valid(), "%s code %d", d, e.Code)
			assert.False(t, e.Descriptor.IsUnknown())
			assert.Equal(t, e.Descriptor, Describe(d, e.Code))
		}
	}
	assert.Len(t, Entries(DomainBorrow), 3)
	assert.Len(t, Entries(DomainOrder), 6)
}

func TestDescribe_UnknownCodesFallBack(t *testing.T) {
	for _, code := range []int{-1, 0, 4, 7, 99} {
		b := DescribeBorrow(BorrowStatus(code))
		if code == 4 {
			// 4 is a valid order code but not a borrow code
			assert.False(t, DescribeOrder(OrderStatus(code)).IsUnknown())
		}
		assert.Equal(t, Unknown, b, "borrow %d", code)
		assert.NotEmpty(t, b.Label)
	}

	d := DescribeOrder(99)
	assert.Equal(t, UnknownLabel, d.Label)
	assert.Equal(t, SeverityNone, d.Severity)
	assert.Equal(t, Unknown, Describe(Domain("loans"), 1))
}

func TestDescribe_DomainsAreSeparate(t *testing.T) {
	borrow := Describe(DomainBorrow, 1)
	order := Describe(DomainOrder, 1)

	assert.Equal(t, Descriptor{Label: "borrowing", Severity: SeveritySuccess}, borrow)
	assert.Equal(t, Descriptor{Label: "pending payment", Severity: SeverityWarning}, order)
	assert.NotEqual(t, borrow, order)
}

func TestDescriptor_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(DescribeOrder(OrderStatusCompleted))
	require.NoError(t, err)
	assert.JSONEq(t, `{"label":"completed","type":"success"}`, string(b))

	b, err = json.Marshal(Unknown)
	require.NoError(t, err)
	assert.JSONEq(t, `{"label":"unknown","type":""}`, string(b))
}

func TestParseDomain(t *testing.T) {
	d, err := ParseDomain(" Borrow ")
	require.NoError(t, err)
	assert.Equal(t, DomainBorrow, d)

	_, err = ParseDomain("shipping")
	require.Error(t, err)
}

func TestSeverity_UnmarshalText(t *testing.T) {
	var s Severity
	require.NoError(t, s.UnmarshalText([]byte("DANGER")))
	assert.Equal(t, SeverityDanger, s)

	require.NoError(t, s.UnmarshalText([]byte("")))
	assert.Equal(t, SeverityNone, s)

	require.Error(t, s.UnmarshalText([]byte("critical")))
	assert.Len(t, Severities(), 6)
}
