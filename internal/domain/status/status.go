// Package status is the single source of truth for borrow and order lifecycle states.
//
// Each domain owns its own registry: the same integer means different things in
// each (borrow code 1 is "borrowing", order code 1 is "pending payment"), so the
// codes are distinct Go types and cannot be looked up in the wrong table.
package status

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity is the display category attached to a status label.
// Values match the tag names understood by the UI toolkit.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityPrimary Severity = "primary"
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityDanger  Severity = "danger"
	// SeverityNone renders as the toolkit's default (empty) tag.
	SeverityNone Severity = "none"
)

// Severities lists the closed set of severity tags.
func Severities() []Severity {
	return []Severity{
		SeverityWarning,
		SeverityPrimary,
		SeveritySuccess,
		SeverityInfo,
		SeverityDanger,
		SeverityNone,
	}
}

// Valid returns true if the severity belongs to the closed tag set.
func (s Severity) Valid() bool {
	switch s {
	case SeverityWarning, SeverityPrimary, SeveritySuccess, SeverityInfo, SeverityDanger, SeverityNone:
		return true
	default:
		return false
	}
}

// Tag returns the value handed to the UI toolkit; SeverityNone maps to "".
func (s Severity) Tag() string {
	if s == SeverityNone {
		return ""
	}
	return string(s)
}

// UnmarshalText implements encoding.TextUnmarshaler for Severity.
func (s *Severity) UnmarshalText(text []byte) error {
	v := Severity(strings.ToLower(strings.TrimSpace(string(text))))
	if v == "" {
		*s = SeverityNone
		return nil
	}
	if !v.Valid() {
		return fmt.Errorf("invalid Severity: %q", v)
	}
	*s = v
	return nil
}

// UnknownLabel is the label of the fallback descriptor.
const UnknownLabel = "unknown"

// Descriptor is the immutable (label, severity) pair for a status code.
type Descriptor struct {
	Label    string   `json:"label"`
	Severity Severity `json:"type"`
}

// Unknown is returned for codes outside a registry.
var Unknown = Descriptor{Label: UnknownLabel, Severity: SeverityNone}

// IsUnknown reports whether d is the fallback descriptor.
func (d Descriptor) IsUnknown() bool { return d == Unknown }

// MarshalJSON renders the severity as the toolkit tag ("" for none).
func (d Descriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Label string `json:"label"`
		Type  string `json:"type"`
	}{Label: d.Label, Type: d.Severity.Tag()})
}

// Entry pairs a code with its descriptor for registry listings.
type Entry struct {
	Code       int        `json:"code"`
	Descriptor Descriptor `json:"descriptor"`
}

// Domain names a registry.
type Domain string

const (
	DomainBorrow Domain = "borrow"
	DomainOrder  Domain = "order"
)

// ParseDomain parses a registry name.
func ParseDomain(s string) (Domain, error) {
	switch d := Domain(strings.ToLower(strings.TrimSpace(s))); d {
	case DomainBorrow, DomainOrder:
		return d, nil
	default:
		return "", fmt.Errorf("unknown status domain %q", s)
	}
}

// Describe looks up code in the registry of the given domain.
func Describe(d Domain, code int) Descriptor {
	switch d {
	case DomainBorrow:
		return DescribeBorrow(BorrowStatus(code))
	case DomainOrder:
		return DescribeOrder(OrderStatus(code))
	default:
		return Unknown
	}
}

// Entries lists every registered code of a domain in ascending order.
func Entries(d Domain) []Entry {
	switch d {
	case DomainBorrow:
		return BorrowEntries()
	case DomainOrder:
		return OrderEntries()
	default:
		return nil
	}
}
