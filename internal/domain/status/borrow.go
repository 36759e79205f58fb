package status

// BorrowStatus is the lifecycle state of a borrow record.
type BorrowStatus int

const (
	// BorrowStatusBorrowing indicates the books are checked out.
	BorrowStatusBorrowing BorrowStatus = iota + 1
	// BorrowStatusReturned indicates the books were returned.
	BorrowStatusReturned
	// BorrowStatusOverdue indicates the due date passed without a return.
	BorrowStatusOverdue

	borrowStatusEnd // keep last
)

var borrowDescriptors = [...]Descriptor{
	BorrowStatusBorrowing: {Label: "borrowing", Severity: SeveritySuccess},
	BorrowStatusReturned:  {Label: "returned", Severity: SeverityInfo},
	BorrowStatusOverdue:   {Label: "overdue", Severity: SeverityWarning},
}

// Adding a status without a descriptor (or the reverse) fails to compile.
var (
	_ [len(borrowDescriptors) - int(borrowStatusEnd)]struct{}
	_ [int(borrowStatusEnd) - len(borrowDescriptors)]struct{}
)

// Known returns true if s is a registered borrow status.
func (s BorrowStatus) Known() bool {
	return s >= BorrowStatusBorrowing && s < borrowStatusEnd
}

// Descriptor returns the display descriptor for s.
func (s BorrowStatus) Descriptor() Descriptor { return DescribeBorrow(s) }

func (s BorrowStatus) String() string { return DescribeBorrow(s).Label }

// DescribeBorrow returns the descriptor of a borrow status, or Unknown.
func DescribeBorrow(s BorrowStatus) Descriptor {
	if !s.Known() {
		return Unknown
	}
	return borrowDescriptors[s]
}

// BorrowStatuses lists the registered borrow statuses.
func BorrowStatuses() []BorrowStatus {
	out := make([]BorrowStatus, 0, int(borrowStatusEnd)-1)
	for s := BorrowStatusBorrowing; s < borrowStatusEnd; s++ {
		out = append(out, s)
	}
	return out
}

// BorrowEntries lists the borrow registry.
func BorrowEntries() []Entry {
	statuses := BorrowStatuses()
	out := make([]Entry, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, Entry{Code: int(s), Descriptor: borrowDescriptors[s]})
	}
	return out
}
