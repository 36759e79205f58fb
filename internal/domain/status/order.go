package status

// OrderStatus is the lifecycle state of a purchase order.
type OrderStatus int

const (
	OrderStatusPendingPayment OrderStatus = iota + 1
	OrderStatusAwaitingAcceptance
	OrderStatusAccepted
	OrderStatusDelivering
	OrderStatusCompleted
	OrderStatusCancelled

	orderStatusEnd // keep last
)

var orderDescriptors = [...]Descriptor{
	OrderStatusPendingPayment:     {Label: "pending payment", Severity: SeverityWarning},
	OrderStatusAwaitingAcceptance: {Label: "awaiting acceptance", Severity: SeverityPrimary},
	OrderStatusAccepted:           {Label: "accepted", Severity: SeverityPrimary},
	OrderStatusDelivering:         {Label: "delivering", Severity: SeverityInfo},
	OrderStatusCompleted:          {Label: "completed", Severity: SeveritySuccess},
	OrderStatusCancelled:          {Label: "cancelled", Severity: SeverityDanger},
}

var (
	_ [len(orderDescriptors) - int(orderStatusEnd)]struct{}
	_ [int(orderStatusEnd) - len(orderDescriptors)]struct{}
)

// Known returns true if s is a registered order status.
func (s OrderStatus) Known() bool {
	return s >= OrderStatusPendingPayment && s < orderStatusEnd
}

// Descriptor returns the display descriptor for s.
func (s OrderStatus) Descriptor() Descriptor { return DescribeOrder(s) }

func (s OrderStatus) String() string { return DescribeOrder(s).Label }

// DescribeOrder returns the descriptor of an order status, or Unknown.
func DescribeOrder(s OrderStatus) Descriptor {
	if !s.Known() {
		return Unknown
	}
	return orderDescriptors[s]
}

// OrderStatuses lists the registered order statuses.
func OrderStatuses() []OrderStatus {
	out := make([]OrderStatus, 0, int(orderStatusEnd)-1)
	for s := OrderStatusPendingPayment; s < orderStatusEnd; s++ {
		out = append(out, s)
	}
	return out
}

// OrderEntries lists the order registry.
func OrderEntries() []Entry {
	statuses := OrderStatuses()
	out := make([]Entry, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, Entry{Code: int(s), Descriptor: orderDescriptors[s]})
	}
	return out
}
