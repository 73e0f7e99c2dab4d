package orders

// Status is the fulfilment state of an order.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusShipped   Status = "Shipped"
	StatusDelivered Status = "Delivered"
	StatusCancelled Status = "Cancelled"
)

var statuses = []Status{StatusPending, StatusShipped, StatusDelivered, StatusCancelled}

// Statuses returns every status in display order.
func Statuses() []Status {
	return append([]Status{}, statuses...)
}

// ParseStatus matches value against the known statuses exactly.
func ParseStatus(value string) (Status, bool) {
	for _, s := range statuses {
		if string(s) == value {
			return s, true
		}
	}
	return "", false
}
