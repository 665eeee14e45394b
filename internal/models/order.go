package models

// OrderItem is a single line on an order.
type OrderItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// Order is an immutable catalog record. TotalAmount is trusted from the
// seed and never recomputed. Status is stored as a free string and compared
// case-insensitively.
type Order struct {
	OrderID         string      `json:"orderId"`
	CustomerName    string      `json:"customerName"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	Status          string      `json:"status"`
	OrderDate       string      `json:"orderDate"`
	ShippingAddress string      `json:"shippingAddress"`
	Contact         string      `json:"contact"`
}

const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
)

// ItemCount sums item quantities across the order.
func (o Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}
