package services

import "fmt"

// NotFoundError reports a lookup for an order id that is not in the catalog.
type NotFoundError struct {
	OrderID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Order with ID %s does not exist", e.OrderID)
}
