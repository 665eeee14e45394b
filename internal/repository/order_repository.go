package repository

import (
	"erp_orders/internal/models"
)

// OrderRepository is the read-only access point for the order catalog.
// The catalog is immutable for the lifetime of the process; there is no
// create, update, or delete path.
type OrderRepository interface {
	GetAll() []models.Order
	GetByID(orderID string) (*models.Order, bool)
}

type orderRepository struct {
	orders []models.Order
}

// NewOrderRepository returns a repository backed by the static seed data.
func NewOrderRepository() OrderRepository {
	return &orderRepository{orders: seedOrders}
}

// GetAll returns the catalog in seed order. Callers get a fresh slice so
// filtering and truncation never touch the seed.
func (r *orderRepository) GetAll() []models.Order {
	orders := make([]models.Order, len(r.orders))
	copy(orders, r.orders)
	return orders
}

func (r *orderRepository) GetByID(orderID string) (*models.Order, bool) {
	for _, order := range r.orders {
		if order.OrderID == orderID {
			o := order
			return &o, true
		}
	}
	return nil, false
}
