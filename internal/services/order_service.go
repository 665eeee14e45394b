package services

import (
	"fmt"
	"strings"
	"time"

	"erp_orders/internal/models"
	"erp_orders/internal/repository"
	"erp_orders/pkg/format"
)

// ListFilter holds the optional list-query parameters. A Limit of zero or
// less means no limit.
type ListFilter struct {
	Status   string
	Customer string
	Limit    int
}

// OrderSummary is a catalog record decorated for list display.
type OrderSummary struct {
	models.Order
	TotalAmountFormatted string `json:"totalAmountFormatted"`
	ItemCount            int    `json:"itemCount"`
}

// OrderItemDetail is an order line decorated with its subtotal.
type OrderItemDetail struct {
	models.OrderItem
	Subtotal           float64 `json:"subtotal"`
	SubtotalFormatted  string  `json:"subtotalFormatted"`
	UnitPriceFormatted string  `json:"unitPriceFormatted"`
}

// OrderDetail is a single catalog record decorated for detail display.
type OrderDetail struct {
	models.Order
	Items                []OrderItemDetail `json:"items"`
	TotalAmountFormatted string            `json:"totalAmountFormatted"`
	ItemCount            int               `json:"itemCount"`
	OrderDateFormatted   string            `json:"orderDateFormatted"`
	DaysAgo              int               `json:"daysAgo"`
}

type OrderService interface {
	ListOrders(filter ListFilter) []OrderSummary
	GetOrder(orderID string) (*OrderDetail, error)
}

type orderService struct {
	repo repository.OrderRepository
	now  func() time.Time
}

func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo, now: time.Now}
}

// NewOrderServiceWithClock is NewOrderService with an injected clock, used
// by tests to pin daysAgo.
func NewOrderServiceWithClock(repo repository.OrderRepository, now func() time.Time) OrderService {
	return &orderService{repo: repo, now: now}
}

// ListOrders applies the status filter, then the customer filter, then the
// limit. Truncation happens last so the limit bounds the filtered set, not
// the raw catalog.
func (s *orderService) ListOrders(filter ListFilter) []OrderSummary {
	orders := s.repo.GetAll()

	if filter.Status != "" {
		filtered := orders[:0]
		for _, order := range orders {
			if strings.EqualFold(order.Status, filter.Status) {
				filtered = append(filtered, order)
			}
		}
		orders = filtered
	}

	if filter.Customer != "" {
		needle := strings.ToLower(filter.Customer)
		filtered := orders[:0]
		for _, order := range orders {
			if strings.Contains(strings.ToLower(order.CustomerName), needle) {
				filtered = append(filtered, order)
			}
		}
		orders = filtered
	}

	if filter.Limit > 0 && filter.Limit < len(orders) {
		orders = orders[:filter.Limit]
	}

	summaries := make([]OrderSummary, 0, len(orders))
	for _, order := range orders {
		summaries = append(summaries, OrderSummary{
			Order:                order,
			TotalAmountFormatted: format.Currency(order.TotalAmount),
			ItemCount:            order.ItemCount(),
		})
	}
	return summaries
}

func (s *orderService) GetOrder(orderID string) (*OrderDetail, error) {
	order, ok := s.repo.GetByID(orderID)
	if !ok {
		return nil, &NotFoundError{OrderID: orderID}
	}

	orderDate, err := time.Parse(time.RFC3339, order.OrderDate)
	if err != nil {
		return nil, fmt.Errorf("parse order date for %s: %w", order.OrderID, err)
	}

	items := make([]OrderItemDetail, 0, len(order.Items))
	for _, item := range order.Items {
		subtotal := float64(item.Quantity) * item.UnitPrice
		items = append(items, OrderItemDetail{
			OrderItem:          item,
			Subtotal:           subtotal,
			SubtotalFormatted:  format.Currency(subtotal),
			UnitPriceFormatted: format.Currency(item.UnitPrice),
		})
	}

	return &OrderDetail{
		Order:                *order,
		Items:                items,
		TotalAmountFormatted: format.Currency(order.TotalAmount),
		ItemCount:            order.ItemCount(),
		OrderDateFormatted:   format.Date(orderDate),
		DaysAgo:              int(s.now().Sub(orderDate).Hours() / 24),
	}, nil
}
