package repository

import "erp_orders/internal/models"

// seedOrders is the fixed demo catalog used in place of a persistent store.
var seedOrders = []models.Order{
	{
		OrderID:      "ORD-2025-001",
		CustomerName: "Acme Corporation",
		Items: []models.OrderItem{
			{Name: "Laptop Dell XPS 13", Quantity: 5, UnitPrice: 1299.99},
			{Name: "Wireless Mouse", Quantity: 5, UnitPrice: 29.99},
		},
		TotalAmount:     6649.90,
		Status:          models.StatusProcessing,
		OrderDate:       "2025-09-28T10:30:00Z",
		ShippingAddress: "123 Business St, Oslo, Norway",
		Contact:         "john.doe@acme.com",
	},
	{
		OrderID:      "ORD-2025-002",
		CustomerName: "Tech Solutions AS",
		Items: []models.OrderItem{
			{Name: "Monitor 27\" 4K", Quantity: 3, UnitPrice: 549.99},
			{Name: "USB-C Hub", Quantity: 3, UnitPrice: 89.99},
		},
		TotalAmount:     1919.94,
		Status:          models.StatusShipped,
		OrderDate:       "2025-09-27T14:15:00Z",
		ShippingAddress: "456 Tech Park, Bergen, Norway",
		Contact:         "orders@techsolutions.no",
	},
	{
		OrderID:      "ORD-2025-003",
		CustomerName: "Nordic Industries",
		Items: []models.OrderItem{
			{Name: "Office Chair Pro", Quantity: 10, UnitPrice: 399.99},
			{Name: "Standing Desk", Quantity: 4, UnitPrice: 799.99},
		},
		TotalAmount:     7199.86,
		Status:          models.StatusDelivered,
		OrderDate:       "2025-09-25T09:00:00Z",
		ShippingAddress: "789 Industrial Ave, Trondheim, Norway",
		Contact:         "procurement@nordic.no",
	},
	{
		OrderID:      "ORD-2025-004",
		CustomerName: "StartUp Hub",
		Items: []models.OrderItem{
			{Name: "MacBook Pro 16\"", Quantity: 2, UnitPrice: 2799.99},
			{Name: "iPad Pro 12.9\"", Quantity: 2, UnitPrice: 1299.99},
		},
		TotalAmount:     8199.96,
		Status:          models.StatusPending,
		OrderDate:       "2025-09-30T11:45:00Z",
		ShippingAddress: "321 Innovation St, Stavanger, Norway",
		Contact:         "admin@startuphub.no",
	},
	{
		OrderID:      "ORD-2025-005",
		CustomerName: "Global Logistics",
		Items: []models.OrderItem{
			{Name: "Printer HP LaserJet", Quantity: 1, UnitPrice: 899.99},
			{Name: "Paper A4 500 sheets", Quantity: 20, UnitPrice: 12.99},
			{Name: "Toner Cartridge", Quantity: 4, UnitPrice: 129.99},
		},
		TotalAmount:     1679.74,
		Status:          models.StatusProcessing,
		OrderDate:       "2025-09-29T16:20:00Z",
		ShippingAddress: "654 Logistics Blvd, Kristiansand, Norway",
		Contact:         "orders@globallogistics.no",
	},
}
