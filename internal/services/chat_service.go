package services

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"erp_orders/internal/repository"
	"erp_orders/pkg/format"
)

// ChatService turns a free-text message into a reply by matching it against
// an ordered list of intents; the first matching intent wins. It keeps no
// state between calls.
type ChatService interface {
	Reply(message string) string
}

// intent pairs a predicate over the lower-cased input with a responder.
// Responders get both the lower-cased input (for extraction) and the
// original text (for echoing).
type intent struct {
	name    string
	match   func(input string) bool
	respond func(input, original string) string
}

type chatService struct {
	repo    repository.OrderRepository
	intents []intent
	rng     *rand.Rand
}

var orderIDPattern = regexp.MustCompile(`ord-\d{4}-\d{3}`)

// NewChatService builds the intent list over the given catalog. The rand
// source drives the fallback reply and is injected so tests can seed it.
func NewChatService(repo repository.OrderRepository, rng *rand.Rand) ChatService {
	s := &chatService{repo: repo, rng: rng}
	s.intents = []intent{
		{
			name: "order_status",
			match: func(input string) bool {
				return strings.Contains(input, "order") &&
					(strings.Contains(input, "status") || strings.Contains(input, "check"))
			},
			respond: s.statusSummary,
		},
		{
			name: "order_list",
			match: func(input string) bool {
				return strings.Contains(input, "order") && strings.Contains(input, "list")
			},
			respond: s.recentOrders,
		},
		{
			name: "order_lookup",
			match: func(input string) bool {
				return orderIDPattern.MatchString(input)
			},
			respond: s.orderLookup,
		},
		{
			name: "help",
			match: func(input string) bool {
				return strings.Contains(input, "help") || strings.Contains(input, "what can you do")
			},
			respond: s.help,
		},
		{
			name: "customers",
			match: func(input string) bool {
				return strings.Contains(input, "customer") || strings.Contains(input, "client")
			},
			respond: s.customers,
		},
	}
	return s
}

func (s *chatService) Reply(message string) string {
	input := strings.ToLower(message)
	for _, in := range s.intents {
		if in.match(input) {
			return in.respond(input, message)
		}
	}
	return s.fallback(message)
}

// statusSummary counts orders per status, statuses listed in first-seen
// catalog order.
func (s *chatService) statusSummary(_, _ string) string {
	orders := s.repo.GetAll()
	counts := make(map[string]int)
	var statuses []string
	for _, order := range orders {
		if _, seen := counts[order.Status]; !seen {
			statuses = append(statuses, order.Status)
		}
		counts[order.Status]++
	}

	parts := make([]string, 0, len(statuses))
	for _, status := range statuses {
		parts = append(parts, fmt.Sprintf("%d %s", counts[status], status))
	}
	return fmt.Sprintf("I can help you check order status! We currently have %d orders: %s. Would you like details about a specific order?",
		len(orders), strings.Join(parts, ", "))
}

func (s *chatService) recentOrders(_, _ string) string {
	orders := s.repo.GetAll()
	if len(orders) > 3 {
		orders = orders[:3]
	}

	var b strings.Builder
	b.WriteString("Here are our recent orders:\n")
	for _, order := range orders {
		fmt.Fprintf(&b, "• %s - %s (%s)\n", order.OrderID, order.CustomerName, order.Status)
	}
	b.WriteString("\nWould you like details about any specific order?")
	return b.String()
}

func (s *chatService) orderLookup(input, _ string) string {
	orderID := strings.ToUpper(orderIDPattern.FindString(input))
	order, ok := s.repo.GetByID(orderID)
	if !ok {
		return fmt.Sprintf("I couldn't find order %s. Please check the order ID and try again.", orderID)
	}
	return fmt.Sprintf("Found order %s for %s. Status: %s. Total: %s. Would you like more details?",
		orderID, order.CustomerName, order.Status, format.Currency(order.TotalAmount))
}

func (s *chatService) help(_, _ string) string {
	return "I can help you with order-related queries! Try asking me:\n" +
		"• \"Show me order status\"\n" +
		"• \"List recent orders\"\n" +
		"• \"Check order ORD-2025-001\"\n" +
		"• \"How many orders do we have?\"\n\n" +
		"I can provide information about order details, status, customers, and more!"
}

// customers lists distinct customer names, deduplicated in first-seen order.
func (s *chatService) customers(_, _ string) string {
	seen := make(map[string]bool)
	var names []string
	for _, order := range s.repo.GetAll() {
		if !seen[order.CustomerName] {
			seen[order.CustomerName] = true
			names = append(names, order.CustomerName)
		}
	}
	return fmt.Sprintf("We have orders from %d customers: %s. Which customer would you like to know more about?",
		len(names), strings.Join(names, ", "))
}

// fallbackTemplates echo the original (not lower-cased) message.
var fallbackTemplates = []string{
	`I understand you're asking about "%s". I can help you with order information, status checks, and customer details. What specific information do you need?`,
	`That's an interesting question about "%s". I'm specialized in order management. Would you like me to check order statuses or customer information?`,
	`I see you mentioned "%s". I can provide details about orders, customers, and order statuses. How can I assist you with order management today?`,
}

func (s *chatService) fallback(original string) string {
	return fmt.Sprintf(fallbackTemplates[s.rng.Intn(len(fallbackTemplates))], original)
}
