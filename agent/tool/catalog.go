// Package tool holds the deterministic tools the specialist playbooks run
// before generation: lookups over a static demo catalog of orders, products,
// troubleshooting steps, and policies. Tool names flow into the envelope's
// tools_used list; rendered summaries feed the prompt's customer context.
package tool

import (
	"fmt"
	"sort"
	"strings"
)

// Tool names as reported through the envelope.
const (
	ToolOrderLookup      = "order_lookup"
	ToolWarrantyCheck    = "warranty_check"
	ToolShipmentTracking = "shipment_tracking"
	ToolReturnProcessing = "return_processing"
	ToolProductInfo      = "product_info"
	ToolProductSearch    = "product_search"
	ToolKnowledgeSearch  = "knowledge_base_search"
	ToolPolicyLookup     = "policy_lookup"
)

// LookupOrder retrieves one order by id.
func LookupOrder(orderID string) (Order, bool) {
	o, ok := orders[strings.TrimSpace(orderID)]
	return o, ok
}

// CheckWarranty renders the warranty standing of an order.
func CheckWarranty(orderID string) (string, bool) {
	o, ok := orders[strings.TrimSpace(orderID)]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%s warranty on %s, expires %s", o.Warranty, o.Product, o.WarrantyExpires), true
}

// TrackShipment renders the delivery standing of an order.
func TrackShipment(orderID string) (string, bool) {
	o, ok := orders[strings.TrimSpace(orderID)]
	if !ok {
		return "", false
	}
	switch o.Status {
	case "delivered":
		return fmt.Sprintf("order %s was delivered on %s", orderID, o.DeliveryDate), true
	case "shipped":
		return fmt.Sprintf("order %s is in transit, expected delivery %s", orderID, o.DeliveryDate), true
	default:
		return fmt.Sprintf("order %s is %s", orderID, o.Status), true
	}
}

// InitiateReturn opens a return for an order with the given reason. Free
// return reasons waive the restocking fee.
func InitiateReturn(orderID, reason string) (string, bool) {
	o, ok := orders[strings.TrimSpace(orderID)]
	if !ok {
		return "", false
	}
	fee := "a 15% restocking fee applies"
	switch reason {
	case "defective", "wrong_item", "damaged_shipping":
		fee = "no restocking fee"
	}
	return fmt.Sprintf("return opened for order %s (%s), reason %s, %s", orderID, o.Product, reason, fee), true
}

// GetProduct retrieves one product by id.
func GetProduct(productID string) (Product, bool) {
	p, ok := products[strings.TrimSpace(productID)]
	return p, ok
}

// SearchProducts matches the query against product names and categories,
// case-insensitively. Results come back in a stable order, best rated first.
func SearchProducts(query string) []Product {
	lower := strings.ToLower(query)
	var found []Product
	for _, p := range products {
		if strings.Contains(lower, strings.ToLower(p.Name)) ||
			strings.Contains(lower, p.Category) ||
			strings.Contains(strings.ToLower(p.Name), lower) {
			found = append(found, p)
		}
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].Rating != found[j].Rating {
			return found[i].Rating > found[j].Rating
		}
		return found[i].ID < found[j].ID
	})
	return found
}

// Summary renders the one-line catalog description of a product.
func (p Product) Summary() string {
	return fmt.Sprintf("%s: %s, %s, %s, %s display, $%.2f, %d in stock, rated %.1f",
		p.Name, p.Processor, p.RAM, p.Storage, p.Display, p.Price, p.Inventory, p.Rating)
}

// knownIssues pins a deterministic match order over the knowledge base.
var knownIssues = []string{
	"laptop_wont_turn_on",
	"laptop_overheating",
	"slow_performance",
	"wifi_issues",
	"screen_issues",
}

// KnowledgeSteps returns troubleshooting steps for an issue query. Each known
// issue is scored by how many of its keywords appear in the query and the best
// match wins, ties going to the earlier issue. Unmatched queries fall back to
// general advice so the result is never empty.
func KnowledgeSteps(query string) []string {
	lower := strings.ToLower(query)
	best, bestHits := "", 0
	for _, issue := range knownIssues {
		hits := 0
		for _, keyword := range strings.Split(issue, "_") {
			if strings.Contains(lower, keyword) {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = issue, hits
		}
	}
	if best == "" {
		return generalSteps
	}
	return knowledgeBase[best]
}

// Policy returns the rendered policy lines for a kind (return, warranty,
// exchange), or false when the kind is unknown.
func Policy(kind string) ([]string, bool) {
	lines, ok := policies[strings.TrimSpace(strings.ToLower(kind))]
	return lines, ok
}
