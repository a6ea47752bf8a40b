// Package match decides which items satisfy a borrowing request and computes
// rating aggregates. Everything here is a pure function over slices; callers
// load the data and persist the results.
//
// Three matching rules coexist on purpose. Query backs the /match endpoint,
// ForRequest backs request suggestions, and HasCandidate backs the metrics
// banner. They disagree on case handling for categories and on substring
// direction, and each caller depends on its own rule.
package match

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/edinacircular/circular-server/internal/domain"
)

// lower applies Unicode default lower-casing (including the final-sigma rule),
// the same mapping browsers use for String.prototype.toLowerCase.
// A Caser keeps state, so one is created per call.
func lower(s string) string {
	if s == "" {
		return ""
	}
	return cases.Lower(language.Und).String(s)
}

// Query returns the items whose name or description contains name, and whose
// category equals category, both case-insensitively. An empty category
// matches every category; an empty name matches every item.
func Query(items []domain.Item, name, category string) []domain.Item {
	q := lower(name)
	c := lower(category)

	out := make([]domain.Item, 0)
	for _, item := range items {
		textHit := strings.Contains(lower(item.Name), q) ||
			strings.Contains(lower(item.Description), q)
		if !textHit {
			continue
		}
		if c != "" && lower(item.Category) != c {
			continue
		}
		out = append(out, item)
	}
	return out
}

// ForRequest returns the items suggested for a request: the item name and the
// request name contain one another (either direction, case-insensitive), or
// the categories are exactly equal (case-sensitive).
func ForRequest(items []domain.Item, req domain.Request) []domain.Item {
	target := lower(req.Name)

	out := make([]domain.Item, 0)
	for _, item := range items {
		itemName := lower(item.Name)
		if strings.Contains(itemName, target) || strings.Contains(target, itemName) {
			out = append(out, item)
			continue
		}
		if item.Category == req.Category {
			out = append(out, item)
		}
	}
	return out
}

// HasCandidate reports whether any item name contains the request name, or any
// item category equals the request category, both case-insensitively.
func HasCandidate(items []domain.Item, req domain.Request) bool {
	q := lower(req.Name)
	c := lower(req.Category)
	for _, item := range items {
		if strings.Contains(lower(item.Name), q) || lower(item.Category) == c {
			return true
		}
	}
	return false
}

// Search filters items by a free-text query across name, category, type,
// lender name and description. A blank query returns every item.
func Search(items []domain.Item, q string) []domain.Item {
	needle := lower(strings.TrimSpace(q))
	if needle == "" {
		return items
	}

	out := make([]domain.Item, 0)
	for _, item := range items {
		haystack := strings.Join([]string{
			lower(item.Name),
			lower(item.Category),
			lower(string(item.Type)),
			lower(item.LenderName),
			lower(item.Description),
		}, " ")
		if strings.Contains(haystack, needle) {
			out = append(out, item)
		}
	}
	return out
}
