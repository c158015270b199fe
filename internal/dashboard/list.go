// Package dashboard holds the admin booking list state: one fetched list in
// memory, a derived filtered view, and fixed-size pagination over it.
package dashboard

import (
	"strings"

	"ridebook/internal/domain/models"
)

// FilterAll and FilterCustom are the two non-exact status filters. Anything
// else is matched against the booking status verbatim.
const (
	FilterAll    = "all"
	FilterCustom = "custom"
)

const DefaultPageSize = 10

// List derives a filtered, paginated view over a fetched booking list.
// Changing the search term or status filter resets to page 1.
type List struct {
	items    []models.Booking
	search   string
	status   string
	page     int
	pageSize int
}

func NewList(items []models.Booking, pageSize int) *List {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &List{
		items:    items,
		status:   FilterAll,
		page:     1,
		pageSize: pageSize,
	}
}

// SetItems replaces the backing list (a refetch) and keeps the filters.
func (l *List) SetItems(items []models.Booking) {
	l.items = items
	l.clampPage()
}

// SetSearch updates the search term and resets to page 1.
func (l *List) SetSearch(term string) {
	l.search = strings.TrimSpace(term)
	l.page = 1
}

// SetStatusFilter updates the status filter ("all", "custom", or an exact
// status) and resets to page 1.
func (l *List) SetStatusFilter(status string) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" {
		status = FilterAll
	}
	l.status = status
	l.page = 1
}

// SetPage moves to a page, clamped to [1, PageCount].
func (l *List) SetPage(page int) {
	l.page = page
	l.clampPage()
}

func (l *List) Page() int { return l.page }

func (l *List) matches(b models.Booking) bool {
	if l.search != "" {
		needle := strings.ToLower(l.search)
		name := strings.ToLower(b.Name)
		code := strings.ToLower(b.BookingCode)
		if !strings.Contains(name, needle) && !strings.Contains(code, needle) {
			return false
		}
	}
	switch l.status {
	case FilterAll:
		return true
	case FilterCustom:
		return b.IsCustomJourney()
	default:
		return strings.EqualFold(string(b.Status), l.status)
	}
}

// Filtered returns the full filtered view, unpaginated.
func (l *List) Filtered() []models.Booking {
	out := []models.Booking{}
	for _, b := range l.items {
		if l.matches(b) {
			out = append(out, b)
		}
	}
	return out
}

// Visible returns the current page slice of the filtered view.
func (l *List) Visible() []models.Booking {
	filtered := l.Filtered()
	start := (l.page - 1) * l.pageSize
	if start >= len(filtered) {
		return []models.Booking{}
	}
	end := start + l.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// PageCount is ceil(filtered length / page size); at least 1.
func (l *List) PageCount() int {
	n := len(l.Filtered())
	if n == 0 {
		return 1
	}
	return (n + l.pageSize - 1) / l.pageSize
}

func (l *List) clampPage() {
	if l.page < 1 {
		l.page = 1
	}
	if max := l.PageCount(); l.page > max {
		l.page = max
	}
}

// Patch replaces the item with the same booking code in place, avoiding a
// refetch after a mutation.
func (l *List) Patch(updated models.Booking) bool {
	for i, b := range l.items {
		if b.BookingCode == updated.BookingCode {
			l.items[i] = updated
			return true
		}
	}
	return false
}

// Remove drops the item with the given booking code.
func (l *List) Remove(code string) bool {
	for i, b := range l.items {
		if b.BookingCode == code {
			l.items = append(l.items[:i], l.items[i+1:]...)
			l.clampPage()
			return true
		}
	}
	return false
}
