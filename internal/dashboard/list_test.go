package dashboard

import (
	"fmt"
	"testing"

	"ridebook/internal/domain"
	"ridebook/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeBookings(n int) []models.Booking {
	items := make([]models.Booking, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, models.Booking{
			ID:          int64(i),
			BookingCode: fmt.Sprintf("BK-%04d", i),
			Name:        fmt.Sprintf("Customer %d", i),
			Status:      domain.StatusPending,
		})
	}
	return items
}

func TestPagination(t *testing.T) {
	l := NewList(makeBookings(25), 10)

	assert.Equal(t, 3, l.PageCount())
	assert.Len(t, l.Visible(), 10)

	l.SetPage(2)
	assert.Len(t, l.Visible(), 10)
	assert.Equal(t, "BK-0011", l.Visible()[0].BookingCode)

	l.SetPage(3)
	assert.Len(t, l.Visible(), 5)

	// out-of-range pages clamp
	l.SetPage(99)
	assert.Equal(t, 3, l.Page())
	l.SetPage(0)
	assert.Equal(t, 1, l.Page())
}

func TestEmptyListHasOnePage(t *testing.T) {
	l := NewList(nil, 10)
	assert.Equal(t, 1, l.PageCount())
	assert.Empty(t, l.Visible())
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	items := makeBookings(5)
	items[2].Name = "John Appleseed"
	l := NewList(items, 10)

	l.SetSearch("  JOHN ")
	filtered := l.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "John Appleseed", filtered[0].Name)

	// code matches too
	l.SetSearch("bk-0004")
	require.Len(t, l.Filtered(), 1)
}

func TestStatusFilter(t *testing.T) {
	items := makeBookings(6)
	items[0].Status = domain.StatusConfirmed
	items[1].Status = domain.StatusConfirmed
	rate := 120.0
	items[2].CustomRate = &rate
	items[3].CustomJourneyDetails = "three stops, wait at each"
	l := NewList(items, 10)

	l.SetStatusFilter("confirmed")
	assert.Len(t, l.Filtered(), 2)

	l.SetStatusFilter(FilterCustom)
	assert.Len(t, l.Filtered(), 2)

	l.SetStatusFilter(FilterAll)
	assert.Len(t, l.Filtered(), 6)
}

func TestFilterChangeResetsPage(t *testing.T) {
	l := NewList(makeBookings(25), 10)
	l.SetPage(3)

	l.SetSearch("customer")
	assert.Equal(t, 1, l.Page())

	l.SetPage(2)
	l.SetStatusFilter("pending")
	assert.Equal(t, 1, l.Page())
}

func TestPatchReplacesInPlace(t *testing.T) {
	l := NewList(makeBookings(3), 10)

	updated := models.Booking{BookingCode: "BK-0002", Name: "Renamed", Status: domain.StatusConfirmed}
	require.True(t, l.Patch(updated))
	assert.Equal(t, "Renamed", l.Filtered()[1].Name)

	assert.False(t, l.Patch(models.Booking{BookingCode: "BK-9999"}))
}

func TestRemoveDropsAndClamps(t *testing.T) {
	l := NewList(makeBookings(11), 10)
	l.SetPage(2)

	require.True(t, l.Remove("BK-0011"))
	assert.Equal(t, 1, l.Page())
	assert.Len(t, l.Filtered(), 10)

	assert.False(t, l.Remove("BK-0011"))
}
