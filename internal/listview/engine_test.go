package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dhoini/Tims-microservice/internal/domain"
)

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }

func testCustomers() []domain.Customer {
	return []domain.Customer{
		{ID: 1, Name: strPtr("Charlie Ltd"), Email: strPtr("sales@charlie.test")},
		{ID: 2, Name: strPtr("alpha GmbH"), Email: strPtr("info@alpha.test")},
		{ID: 3, Name: strPtr("Bravo Inc"), Email: strPtr("contact@bravo.test"), Phone: strPtr("555-0100")},
		{ID: 4, Name: strPtr("Bravo Inc"), Email: strPtr("billing@bravo.test")},
	}
}

func testOrders() []domain.Order {
	return []domain.Order{
		{ID: 1, OrderNumber: "ORD-1", CustomerName: strPtr("Acme"), ProductName: strPtr("Widget"),
			Quantity: intPtr(5), Amount: floatPtr(100), OrderDate: strPtr("2026-03-01"), Status: domain.StatusCompleted},
		{ID: 2, OrderNumber: "ORD-2", CustomerName: strPtr("Globex"), ProductName: strPtr("Gadget"),
			Quantity: intPtr(2), Amount: floatPtr(250), OrderDate: strPtr("2026-01-15"), Status: domain.StatusPending},
		{ID: 3, OrderNumber: "ORD-3", CustomerName: strPtr("Acme"), ProductName: strPtr("Sprocket"),
			Quantity: intPtr(10), Amount: floatPtr(25), OrderDate: strPtr("2026-02-10"), Status: ""},
		{ID: 4, OrderNumber: "ORD-4", CustomerName: strPtr("Initech"), ProductName: strPtr("Widget Pro"),
			Quantity: intPtr(1), Amount: floatPtr(999), OrderDate: strPtr("2025-12-31"), Status: domain.StatusCancelled},
	}
}

func orderIDs(page Page[domain.Order]) []int {
	ids := make([]int, 0, len(page.Rows))
	for _, o := range page.Rows {
		ids = append(ids, o.ID)
	}
	return ids
}

func TestCustomersSearch(t *testing.T) {
	rows := testCustomers()

	t.Run("matches any search field, case-insensitive", func(t *testing.T) {
		page := Customers(rows, State{SearchTerm: "BRAVO", CurrentPage: 1, ItemsPerPage: 10})

		require.Equal(t, 2, page.TotalRows)
		assert.Equal(t, 3, page.Rows[0].ID)
		assert.Equal(t, 4, page.Rows[1].ID)
	})

	t.Run("matches on phone", func(t *testing.T) {
		page := Customers(rows, State{SearchTerm: "555-01", CurrentPage: 1, ItemsPerPage: 10})

		require.Equal(t, 1, page.TotalRows)
		assert.Equal(t, 3, page.Rows[0].ID)
	})

	t.Run("empty term keeps everything", func(t *testing.T) {
		page := Customers(rows, State{CurrentPage: 1, ItemsPerPage: 10})
		assert.Equal(t, len(rows), page.TotalRows)
	})

	t.Run("no match yields an empty page", func(t *testing.T) {
		page := Customers(rows, State{SearchTerm: "zebra", CurrentPage: 1, ItemsPerPage: 10})
		assert.Zero(t, page.TotalRows)
		assert.Empty(t, page.Rows)
	})

	t.Run("input order is untouched", func(t *testing.T) {
		Customers(rows, State{SortField: "name", SortDirection: Ascending, CurrentPage: 1, ItemsPerPage: 10})
		assert.Equal(t, 1, rows[0].ID)
	})
}

func TestCustomersSort(t *testing.T) {
	rows := testCustomers()

	t.Run("name ascending ignores case", func(t *testing.T) {
		page := Customers(rows, State{SortField: "name", SortDirection: Ascending, CurrentPage: 1, ItemsPerPage: 10})

		assert.Equal(t, "alpha GmbH", *page.Rows[0].Name)
		assert.Equal(t, "Charlie Ltd", *page.Rows[3].Name)
	})

	t.Run("ties keep input order", func(t *testing.T) {
		page := Customers(rows, State{SortField: "name", SortDirection: Ascending, CurrentPage: 1, ItemsPerPage: 10})

		assert.Equal(t, 3, page.Rows[1].ID)
		assert.Equal(t, 4, page.Rows[2].ID)
	})

	t.Run("descending reverses distinct keys", func(t *testing.T) {
		asc := Customers(rows, State{SortField: "email", SortDirection: Ascending, CurrentPage: 1, ItemsPerPage: 10})
		desc := Customers(rows, State{SortField: "email", SortDirection: Descending, CurrentPage: 1, ItemsPerPage: 10})

		require.Equal(t, len(rows), len(asc.Rows))
		for i := range asc.Rows {
			assert.Equal(t, asc.Rows[i].ID, desc.Rows[len(desc.Rows)-1-i].ID)
		}
	})
}

func TestOrdersStatusFilter(t *testing.T) {
	rows := testOrders()

	t.Run("all keeps everything", func(t *testing.T) {
		page := Orders(rows, State{StatusFilter: StatusAll, CurrentPage: 1, ItemsPerPage: 10})
		assert.Equal(t, 4, page.TotalRows)
	})

	t.Run("empty status counts as pending", func(t *testing.T) {
		page := Orders(rows, State{StatusFilter: domain.StatusPending, CurrentPage: 1, ItemsPerPage: 10})

		assert.Equal(t, []int{2, 3}, orderIDs(page))
	})

	t.Run("filter and search combine", func(t *testing.T) {
		page := Orders(rows, State{StatusFilter: domain.StatusPending, SearchTerm: "acme", CurrentPage: 1, ItemsPerPage: 10})

		assert.Equal(t, []int{3}, orderIDs(page))
	})
}

func TestOrdersSort(t *testing.T) {
	rows := testOrders()

	t.Run("amount sorts numerically", func(t *testing.T) {
		page := Orders(rows, State{SortField: "amount", SortDirection: Ascending, CurrentPage: 1, ItemsPerPage: 10})

		assert.Equal(t, []int{3, 1, 2, 4}, orderIDs(page))
	})

	t.Run("total is an alias for amount", func(t *testing.T) {
		page := Orders(rows, State{SortField: "total", SortDirection: Descending, CurrentPage: 1, ItemsPerPage: 10})

		assert.Equal(t, []int{4, 2, 1, 3}, orderIDs(page))
	})

	t.Run("quantity sorts numerically, not lexically", func(t *testing.T) {
		page := Orders(rows, State{SortField: "quantity", SortDirection: Ascending, CurrentPage: 1, ItemsPerPage: 10})

		assert.Equal(t, []int{4, 2, 1, 3}, orderIDs(page))
	})

	t.Run("orderDate sorts chronologically", func(t *testing.T) {
		page := Orders(rows, State{SortField: "orderDate", SortDirection: Ascending, CurrentPage: 1, ItemsPerPage: 10})

		assert.Equal(t, []int{4, 2, 3, 1}, orderIDs(page))
	})

	t.Run("status sort collates empty status as pending", func(t *testing.T) {
		page := Orders(rows, State{SortField: "status", SortDirection: Ascending, CurrentPage: 1, ItemsPerPage: 10})

		// cancelled < completed < pending; the empty-status row ties
		// with the real pending row and keeps input order
		assert.Equal(t, []int{4, 1, 2, 3}, orderIDs(page))
	})

	t.Run("no sort field keeps input order", func(t *testing.T) {
		page := Orders(rows, State{CurrentPage: 1, ItemsPerPage: 10})

		assert.Equal(t, []int{1, 2, 3, 4}, orderIDs(page))
	})
}

func TestOrdersPagination(t *testing.T) {
	rows := make([]domain.Order, 0, 25)
	for i := 1; i <= 25; i++ {
		rows = append(rows, domain.Order{ID: i, Status: domain.StatusPending})
	}

	t.Run("default page size", func(t *testing.T) {
		page := Orders(rows, State{CurrentPage: 1})

		assert.Len(t, page.Rows, DefaultItemsPerPage)
		assert.Equal(t, 25, page.TotalRows)
		assert.Equal(t, 3, page.TotalPages)
	})

	t.Run("last partial page", func(t *testing.T) {
		page := Orders(rows, State{CurrentPage: 3, ItemsPerPage: 10})

		assert.Len(t, page.Rows, 5)
		assert.Equal(t, 21, page.Rows[0].ID)
	})

	t.Run("page beyond the end is empty", func(t *testing.T) {
		page := Orders(rows, State{CurrentPage: 9, ItemsPerPage: 10})

		assert.Empty(t, page.Rows)
		assert.Equal(t, 25, page.TotalRows)
	})

	t.Run("pagination runs after filtering", func(t *testing.T) {
		mixed := testOrders()
		page := Orders(mixed, State{StatusFilter: domain.StatusPending, CurrentPage: 1, ItemsPerPage: 1})

		assert.Equal(t, 2, page.TotalRows)
		assert.Equal(t, 2, page.TotalPages)
		assert.Len(t, page.Rows, 1)
	})
}
