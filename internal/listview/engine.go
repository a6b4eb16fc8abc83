// Package listview implements the pure filter/sort/paginate pipeline
// the list views run over an already-fetched collection. It performs
// no I/O and must be re-run on every view-state change.
package listview

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Dhoini/Tims-microservice/internal/domain"
)

// Page is the computed slice of rows to render
type Page[T any] struct {
	Rows        []T
	TotalRows   int
	TotalPages  int
	CurrentPage int
}

// sortKind selects the comparison applied to a sort field
type sortKind int

const (
	kindString sortKind = iota
	kindNumber
	kindDate
)

// fields describes how the pipeline reads one entity kind
type fields[T any] struct {
	search []func(T) string
	status func(T) string
	value  func(T, string) string
	number func(T, string) float64
}

// collator performs the locale string comparison used for non-numeric
// sort fields. Collation is deterministic for a fixed language tag, so
// a package-level instance keeps the engine allocation-free per call.
var collator = collate.New(language.English)

// Customers computes the customer page for the given view state
func Customers(rows []domain.Customer, st State) Page[domain.Customer] {
	return apply(rows, st, customerFields)
}

// Orders computes the order page for the given view state, including
// the status filter
func Orders(rows []domain.Order, st State) Page[domain.Order] {
	return apply(rows, st, orderFields)
}

var customerFields = fields[domain.Customer]{
	search: []func(domain.Customer) string{
		func(c domain.Customer) string { return str(c.Name) },
		func(c domain.Customer) string { return str(c.Email) },
		func(c domain.Customer) string { return str(c.Phone) },
		func(c domain.Customer) string { return str(c.Address) },
	},
	value: func(c domain.Customer, field string) string {
		switch field {
		case "name":
			return str(c.Name)
		case "email":
			return str(c.Email)
		case "phone":
			return str(c.Phone)
		case "address":
			return str(c.Address)
		}
		return ""
	},
	number: func(domain.Customer, string) float64 { return 0 },
}

var orderFields = fields[domain.Order]{
	search: []func(domain.Order) string{
		func(o domain.Order) string { return o.OrderNumber },
		func(o domain.Order) string { return str(o.CustomerName) },
		func(o domain.Order) string { return str(o.ProductName) },
	},
	status: orderStatus,
	value: func(o domain.Order, field string) string {
		switch field {
		case "orderNumber":
			return o.OrderNumber
		case "customerName":
			return str(o.CustomerName)
		case "productName":
			return str(o.ProductName)
		case "orderDate", "date":
			return str(o.OrderDate)
		case "status":
			return orderStatus(o)
		}
		return ""
	},
	number: func(o domain.Order, field string) float64 {
		switch field {
		case "quantity":
			if o.Quantity != nil {
				return float64(*o.Quantity)
			}
		case "amount", "total":
			if o.Amount != nil {
				return *o.Amount
			}
		}
		return 0
	},
}

// apply runs the three pipeline stages in order: filter, stable sort,
// paginate.
func apply[T any](rows []T, st State, f fields[T]) Page[T] {
	filtered := filterRows(rows, st, f)
	sortRows(filtered, st, f)
	return paginate(filtered, st)
}

// filterRows keeps rows matching the search term in at least one
// search field (case-insensitive), and for status-carrying entities
// the active status filter.
func filterRows[T any](rows []T, st State, f fields[T]) []T {
	term := strings.ToLower(st.SearchTerm)

	kept := make([]T, 0, len(rows))
	for _, row := range rows {
		if f.status != nil && st.StatusFilter != "" && st.StatusFilter != StatusAll {
			if f.status(row) != st.StatusFilter {
				continue
			}
		}
		if term != "" && !matches(row, term, f) {
			continue
		}
		kept = append(kept, row)
	}
	return kept
}

// matches reports whether any search field contains the lowercased term
func matches[T any](row T, term string, f fields[T]) bool {
	for _, get := range f.search {
		if strings.Contains(strings.ToLower(get(row)), term) {
			return true
		}
	}
	return false
}

// sortRows orders rows by the active sort field. The sort is stable:
// tied keys keep their relative input order.
func sortRows[T any](rows []T, st State, f fields[T]) {
	if st.SortField == "" {
		return
	}

	kind := fieldKind(st.SortField)
	desc := st.SortDirection == Descending

	sort.SliceStable(rows, func(i, j int) bool {
		var cmp int
		switch kind {
		case kindNumber:
			cmp = compareFloats(f.number(rows[i], st.SortField), f.number(rows[j], st.SortField))
		case kindDate:
			cmp = compareFloats(dateValue(f.value(rows[i], st.SortField)), dateValue(f.value(rows[j], st.SortField)))
		default:
			cmp = collator.CompareString(f.value(rows[i], st.SortField), f.value(rows[j], st.SortField))
		}
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

// paginate slices the current page out of the filtered, sorted rows
func paginate[T any](rows []T, st State) Page[T] {
	page := st.CurrentPage
	if page < 1 {
		page = 1
	}
	perPage := st.ItemsPerPage
	if perPage < 1 {
		perPage = DefaultItemsPerPage
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(rows) {
		start = len(rows)
	}
	if end > len(rows) {
		end = len(rows)
	}

	return Page[T]{
		Rows:        rows[start:end],
		TotalRows:   len(rows),
		TotalPages:  domain.PageCount(len(rows), perPage),
		CurrentPage: page,
	}
}

// fieldKind classifies a sort field: quantities and amounts compare
// numerically, dates as parsed timestamps, everything else as locale
// strings.
func fieldKind(field string) sortKind {
	switch field {
	case "quantity", "amount", "total":
		return kindNumber
	case "orderDate", "date":
		return kindDate
	}
	return kindString
}

// dateValue parses an ISO date or timestamp into a sortable number.
// Unparseable values sort before every real date.
func dateValue(s string) float64 {
	if s == "" {
		return 0
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return float64(t.UnixMilli())
		}
	}
	return 0
}

// compareFloats is a three-way float comparison
func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// orderStatus reads an order's status, treating an empty value as
// pending for filtering and sorting alike
func orderStatus(o domain.Order) string {
	if o.Status == "" {
		return domain.StatusPending
	}
	return o.Status
}

// str dereferences an optional string field
func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
