package listview

// Sort directions
const (
	Ascending  = "asc"
	Descending = "desc"
)

// StatusAll disables status filtering
const StatusAll = "all"

// DefaultItemsPerPage is the page size the list views render with
const DefaultItemsPerPage = 10

// State is the view state driving the list pipeline. The engine holds
// no state of its own; every recomputation receives the full State.
type State struct {
	SearchTerm    string
	SortField     string
	SortDirection string
	StatusFilter  string
	CurrentPage   int
	ItemsPerPage  int
}

// NewState returns the initial view state for a list sorted ascending
// on the given field.
func NewState(sortField string) State {
	return State{
		SortField:     sortField,
		SortDirection: Ascending,
		StatusFilter:  StatusAll,
		CurrentPage:   1,
		ItemsPerPage:  DefaultItemsPerPage,
	}
}

// ToggleSort returns the state after a click on a column header:
// the active field flips direction, a new field sorts ascending.
func (s State) ToggleSort(field string) State {
	if s.SortField == field {
		if s.SortDirection == Ascending {
			s.SortDirection = Descending
		} else {
			s.SortDirection = Ascending
		}
		return s
	}
	s.SortField = field
	s.SortDirection = Ascending
	return s
}

// WithSearch returns the state after the search term changed. The
// current page resets to 1.
func (s State) WithSearch(term string) State {
	s.SearchTerm = term
	s.CurrentPage = 1
	return s
}

// WithStatusFilter returns the state after the status filter changed.
// The current page resets to 1.
func (s State) WithStatusFilter(status string) State {
	s.StatusFilter = status
	s.CurrentPage = 1
	return s
}

// WithPage returns the state positioned on the given page
func (s State) WithPage(page int) State {
	if page < 1 {
		page = 1
	}
	s.CurrentPage = page
	return s
}
