package state

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Query holds the shared sort/pagination axes of a list view and enforces
// their transition rules. Embedding list states own the locking.
type Query struct {
	Page      int
	SortBy    string
	SortOrder string
}

// NewQuery creates a Query with the given default sort field, ascending.
func NewQuery(defaultSort string) Query {
	return Query{
		Page:      1,
		SortBy:    defaultSort,
		SortOrder: SortAsc,
	}
}

// SetPage navigates to a page; page navigation never resets other axes.
func (q *Query) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	q.Page = page
}

// SetSort selects a sort field. Selecting a new field defaults the
// direction to ascending; re-selecting the active field toggles it.
// Sort-only changes leave the current page unchanged.
func (q *Query) SetSort(field string) {
	if field == q.SortBy {
		if q.SortOrder == SortAsc {
			q.SortOrder = SortDesc
		} else {
			q.SortOrder = SortAsc
		}
		return
	}
	q.SortBy = field
	q.SortOrder = SortAsc
}
