package pagination

const (
	DefaultLimit = 50
	MaxLimit     = 250
)

type PageRequest struct {
	AfterCursor *string
	Limit       int
}

// Paginated reports whether the caller asked for a page instead of the full list.
func (r PageRequest) Paginated() bool {
	return r.Limit > 0 || (r.AfterCursor != nil && *r.AfterCursor != "")
}

type Page[T any] struct {
	Count       int
	Items       []T
	EndCursor   *string
	HasNextPage bool
}
