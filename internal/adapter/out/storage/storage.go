package storage

// ListParams selects a window of records ordered by id ascending.
// A zero Limit means no limit.
type ListParams struct {
	AfterID int64
	Limit   int
}

// Window applies params to ids already sorted ascending and returns the
// half-open index range [from, to) to keep.
func Window(ids []int64, params ListParams) (from, to int) {
	from = len(ids)
	for i, id := range ids {
		if id > params.AfterID {
			from = i
			break
		}
	}
	to = len(ids)
	if params.Limit > 0 && from+params.Limit < to {
		to = from + params.Limit
	}
	return from, to
}
