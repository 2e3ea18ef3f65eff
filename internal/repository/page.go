package repository

const (
	// DefaultLimit is applied when a listing request carries no limit.
	DefaultLimit = 20
	// MaxLimit caps a single listing page.
	MaxLimit = 100
)

// PageVerify clamps limit and offset into their allowed ranges.
func PageVerify(limit, offset *int64) {
	if *limit <= 0 {
		*limit = DefaultLimit
	}
	if *limit > MaxLimit {
		*limit = MaxLimit
	}
	if *offset < 0 {
		*offset = 0
	}
}
