package domain

const (
	// MinRating is the lowest accepted star rating.
	MinRating = 1
	// MaxRating is the highest accepted star rating.
	MaxRating = 5
)

// Rating is a single star rating for an item. Ratings are append-only and the
// full set for an item is the source of truth for its aggregate. New ratings
// are whole stars; older documents may hold fractional values, so the stored
// value is a float.
type Rating struct {
	ItemID string  `json:"itemId"`
	Rating float64 `json:"rating"`
}

// ValidRating reports whether r is within [MinRating, MaxRating].
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
