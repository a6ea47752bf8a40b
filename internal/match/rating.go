package match

import "github.com/edinacircular/circular-server/internal/domain"

// Aggregate returns the arithmetic mean and count of every rating for itemID.
// The average is recomputed from the full set each time, never incrementally.
// With no ratings both values are zero.
func Aggregate(ratings []domain.Rating, itemID string) (avg float64, count int) {
	var sum float64
	for _, r := range ratings {
		if r.ItemID != itemID {
			continue
		}
		sum += r.Rating
		count++
	}
	if count == 0 {
		return 0, 0
	}
	return sum / float64(count), count
}
