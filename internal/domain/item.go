// Package domain contains the core entities of the Edina Circular item-sharing marketplace.
package domain

// ItemType says whether an item is lent out and returned or given away for good.
type ItemType string

const (
	// ItemTypeLend marks an item the lender expects back.
	ItemTypeLend ItemType = "lend"
	// ItemTypeGive marks an item given away permanently.
	ItemTypeGive ItemType = "give"
)

// Item is a listing offered by a community member.
// Photo and LenderPhoto are opaque client-produced blobs (typically data URLs)
// that the server stores and returns without inspecting.
type Item struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Type          ItemType  `json:"type"`
	LenderName    string    `json:"lenderName"`
	LenderContact string    `json:"lenderContact"`
	LenderBio     string    `json:"lenderBio,omitempty"`
	Photo         string    `json:"photo,omitempty"`
	LenderPhoto   string    `json:"lenderPhoto,omitempty"`
	CreatedAt     Timestamp `json:"createdAt"`
	Verified      bool      `json:"verified"`
	RatingAvg     *float64  `json:"ratingAvg,omitempty"`
	RatingCount   *int      `json:"ratingCount,omitempty"`
}

// IsLend reports whether the item is lent rather than given away.
// Anything that is not explicitly "lend" counts as a giveaway.
func (i *Item) IsLend() bool {
	return i.Type == ItemTypeLend
}

// SetRating overwrites the aggregate rating fields.
func (i *Item) SetRating(avg float64, count int) {
	i.RatingAvg = &avg
	i.RatingCount = &count
}
