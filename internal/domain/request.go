package domain

// Request is a borrowing request: someone looking for an item.
// Matches are never stored on the request; they are recomputed on demand.
type Request struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}
