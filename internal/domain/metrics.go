package domain

// Metrics is the community dashboard summary.
type Metrics struct {
	TotalItems      int `json:"totalItems"`
	LendItems       int `json:"lendItems"`
	GiveItems       int `json:"giveItems"`
	Requests        int `json:"requests"`
	MatchedRequests int `json:"matchedRequests"`
}
