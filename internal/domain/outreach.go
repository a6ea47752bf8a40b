package domain

// Volunteer is a sign-up from the volunteer form.
type Volunteer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Interests string    `json:"interests"`
	Message   string    `json:"message,omitempty"`
	CreatedAt Timestamp `json:"createdAt"`
}

// Donation is a pledge from the donation form. Item is a free-text
// description of what is being donated, not a reference to an Item.
type Donation struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Item      string    `json:"item"`
	Condition string    `json:"condition"`
	Message   string    `json:"message,omitempty"`
	CreatedAt Timestamp `json:"createdAt"`
}
