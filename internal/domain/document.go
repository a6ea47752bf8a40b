package domain

// Document is the whole persisted state. It is always loaded and saved as a
// unit; there is no partial persistence.
type Document struct {
	Items      []Item      `json:"items"`
	Requests   []Request   `json:"requests"`
	Ratings    []Rating    `json:"ratings"`
	Users      []User      `json:"users"`
	Volunteers []Volunteer `json:"volunteers"`
	Donations  []Donation  `json:"donations"`
}

// NewDocument returns an empty document with every collection initialized,
// so it serializes as empty arrays rather than null.
func NewDocument() *Document {
	d := &Document{}
	d.Normalize()
	return d
}

// Normalize replaces nil collections with empty ones. Documents written by
// older servers lack the volunteers and donations keys entirely.
func (d *Document) Normalize() {
	if d.Items == nil {
		d.Items = []Item{}
	}
	if d.Requests == nil {
		d.Requests = []Request{}
	}
	if d.Ratings == nil {
		d.Ratings = []Rating{}
	}
	if d.Users == nil {
		d.Users = []User{}
	}
	if d.Volunteers == nil {
		d.Volunteers = []Volunteer{}
	}
	if d.Donations == nil {
		d.Donations = []Donation{}
	}
}

// ItemIndex returns the position of the item with the given id, or -1.
func (d *Document) ItemIndex(id string) int {
	for i := range d.Items {
		if d.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// RequestIndex returns the position of the request with the given id, or -1.
func (d *Document) RequestIndex(id string) int {
	for i := range d.Requests {
		if d.Requests[i].ID == id {
			return i
		}
	}
	return -1
}

// UserByEmail returns the position of the user with exactly this email, or -1.
func (d *Document) UserByEmail(email string) int {
	for i := range d.Users {
		if d.Users[i].Email == email {
			return i
		}
	}
	return -1
}
