package user

// Record is one Gong user in output form. Missing upstream fields resolve
// to "" and active defaults to false.
type Record struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Active    bool   `json:"active"`
}

// Directory is the users resource payload.
type Directory struct {
	Users      []Record `json:"users"`
	Count      int      `json:"count"`
	NextCursor string   `json:"nextCursor,omitempty"`
}
