package domain

// User represents a registered rider. Users are keyed by email and are
// never deleted; points and rentals are only mutated through the rental
// lifecycle.
type User struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"password_hash"`
	Phone        string   `json:"phone,omitempty"`
	CPF          string   `json:"cpf,omitempty"`
	Points       int      `json:"points"`
	Rentals      []Rental `json:"rentals"`
}

// ActiveRentalIndex returns the index of the user's open rental, or -1.
// At most one rental may be open at a time.
func (u *User) ActiveRentalIndex() int {
	for i := range u.Rentals {
		if u.Rentals[i].EndTime == nil {
			return i
		}
	}
	return -1
}
