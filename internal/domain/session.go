package domain

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Session carries the authenticated user's identity and, when known, their
// location through a single request. Core operations take it explicitly
// instead of reading ambient state.
type Session struct {
	UserEmail string
	Location  *Coordinates
}

// LoggedIn reports whether the session belongs to an authenticated user.
func (s Session) LoggedIn() bool {
	return s.UserEmail != ""
}
