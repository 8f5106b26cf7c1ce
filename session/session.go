package session

// RoleAdmin is the privileged role: it satisfies every role requirement.
// All other role values are treated as standard.
const RoleAdmin = "admin"

// User is the authenticated account record returned by the login and
// profile endpoints.
type User struct {
	ID            string `json:"id,omitempty"`             // Unique identifier for the user
	Name          string `json:"name,omitempty"`           // Display name
	Email         string `json:"email,omitempty"`          // User's email address
	Role          string `json:"role,omitempty"`           // Role tag; "admin" is privileged
	AccountStatus string `json:"account_status,omitempty"` // Account status as reported by the server
	ExpiredAt     string `json:"expired_at,omitempty"`     // Optional account expiry timestamp
}

// Session pairs a bearer token with the user it was minted for. The two
// fields are always set or emptied together; a partial session never
// exists.
type Session struct {
	Token string `json:"token,omitempty"`
	User  *User  `json:"user,omitempty"`
}

// IsZero reports whether the session is empty.
func (s Session) IsZero() bool {
	return s.Token == "" && s.User == nil
}
