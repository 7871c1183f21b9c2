package jwt

import "github.com/golang-jwt/jwt/v5"

// Role is the access role carried in a token.
type Role string

const (
	RoleScorer    Role = "scorer"
	RoleOrganizer Role = "organizer"
)

// TripClaims are the claims issued to trip members. Subject is the player's
// email-like identity.
type TripClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name,omitempty"`
	Role string `json:"role,omitempty"`
}
