package jwt

import "github.com/golang-jwt/jwt"

// Payload defines the JWT claims carried by a viewer session token.
// The token is minted at onboarding (or auto-login) and binds every API
// call to the viewer's server-side session.
type Payload struct {
	// StandardClaims embeds the standard JWT fields (Exp, Iat, Iss) used
	// for validity checks.
	jwt.StandardClaims `json:"standard_claims"`

	// ProfileID is the onboarded viewer's profile identifier.
	ProfileID string `json:"profile_id"`

	// SessionID identifies the viewer's live radar session on this server.
	SessionID string `json:"session_id"`

	// Name is the viewer's display handle, stamped on outgoing messages.
	Name string `json:"name"`
}
