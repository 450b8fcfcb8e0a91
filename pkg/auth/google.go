package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

const GoogleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"

// GoogleIdentity is the subset of Google ID token claims the API consumes.
type GoogleIdentity struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// GoogleVerifier validates Google ID tokens presented by the client after
// a federated sign-in.
type GoogleVerifier struct {
	provider *Provider
	clientID string
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{
		provider: NewProvider(GoogleJWKSURL),
		clientID: clientID,
	}
}

// Verify checks the token signature against Google's JWKS and validates the
// issuer and audience claims, returning the embedded identity.
func (v *GoogleVerifier) Verify(idToken string) (*GoogleIdentity, error) {
	token, err := jwt.Parse(idToken, v.provider.KeyFunc, jwt.WithAudience(v.clientID))
	if err != nil || !token.Valid {
		if err == nil {
			err = jwt.ErrTokenUnverifiable
		}
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	iss, _ := claims["iss"].(string)
	if iss != "https://accounts.google.com" && iss != "accounts.google.com" {
		return nil, fmt.Errorf("unexpected issuer: %s", iss)
	}

	identity := &GoogleIdentity{}
	identity.Subject, _ = claims["sub"].(string)
	identity.Email, _ = claims["email"].(string)
	identity.Name, _ = claims["name"].(string)
	identity.Picture, _ = claims["picture"].(string)

	if identity.Email == "" {
		return nil, fmt.Errorf("id token carries no email claim")
	}
	return identity, nil
}
