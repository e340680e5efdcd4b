// Package token issues Twilio voice capability tokens.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Gejoprajan/TwilioToolBarNode/internal/config"
	"github.com/Gejoprajan/TwilioToolBarNode/internal/domain"
)

// DefaultIdentity is the single well-known browser softphone endpoint.
const DefaultIdentity = "browser-client"

// TokenTTL is how long an issued token stays valid. Expiry is enforced by
// Twilio, not locally.
const TokenTTL = time.Hour

// Issuer signs capability tokens binding a client identity to permission to
// place and receive calls. It is stateless: issued tokens are never stored
// or decoded here.
type Issuer struct {
	cfg *config.Config
}

// NewIssuer creates a new issuer.
func NewIssuer(cfg *config.Config) *Issuer {
	return &Issuer{cfg: cfg}
}

// Issue returns a signed access token for identity. An empty identity falls
// back to DefaultIdentity. The token grants both incoming and outgoing voice
// capability, in the claim layout Twilio's client SDK expects.
func (i *Issuer) Issue(identity string) (string, error) {
	if identity == "" {
		identity = DefaultIdentity
	}
	if i.cfg.AccountSID == "" || i.cfg.APIKey == "" || i.cfg.APISecret == "" || i.cfg.TwiMLAppSID == "" {
		return "", &domain.ConfigurationError{Message: "token signing credentials are not configured"}
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"jti": i.cfg.APIKey + "-" + uuid.New().String()[:8],
		"iss": i.cfg.APIKey,
		"sub": i.cfg.AccountSID,
		"iat": now.Unix(),
		"exp": now.Add(TokenTTL).Unix(),
		"grants": map[string]any{
			"identity": identity,
			"voice": map[string]any{
				"outgoing": map[string]any{
					"application_sid": i.cfg.TwiMLAppSID,
				},
				"incoming": map[string]any{
					"allow": true,
				},
			},
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tok.Header["cty"] = "twilio-fpa;v=1"

	signed, err := tok.SignedString([]byte(i.cfg.APISecret))
	if err != nil {
		return "", &domain.ConfigurationError{Message: "failed to sign capability token"}
	}
	return signed, nil
}
