package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
)

/* Principal extraction for owner-facing calls.
 *
 * SECURITY CONTRACT: Extract does NOT verify the token. It decodes the
 * claims segment of an already-validated bearer token and pulls the
 * subject back out. Signature, issuer and audience checks happen in the
 * gateway sitting in front of this service; running this code without
 * that gateway accepts forged tokens. The test suite pins this down
 * explicitly so nobody "fixes" it by accident - verifying here would
 * change the trust model, not harden it.
 */

// ErrUnauthenticated is returned when no usable principal can be
// extracted from the credential.
var ErrUnauthenticated = errors.New("unauthenticated")

type claims struct {
	Sub string `json:"sub"`
}

/* Extract returns the stable subject identifier from an Authorization
 * header value. Accepts both "Bearer <token>" and a bare token.
 */
func Extract(authorization string) (string, error) {
	if authorization == "" {
		return "", ErrUnauthenticated
	}

	token := strings.TrimPrefix(authorization, "Bearer ")

	// A signed token has three dot-separated segments; the claims live
	// in the middle one.
	parts := strings.Split(token, ".")
	if len(parts) != 3 || parts[1] == "" {
		return "", ErrUnauthenticated
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return "", ErrUnauthenticated
	}

	var c claims
	if err := json.Unmarshal(payload, &c); err != nil {
		return "", ErrUnauthenticated
	}
	if c.Sub == "" {
		return "", ErrUnauthenticated
	}

	return c.Sub, nil
}
