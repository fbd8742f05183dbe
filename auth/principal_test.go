package auth_test

import (
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/hookvault/hookvault/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeToken builds a three-segment token with the given claims payload
// and an arbitrary signature segment.
func makeToken(t *testing.T, payload, signature string) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","typ":"JWT"}`))
	claims := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return fmt.Sprintf("%s.%s.%s", header, claims, signature)
}

func TestExtract(t *testing.T) {
	t.Run("success - bearer prefix", func(t *testing.T) {
		token := makeToken(t, `{"sub":"user-123","email":"a@example.com"}`, "sig")

		principal, err := auth.Extract("Bearer " + token)

		require.NoError(t, err)
		assert.Equal(t, "user-123", principal)
	})

	t.Run("success - bare token", func(t *testing.T) {
		token := makeToken(t, `{"sub":"user-123"}`, "sig")

		principal, err := auth.Extract(token)

		require.NoError(t, err)
		assert.Equal(t, "user-123", principal)
	})

	t.Run("forged token is accepted", func(t *testing.T) {
		/* This is the documented trust boundary, not a bug: Extract
		 * never verifies signatures. A token with a garbage signature
		 * still yields its subject, which is only safe behind a
		 * gateway that already validated the token. If this test ever
		 * fails, the trust model changed.
		 */
		forged := makeToken(t, `{"sub":"attacker-supplied"}`, "not-a-real-signature")

		principal, err := auth.Extract("Bearer " + forged)

		require.NoError(t, err)
		assert.Equal(t, "attacker-supplied", principal)
	})

	t.Run("missing credential", func(t *testing.T) {
		_, err := auth.Extract("")

		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
	})

	t.Run("not a three-segment token", func(t *testing.T) {
		_, err := auth.Extract("Bearer just-an-opaque-string")

		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
	})

	t.Run("claims segment is not base64url", func(t *testing.T) {
		_, err := auth.Extract("Bearer aaa.!!!.ccc")

		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
	})

	t.Run("claims segment is not JSON", func(t *testing.T) {
		token := makeToken(t, `not json at all`, "sig")

		_, err := auth.Extract("Bearer " + token)

		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
	})

	t.Run("missing subject claim", func(t *testing.T) {
		token := makeToken(t, `{"email":"a@example.com"}`, "sig")

		_, err := auth.Extract("Bearer " + token)

		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
	})
}
