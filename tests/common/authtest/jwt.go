//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/notfound999/reservations/internal/pkg/config"
	"github.com/notfound999/reservations/internal/pkg/jwt"
)

// TokenFor mints a bearer token for userID signed with the test secret.
// In production tokens come from the account service; tests sign their own.
func TokenFor(t *testing.T, cfg config.Config, userID uuid.UUID) string {
	t.Helper()

	svc := jwt.NewService(cfg.JWT.Secret)
	token, err := svc.GenerateToken(userID, time.Hour)
	require.NoError(t, err)
	return token
}
