//go:build e2e

package authtest

import (
	"testing"
	"time"

	"courtbook/internal/domain/user"
	"courtbook/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const TestJWTSecret = "test-secret"

func Token(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()

	svc := jwt.NewService(TestJWTSecret, time.Hour)
	token, err := svc.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
