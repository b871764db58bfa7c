package utils

import (
	"errors"
	"testing"
	"time"

	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func TestGenerateAndParseJWT(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		token, err := GenerateJWT("patient@example.com", testSecret, 1)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		email, err := ParseJWT(token, testSecret)
		assert.NoError(t, err)
		assert.Equal(t, "patient@example.com", email)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token, err := GenerateJWT("patient@example.com", testSecret, 1)
		assert.NoError(t, err)

		_, err = ParseJWT(token, "another-secret")
		assert.Error(t, err)

		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("Expired Token", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"email": "patient@example.com",
			"exp":   time.Now().Add(-time.Minute).Unix(),
		})
		tokenString, err := expired.SignedString([]byte(testSecret))
		assert.NoError(t, err)

		_, err = ParseJWT(tokenString, testSecret)
		assert.Error(t, err)

		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("Malformed Token", func(t *testing.T) {
		_, err := ParseJWT("not-a-token", testSecret)
		assert.Error(t, err)
	})

	t.Run("Missing Email Claim", func(t *testing.T) {
		noEmail := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		tokenString, err := noEmail.SignedString([]byte(testSecret))
		assert.NoError(t, err)

		_, err = ParseJWT(tokenString, testSecret)
		assert.Error(t, err)
	})
}
