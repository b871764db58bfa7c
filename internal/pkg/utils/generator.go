package utils

import (
	"doctors-portal-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.RequestIDPrefix + uuid.NewString()
}
