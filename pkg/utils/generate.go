package utils

import (
	"github.com/google/uuid"
)

// GenerateUserID creates the opaque identifier assigned by the store on creation
func GenerateUserID() string {
	return uuid.New().String()
}
