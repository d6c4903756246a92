package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new document or sub-document id. Ids are uuid strings,
// so a malformed id in a request simply matches nothing.
func GenerateID() string {
	return uuid.New().String()
}
