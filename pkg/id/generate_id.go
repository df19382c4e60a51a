package id

import "github.com/google/uuid"

// New returns a lowercase UUID string, the identifier format the record store
// issues for every entity.
func New() string {
	return uuid.NewString()
}
