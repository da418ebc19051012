package domain

import "github.com/google/uuid"

// List is a shopping context (a place to buy things at) owned by exactly
// one creator. The creator ID is the opaque user identifier issued by the
// external identity provider; it is never parsed or validated here.
type List struct {
	ID        uuid.UUID
	Place     string
	Type      string
	CreatorID string
}
