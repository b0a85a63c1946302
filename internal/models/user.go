package models

import "time"

// User is the canonical identity record. ID is the opaque identifier exposed
// by the GraphQL transport; Seq is the counter-allocated numeric identifier
// exposed by the REST transport. Both are assigned at creation and stable for
// the entity lifetime.
type User struct {
	ID           string
	Seq          int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
