package entity

import (
	"time"
)

// Note is the single domain record of this service. The Id is an opaque
// string assigned by the active storage backend: the relational provider
// mints a UUID before insert, the document provider returns a record id
// in the form "notes:key".
type Note struct {
	Id        string
	Title     string
	Content   string
	UserId    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
