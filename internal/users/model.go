package users

import "time"

// User is one registered account. Emails are stored lower-cased and trimmed;
// the unique index on email enforces collision on case/whitespace variants.
type User struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"passwordHash"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}
