// Package models contains the server-side data model.
package models

import "time"

// User is a registered account. Username is the case-sensitive identity key;
// PasswordHash is the bcrypt digest, the plaintext is never stored.
type User struct {
	ID           string
	UserName     string
	PasswordHash string
	CreatedAt    time.Time
}
