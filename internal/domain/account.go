package domain

import "time"

// Account is the administrative credential able to manage the catalog.
type Account struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
