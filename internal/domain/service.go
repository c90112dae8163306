package domain

import "time"

// Service is a sellable offering in the catalog.
// Does not depend on Gin, Postgres or Redis.
type Service struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Stock       int
	OnPromotion bool
	Icon        string

	CreatedAt time.Time
}
