// Package identities implements storage and business logic for the identity
// record type served by the protected CRUD routes.
package identities

import "time"

// Identity is the single document type of the service.
type Identity struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}

// Update carries a partial update; nil fields are left unchanged.
type Update struct {
	Name *string `json:"name"`
	Age  *int    `json:"age" binding:"omitempty,gte=0,lte=255"`
}
