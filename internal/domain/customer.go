package domain

import "time"

// Customer is the party a parcel is shipped for.
type Customer struct {
	ID           string
	Name         string
	Phone        string
	Address      string
	BusinessName string
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CustomerFilter narrows a customer listing.
type CustomerFilter struct {
	Search string
	Limit  int
}
