// Package models defines the client-side mirrors of the civil-registry
// entities returned by the REST backend. The structs carry JSON tags
// matching the wire contract and validate tags checked on ingress;
// the store never invents these values except as an optimistic append
// after a successful create.
package models

import "time"

// Person is a registered citizen record.
type Person struct {
	ID          int64     `json:"id" validate:"required"`
	FirstName   string    `json:"firstName" validate:"required"`
	LastName    string    `json:"lastName" validate:"required"`
	Patronymic  string    `json:"patronymic"`
	DateOfBirth string    `json:"dateOfBirth"`
	CreatedAt   time.Time `json:"createdAt"`
	Photos      []Photo   `json:"photos" validate:"dive"`
}

// Photo is an image attached to a person, in upload order.
type Photo struct {
	ID       int64  `json:"id" validate:"required"`
	PersonID int64  `json:"personId"`
	URL      string `json:"url" validate:"required"`
}

// Phone is a contact number owned by a person.
type Phone struct {
	ID       int64  `json:"id" validate:"required"`
	PersonID int64  `json:"personId" validate:"required"`
	Number   string `json:"phoneNumber" validate:"required"`
	Note     string `json:"note"`
}
