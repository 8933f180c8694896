package models

// Address is a structured residence location, optionally geocoded.
type Address struct {
	ID        int64    `json:"id" validate:"required"`
	PersonID  int64    `json:"personId" validate:"required"`
	Region    string   `json:"region"`
	City      string   `json:"city" validate:"required"`
	Street    string   `json:"street"`
	House     string   `json:"house"`
	Apartment string   `json:"apartment"`
	PostCode  string   `json:"postCode"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Residency records a person living at an address for a period.
// MoveOutDate is empty while the residency is current.
type Residency struct {
	ID          int64  `json:"id" validate:"required"`
	AddressID   int64  `json:"addressId" validate:"required"`
	PersonID    int64  `json:"personId" validate:"required"`
	MoveInDate  string `json:"moveInDate" validate:"required"`
	MoveOutDate string `json:"moveOutDate"`
}
