package models

// Car is a vehicle registered to a person.
type Car struct {
	ID           int64  `json:"id" validate:"required"`
	PersonID     int64  `json:"personId" validate:"required"`
	Brand        string `json:"brand" validate:"required"`
	Model        string `json:"model"`
	Color        string `json:"color"`
	Year         int    `json:"year" validate:"omitempty,gte=1900"`
	LicensePlate string `json:"carNumber" validate:"required"`
	PhotoURL     string `json:"photoUrl"`
}
