package models

// Prison is a reference-list entry embedded into criminal records.
type Prison struct {
	ID       int64  `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Location string `json:"location"`
}

// CriminalRecord is a conviction attached to a person.
type CriminalRecord struct {
	ID             int64   `json:"id" validate:"required"`
	PersonID       int64   `json:"personId" validate:"required"`
	Article        string  `json:"article" validate:"required"`
	Sentence       string  `json:"sentence"`
	Detail         string  `json:"detail"`
	ConvictionDate string  `json:"convictionDate"`
	ReleaseDate    string  `json:"releaseDate"`
	Prison         *Prison `json:"prison"`
}
