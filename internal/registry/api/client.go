package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/dserbyn/regconsole/internal/registry/models"
)

// PageRequest describes a paged, sorted listing request.
type PageRequest struct {
	Page    int
	Size    int
	SortCol string
	SortDir string
}

func (p PageRequest) query() url.Values {
	q := url.Values{}
	q.Set("pageNumber", strconv.Itoa(p.Page))
	q.Set("pageSize", strconv.Itoa(p.Size))
	if p.SortCol != "" {
		q.Set("sortColumn", p.SortCol)
	}
	if p.SortDir != "" {
		q.Set("sortDirection", p.SortDir)
	}
	return q
}

// PersonQuery is a free-text search plus optional structured filters.
// A nil filter is not sent at all, so an all-nil query is identical to
// an unfiltered listing on the server side.
type PersonQuery struct {
	Query       string
	MinAge      *int
	MaxAge      *int
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	HasCar      *bool
	HasCrime    *bool
}

func (s PersonQuery) query() url.Values {
	q := url.Values{}
	if s.Query != "" {
		q.Set("query", s.Query)
	}
	if s.MinAge != nil {
		q.Set("minAge", strconv.Itoa(*s.MinAge))
	}
	if s.MaxAge != nil {
		q.Set("maxAge", strconv.Itoa(*s.MaxAge))
	}
	if s.CreatedFrom != nil {
		q.Set("createdFrom", s.CreatedFrom.Format(time.RFC3339))
	}
	if s.CreatedTo != nil {
		q.Set("createdTo", s.CreatedTo.Format(time.RFC3339))
	}
	if s.HasCar != nil {
		q.Set("hasCar", strconv.FormatBool(*s.HasCar))
	}
	if s.HasCrime != nil {
		q.Set("hasCrime", strconv.FormatBool(*s.HasCrime))
	}
	return q
}

// People covers the User resource group.
type People interface {
	List(ctx context.Context, page PageRequest) ([]models.Person, error)
	Get(ctx context.Context, id int64) (*models.Person, error)
	Search(ctx context.Context, q PersonQuery) ([]models.Person, error)
	Count(ctx context.Context) (int64, error)
	IDs(ctx context.Context) ([]int64, error)
	Create(ctx context.Context, in PersonInput) (*models.Person, error)
	Update(ctx context.Context, id int64, in PersonInput) (*models.Person, error)
	Delete(ctx context.Context, id int64) error
}

// Cars covers the Car resource group.
type Cars interface {
	List(ctx context.Context, page PageRequest) ([]models.Car, error)
	ListByPerson(ctx context.Context, personID int64) ([]models.Car, error)
	Get(ctx context.Context, id int64) (*models.Car, error)
	Count(ctx context.Context) (int64, error)
	CheckPlate(ctx context.Context, plate string) (taken bool, err error)
	Create(ctx context.Context, in CarInput) (*models.Car, error)
	Update(ctx context.Context, id int64, in CarInput) (*models.Car, error)
	Delete(ctx context.Context, id int64) error
}

// Addresses covers the Address resource group and its residency
// sub-resource.
type Addresses interface {
	ListByPerson(ctx context.Context, personID int64) ([]models.Address, error)
	Get(ctx context.Context, id int64) (*models.Address, error)
	Residents(ctx context.Context, addressID int64) ([]models.Residency, error)
	Create(ctx context.Context, in AddressInput) (*models.Address, error)
	Update(ctx context.Context, id int64, in AddressInput) (*models.Address, error)
	Delete(ctx context.Context, id int64) error
}

// Crimes covers the CriminalRecord resource group plus the prison
// reference list its forms draw from.
type Crimes interface {
	ListByPerson(ctx context.Context, personID int64) ([]models.CriminalRecord, error)
	Get(ctx context.Context, id int64) (*models.CriminalRecord, error)
	Prisons(ctx context.Context) ([]models.Prison, error)
	Create(ctx context.Context, in CrimeInput) (*models.CriminalRecord, error)
	Update(ctx context.Context, id int64, in CrimeInput) (*models.CriminalRecord, error)
	Delete(ctx context.Context, id int64) error
}

// Phones covers the Phone resource group.
type Phones interface {
	ListByPerson(ctx context.Context, personID int64) ([]models.Phone, error)
	Create(ctx context.Context, in PhoneInput) (*models.Phone, error)
	Update(ctx context.Context, id int64, in PhoneInput) (*models.Phone, error)
	Delete(ctx context.Context, id int64) error
}

// Photos covers the Photo resource group.
type Photos interface {
	ListByPerson(ctx context.Context, personID int64) ([]models.Photo, error)
	Create(ctx context.Context, in PhotoInput) (*models.Photo, error)
	Delete(ctx context.Context, id int64) error
}

// Staff covers authentication and staff management.
type Staff interface {
	Login(ctx context.Context, creds Credentials) (*models.StaffSession, error)
	Register(ctx context.Context, in StaffInput) (*models.StaffSession, error)
	CheckEmail(ctx context.Context, email string) (taken bool, err error)
}

// History covers the append-only StaffSearchHistory resource group.
type History interface {
	List(ctx context.Context) ([]models.SearchHistoryEntry, error)
	Record(ctx context.Context, in HistoryInput) error
}

// Client bundles one typed client per backend resource group. Store
// slices depend on individual fields, so tests stub only what they use.
type Client struct {
	People    People
	Cars      Cars
	Addresses Addresses
	Crimes    Crimes
	Phones    Phones
	Photos    Photos
	Staff     Staff
	History   History
}

// New wires every resource client onto a shared transport.
func New(t *Transport) *Client {
	return &Client{
		People:    &peopleClient{t: t},
		Cars:      &carsClient{t: t},
		Addresses: &addressesClient{t: t},
		Crimes:    &crimesClient{t: t},
		Phones:    &phonesClient{t: t},
		Photos:    &photosClient{t: t},
		Staff:     &staffClient{t: t},
		History:   &historyClient{t: t},
	}
}

// Input payloads for create/update calls. The backend assigns ids and
// timestamps; the console never sends them.

type PersonInput struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Patronymic  string `json:"patronymic,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
}

type CarInput struct {
	PersonID     int64  `json:"personId"`
	Brand        string `json:"brand"`
	Model        string `json:"model,omitempty"`
	Color        string `json:"color,omitempty"`
	Year         int    `json:"year,omitempty"`
	LicensePlate string `json:"carNumber"`
	PhotoURL     string `json:"photoUrl,omitempty"`
}

type AddressInput struct {
	PersonID  int64    `json:"personId"`
	Region    string   `json:"region,omitempty"`
	City      string   `json:"city"`
	Street    string   `json:"street,omitempty"`
	House     string   `json:"house,omitempty"`
	Apartment string   `json:"apartment,omitempty"`
	PostCode  string   `json:"postCode,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type CrimeInput struct {
	PersonID       int64  `json:"personId"`
	Article        string `json:"article"`
	Sentence       string `json:"sentence,omitempty"`
	Detail         string `json:"detail,omitempty"`
	ConvictionDate string `json:"convictionDate,omitempty"`
	ReleaseDate    string `json:"releaseDate,omitempty"`
	PrisonID       int64  `json:"prisonId,omitempty"`
}

type PhoneInput struct {
	PersonID int64  `json:"personId"`
	Number   string `json:"phoneNumber"`
	Note     string `json:"note,omitempty"`
}

type PhotoInput struct {
	PersonID int64  `json:"personId"`
	URL      string `json:"url"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type StaffInput struct {
	Nickname string      `json:"nickname"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

type HistoryInput struct {
	Query      string `json:"query"`
	Filters    string `json:"filters,omitempty"`
	EntityType string `json:"entityType"`
}

// countResponse and checkResponse are the two tiny helper payload
// shapes shared by several resource groups.
type countResponse struct {
	Count int64 `json:"count"`
}

type checkResponse struct {
	Taken bool `json:"taken"`
}

func idPath(group string, id int64) string {
	return fmt.Sprintf("/%s/%d", group, id)
}
