package domain

import "time"

type CompanyStatus string

const (
	CompanyActive   CompanyStatus = "active"
	CompanyDisabled CompanyStatus = "disabled"
)

type Company struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	CountryCode string        `json:"countryCode"`
	Status      CompanyStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	Version     int32         `json:"-"`
}
