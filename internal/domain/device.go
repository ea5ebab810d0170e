package domain

import "time"

type Device struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"companyID"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
