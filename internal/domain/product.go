package domain

import "time"

type Product struct {
	ID          int64     `json:"id"`
	CompanyID   string    `json:"companyID"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	RatedSpeed  float64   `json:"ratedSpeed"` // units per minute
	CreatedAt   time.Time `json:"createdAt"`
}
