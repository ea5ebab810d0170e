package domain

import (
	"time"
)

type Role string

const (
	RoleGlobalAdmin  Role = "global_admin"
	RoleCompanyAdmin Role = "company_admin"
	RoleViewOnly     Role = "view_only_user"
)

type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	FullName     string     `json:"fullName"`
	Email        string     `json:"email"`
	CompanyID    *string    `json:"companyID"` // nil for the global admin
	Role         Role       `json:"role"`
	IsActive     bool       `json:"isActive"`
	LastLogin    *time.Time `json:"lastLogin"`
	CreatedAt    time.Time  `json:"createdAt"`
	Version      int32      `json:"-"`
}
