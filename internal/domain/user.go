package domain

import "time"

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleCustomer UserRole = "customer"
)

// ValidRole reports whether r is one of the roles the system knows about.
func ValidRole(r string) bool {
	return r == string(RoleAdmin) || r == string(RoleCustomer)
}

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Email        string    `json:"email" gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password;size:255;not null"`
	Phone        string    `json:"phone" gorm:"size:20;not null"`
	Role         UserRole  `json:"role" gorm:"size:10;default:customer"`
	CreatedAt    time.Time `json:"created_at"`
}
