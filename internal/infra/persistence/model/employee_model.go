package model

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeModel mirrors the 'employees' table.
// Dates are stored as plain dates; the time-of-day component is irrelevant
// to the seniority calculation.
type EmployeeModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FirstName       string    `gorm:"type:varchar(100);not null"`
	LastName        string    `gorm:"type:varchar(100);not null"`
	MothersLastName string    `gorm:"type:varchar(100)"`
	HireDate        time.Time `gorm:"type:date;not null"`
	BirthDate       time.Time `gorm:"type:date;not null"`
	NSS             string    `gorm:"type:varchar(11);unique;not null"`
	CURP            string    `gorm:"type:varchar(18);unique;not null"`
	Department      string    `gorm:"type:varchar(100);not null"`
	MonthlySalary   float64   `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmployeeModel) TableName() string {
	return "employees"
}
