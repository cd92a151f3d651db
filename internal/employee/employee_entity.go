package employee

import (
	"time"

	"github.com/google/uuid"
)

// Employee is the HR-side record. This service never writes it; the HR
// platform owns the row and invokes the sync with a tenant (and optionally
// an employee) to push it downstream.
type Employee struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID   uuid.UUID `gorm:"type:uuid;index"`
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Position   string
	Department string
	HireDate   time.Time
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
