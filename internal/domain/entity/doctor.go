package entity

import (
	"time"

	"github.com/google/uuid"
)

// Specialty represents a medical specialty offered by the clinic
type Specialty string

const (
	SpecialtyOrthopedics Specialty = "orthopedics"
	SpecialtyCardiology  Specialty = "cardiology"
	SpecialtyGynecology  Specialty = "gynecology"
	SpecialtyDermatology Specialty = "dermatology"
)

// Doctor represents a doctor who can be booked for appointments.
// Deactivating a doctor is a soft delete: the row stays, Active becomes false.
type Doctor struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	CRMNumber string    `gorm:"column:crm_number;type:varchar(50);uniqueIndex;not null" json:"crm_number"`
	Specialty Specialty `gorm:"type:varchar(50);not null;index" json:"specialty"`
	Active    bool      `gorm:"not null;default:true;index" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
