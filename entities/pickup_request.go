package entities

import (
	"time"

	"github.com/google/uuid"
)

type PickupRequest struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID            uuid.UUID  `json:"user_id"`
	ImageURL          string     `json:"image_url"`
	EWasteType        string     `json:"e_waste_type,omitempty"`
	Latitude          float64    `json:"latitude"`
	Longitude         float64    `json:"longitude"`
	AddressText       string     `json:"address_text,omitempty"`
	ContactNumber     string     `json:"contact_number"`
	PreferredDatetime time.Time  `json:"preferred_datetime"`
	Status            string     `json:"status"` // open | accepted | rejected
	PointsAwarded     *int       `json:"points_awarded,omitempty"`
	RejectionReason   string     `json:"rejection_reason,omitempty"`
	AdminID           *uuid.UUID `json:"admin_id,omitempty"`

	User  *User `gorm:"foreignKey:UserID"`
	Admin *User `gorm:"foreignKey:AdminID"`
	Timestamp
}
