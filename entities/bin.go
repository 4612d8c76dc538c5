package entities

import (
	"github.com/google/uuid"
)

type Bin struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"lng"`
	Capacity  int       `json:"capacity"`
	FillLevel int       `json:"fill_level"`
	Status    string    `json:"status"` // active | full | maintenance

	Transactions []*Transaction `gorm:"foreignKey:BinID"`
	Timestamp
}
