package entities

import (
	"github.com/google/uuid"
)

type Transaction struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	BinID         uuid.UUID `json:"bin_id"`
	WasteType     string    `json:"waste_type"`
	Confidence    *float64  `json:"confidence,omitempty"`
	PointsAwarded int       `json:"points_awarded"`

	User *User `gorm:"foreignKey:UserID"`
	Bin  *Bin  `gorm:"foreignKey:BinID"`
	Timestamp
}
