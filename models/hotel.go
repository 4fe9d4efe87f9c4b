package models

import "time"

type Hotel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	City      string    `json:"city" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Rooms []Room `json:"rooms,omitempty" gorm:"foreignKey:HotelID"`
}

// TableName specifies the table name for the Hotel model
func (Hotel) TableName() string {
	return "hotels"
}

// Room is identified by its number within a hotel.
type Room struct {
	HotelID uint    `json:"hotel_id" gorm:"primaryKey;autoIncrement:false"`
	RoomNo  uint    `json:"room_no" gorm:"primaryKey;autoIncrement:false"`
	Type    string  `json:"type" gorm:"size:100;not null"`
	Rate    float64 `json:"rate" gorm:"type:decimal(10,2)"`
}

// TableName specifies the table name for the Room model
func (Room) TableName() string {
	return "rooms"
}
