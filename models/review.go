package models

import "time"

// Review categories as submitted by the client.
const (
	ReviewCategoryRoom      = 1
	ReviewCategoryBreakfast = 2
	ReviewCategoryService   = 3
)

// Review is a finalized feedback submission for a reservation invoice.
// Reviews are immutable once created.
type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Rating     int       `json:"rating" gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	Comment    string    `json:"comment" gorm:"type:text"`
	CustomerID uint      `json:"customer_id" gorm:"not null;index"`
	Customer   User      `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	InvoiceNo  string    `json:"invoice_no" gorm:"size:64;index;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for the Review model
func (Review) TableName() string {
	return "reviews"
}

// RoomReview links a review to the specific room that was rated
type RoomReview struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	ReviewID uint   `json:"review_id" gorm:"not null;index"`
	Review   Review `json:"review,omitempty" gorm:"foreignKey:ReviewID"`
	RoomNo   uint   `json:"room_no" gorm:"not null"`
	HotelID  uint   `json:"hotel_id" gorm:"not null"`
}

// TableName specifies the table name for the RoomReview model
func (RoomReview) TableName() string {
	return "room_reviews"
}

// BreakfastReview links a review to the breakfast type that was rated
type BreakfastReview struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	ReviewID      uint   `json:"review_id" gorm:"not null;index"`
	Review        Review `json:"review,omitempty" gorm:"foreignKey:ReviewID"`
	BreakfastType string `json:"breakfast_type" gorm:"size:100;not null"`
	HotelID       uint   `json:"hotel_id" gorm:"not null"`
}

// TableName specifies the table name for the BreakfastReview model
func (BreakfastReview) TableName() string {
	return "breakfast_reviews"
}

// ServiceReview links a review to the service type that was rated
type ServiceReview struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	ReviewID    uint   `json:"review_id" gorm:"not null;index"`
	Review      Review `json:"review,omitempty" gorm:"foreignKey:ReviewID"`
	ServiceType string `json:"service_type" gorm:"size:100;not null"`
	HotelID     uint   `json:"hotel_id" gorm:"not null"`
}

// TableName specifies the table name for the ServiceReview model
func (ServiceReview) TableName() string {
	return "service_reviews"
}

// RatingRequest carries one step of the feedback workflow. Field names match
// the client payload exactly.
type RatingRequest struct {
	RadioValue    int    `json:"radioValue" binding:"required,min=1,max=5"`
	ReviewType    int    `json:"ReviewType" binding:"required,min=1,max=3"`
	RoomType      string `json:"rootype"`
	BreakfastType string `json:"breakftype"`
	ServiceType   string `json:"servtype"`
}

// LoadReservationsRequest selects which review category the client is
// browsing reservations for.
type LoadReservationsRequest struct {
	RevType int `json:"RevType"`
}
