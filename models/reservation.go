package models

import "time"

// Reservation is keyed externally by its invoice number; the invoice number
// also correlates the breakfast and service line items ordered with the stay.
type Reservation struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	InvoiceNo   string    `json:"invoice_no" gorm:"size:64;uniqueIndex;not null"`
	CustomerID  uint      `json:"customer_id" gorm:"not null;index"`
	Customer    User      `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	HotelID     uint      `json:"hotel_id" gorm:"not null"`
	RoomNo      uint      `json:"room_no" gorm:"not null"`
	ResDate     time.Time `json:"res_date"`
	InDate      time.Time `json:"in_date"`
	OutDate     time.Time `json:"out_date"`
	TotalAmount float64   `json:"total_amount" gorm:"type:decimal(10,2)"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Reservation model
func (Reservation) TableName() string {
	return "reservations"
}

// ServiceItem is a service line item ordered on an invoice
type ServiceItem struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	InvoiceNo   string `json:"invoice_no" gorm:"size:64;index;not null"`
	ServiceType string `json:"service_type" gorm:"size:100;not null"`
	HotelID     uint   `json:"hotel_id" gorm:"not null"`
}

// TableName specifies the table name for the ServiceItem model
func (ServiceItem) TableName() string {
	return "service_items"
}

// BreakfastItem is a breakfast line item ordered on an invoice
type BreakfastItem struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	InvoiceNo     string `json:"invoice_no" gorm:"size:64;index;not null"`
	BreakfastType string `json:"breakfast_type" gorm:"size:100;not null"`
	HotelID       uint   `json:"hotel_id" gorm:"not null"`
}

// TableName specifies the table name for the BreakfastItem model
func (BreakfastItem) TableName() string {
	return "breakfast_items"
}
