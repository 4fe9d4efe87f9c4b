package main

import (
	"log"
	"time"

	"github.com/google/uuid"

	"hotel-management-server/database"
	"hotel-management-server/models"
	"hotel-management-server/utils"
)

// seedData populates a development database with a hotel, rooms, users and a
// reservation with breakfast and service line items. Safe to re-run: it skips
// seeding when any user already exists.
func seedData() error {
	db := database.GetDB()

	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		log.Println("ℹ️ Database already seeded, skipping")
		return nil
	}

	hotel := models.Hotel{Name: "Grand Plaza", City: "Boston"}
	if err := db.Create(&hotel).Error; err != nil {
		return err
	}

	rooms := []models.Room{
		{HotelID: hotel.ID, RoomNo: 101, Type: "single", Rate: 89.00},
		{HotelID: hotel.ID, RoomNo: 102, Type: "double", Rate: 129.00},
		{HotelID: hotel.ID, RoomNo: 201, Type: "suite", Rate: 249.00},
	}
	if err := db.Create(&rooms).Error; err != nil {
		return err
	}

	users := []struct {
		email    string
		password string
		name     string
		role     string
	}{
		{"admin@hotel.local", "admin123", "Site Admin", models.RoleAdmin},
		{"manager@hotel.local", "manager123", "Hotel Manager", models.RoleManager},
		{"customer@hotel.local", "customer123", "Sample Customer", models.RoleCustomer},
	}

	var customer models.User
	for _, u := range users {
		hash, err := utils.HashPassword(u.password)
		if err != nil {
			return err
		}
		user := models.User{
			Email:        u.email,
			PasswordHash: hash,
			Name:         u.name,
			Role:         u.role,
			IsActive:     true,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		if u.role == models.RoleCustomer {
			customer = user
		}
	}

	now := time.Now()
	reservations := []models.Reservation{
		{
			InvoiceNo:   "1",
			CustomerID:  customer.ID,
			HotelID:     hotel.ID,
			RoomNo:      102,
			ResDate:     now.AddDate(0, 0, -14),
			InDate:      now.AddDate(0, 0, -7),
			OutDate:     now.AddDate(0, 0, -5),
			TotalAmount: 258.00,
		},
		{
			InvoiceNo:   uuid.NewString(),
			CustomerID:  customer.ID,
			HotelID:     hotel.ID,
			RoomNo:      201,
			ResDate:     now.AddDate(0, 0, -3),
			InDate:      now.AddDate(0, 0, 7),
			OutDate:     now.AddDate(0, 0, 10),
			TotalAmount: 747.00,
		},
	}
	if err := db.Create(&reservations).Error; err != nil {
		return err
	}

	breakfasts := []models.BreakfastItem{
		{InvoiceNo: "1", BreakfastType: "continental", HotelID: hotel.ID},
	}
	if err := db.Create(&breakfasts).Error; err != nil {
		return err
	}

	servicesOrdered := []models.ServiceItem{
		{InvoiceNo: "1", ServiceType: "laundry", HotelID: hotel.ID},
		{InvoiceNo: "1", ServiceType: "spa", HotelID: hotel.ID},
	}
	if err := db.Create(&servicesOrdered).Error; err != nil {
		return err
	}

	log.Println("✅ Seeded development data")
	return nil
}
