package routes

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotel-management-server/database"
	"hotel-management-server/middleware"
	"hotel-management-server/models"
	"hotel-management-server/services"
	ws "hotel-management-server/websocket"
)

// feedbackHub receives review-submission events for the management feed.
// Nil when no feed is wired (tests).
var feedbackHub *ws.Hub

// ErrNotOrdered is returned when the rated sub-type does not match any line
// item on the selected invoice.
var ErrNotOrdered = errors.New("review only for things that were actually ordered")

// RegisterFeedbackRoutes registers the feedback workflow routes
func RegisterFeedbackRoutes(router *gin.RouterGroup, hub *ws.Hub) {
	feedbackHub = hub

	router.GET("/", feedbackIndex)
	router.GET("/pick_res", pickReservation)
	router.POST("/rating", submitRating)
	router.POST("/load_Res", loadReservations)
	router.GET("/success", submitReview)
	router.POST("/success", submitReview)
}

// feedbackIndex reports the caller's role and any in-progress draft
func feedbackIndex(c *gin.Context) {
	userID := c.GetUint("user_id")

	resp := gin.H{
		"logged_in": true,
		"role":      c.GetString("role"),
	}
	if draft := services.Drafts.Get(userID); draft != nil {
		resp["draft"] = gin.H{
			"invoice_no":      draft.InvoiceNo,
			"active_category": draft.ActiveCategory,
		}
	}

	c.JSON(http.StatusOK, resp)
}

// pickReservation loads the selected reservation with its service and
// breakfast line items and records the invoice in the caller's draft.
func pickReservation(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	invoiceNo := c.Query("id")
	if invoiceNo == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing invoice number",
			"message": "Query parameter 'id' is required",
		})
		return
	}

	var reservations []models.Reservation
	if err := database.DB.
		Where("customer_id = ? AND invoice_no = ?", user.ID, invoiceNo).
		Find(&reservations).Error; err != nil {
		log.Printf("❌ Failed to load reservation %s: %v", invoiceNo, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reservation"})
		return
	}

	if len(reservations) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Reservation not found",
			"message": "Could not find a reservation for the specified invoice",
		})
		return
	}

	var serviceItems []models.ServiceItem
	if err := database.DB.Where("invoice_no = ?", invoiceNo).Find(&serviceItems).Error; err != nil {
		log.Printf("❌ Failed to load service items for %s: %v", invoiceNo, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load service items"})
		return
	}

	var breakfastItems []models.BreakfastItem
	if err := database.DB.Where("invoice_no = ?", invoiceNo).Find(&breakfastItems).Error; err != nil {
		log.Printf("❌ Failed to load breakfast items for %s: %v", invoiceNo, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load breakfast items"})
		return
	}

	res := reservations[0]
	services.Drafts.SetInvoice(user.ID, invoiceNo, res.RoomNo, res.HotelID)

	c.JSON(http.StatusOK, gin.H{
		"role":         c.GetString("role"),
		"reservations": reservations,
		"services":     serviceItems,
		"breakfasts":   breakfastItems,
	})
}

// submitRating stores one rating step into the caller's draft
func submitRating(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req models.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid rating data",
			"message": err.Error(),
		})
		return
	}

	services.Drafts.SetRating(userID, &req)

	// The client expects a list wrapping the category it just rated.
	c.JSON(http.StatusOK, [][]int{{req.ReviewType}})
}

// loadReservations lists the caller's reservations with the derived room type
func loadReservations(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.LoadReservationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	var reservations []models.Reservation
	if err := database.DB.Where("customer_id = ?", user.ID).Find(&reservations).Error; err != nil {
		log.Printf("❌ Failed to load reservations for customer %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reservations"})
		return
	}

	result := make([][]interface{}, 0, len(reservations))
	for _, res := range reservations {
		roomType := "none"
		var room models.Room
		if err := database.DB.
			Where("hotel_id = ? AND room_no = ?", res.HotelID, res.RoomNo).
			First(&room).Error; err == nil {
			roomType = room.Type
		}
		result = append(result, []interface{}{res.HotelID, roomType, res.RoomNo, res.InvoiceNo})
	}

	c.JSON(http.StatusOK, result)
}

// submitReview finalizes the active category of the caller's draft: it
// re-verifies the rated sub-type against the invoice's line items, then
// records the review and its target link in one transaction.
func submitReview(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	draft := services.Drafts.Get(user.ID)
	if draft == nil || draft.InvoiceNo == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "No feedback in progress",
			"message": "Select a reservation before submitting a review",
		})
		return
	}
	if draft.ActiveCategory == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "No rating recorded",
			"message": "Choose a rating before submitting a review",
		})
		return
	}

	rating := draft.Rating(draft.ActiveCategory)
	if rating == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "No rating recorded",
			"message": "Choose a rating before submitting a review",
		})
		return
	}

	var reservation models.Reservation
	if err := database.DB.
		Where("customer_id = ? AND invoice_no = ?", user.ID, draft.InvoiceNo).
		First(&reservation).Error; err != nil {
		log.Printf("❌ Failed to load reservation %s for review: %v", draft.InvoiceNo, err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Reservation not found",
			"message": "There was an error processing your request. Please try again",
		})
		return
	}

	comment, err := verifyOrdered(c, draft, &reservation)
	if err != nil {
		if errors.Is(err, ErrNotOrdered) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Not ordered",
				"message": ErrNotOrdered.Error(),
			})
			return
		}
		log.Printf("❌ Review verification failed for invoice %s: %v", draft.InvoiceNo, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Verification failed",
			"message": "There was an error processing your request. Please try again",
		})
		return
	}

	review := models.Review{
		Rating:     rating,
		Comment:    comment,
		CustomerID: user.ID,
		InvoiceNo:  draft.InvoiceNo,
	}

	// Review and link are written together so a partial failure cannot
	// leave an orphaned review. The link uses the id assigned by the
	// insert itself.
	if err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		return createReviewLink(tx, draft, review.ID)
	}); err != nil {
		log.Printf("❌ Failed to record review for invoice %s: %v", draft.InvoiceNo, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to record review",
			"message": "There was an error processing your request. Please try again",
		})
		return
	}

	category := draft.ActiveCategory
	services.Drafts.Clear(user.ID)

	if feedbackHub != nil {
		feedbackHub.Publish(&ws.Message{
			Type:      "review_submitted",
			Timestamp: time.Now(),
			Data: gin.H{
				"review_id":  review.ID,
				"invoice_no": review.InvoiceNo,
				"rating":     review.Rating,
				"category":   category,
			},
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Review recorded successfully",
		"review_id": review.ID,
		"review":    review,
	})
}

// verifyOrdered checks that the draft's sub-type matches a line item that
// actually belongs to the reservation, and reads the matching description
// field from the form.
func verifyOrdered(c *gin.Context, draft *services.Draft, reservation *models.Reservation) (string, error) {
	switch draft.ActiveCategory {
	case models.ReviewCategoryRoom:
		var rooms []models.Room
		if err := database.DB.
			Where("hotel_id = ? AND room_no = ?", reservation.HotelID, reservation.RoomNo).
			Find(&rooms).Error; err != nil {
			return "", err
		}
		for _, room := range rooms {
			if room.Type == draft.RoomType {
				return c.PostForm("description"), nil
			}
		}

	case models.ReviewCategoryBreakfast:
		var items []models.BreakfastItem
		if err := database.DB.
			Where("invoice_no = ?", reservation.InvoiceNo).
			Find(&items).Error; err != nil {
			return "", err
		}
		for _, item := range items {
			if item.BreakfastType == draft.BreakfastType {
				return c.PostForm("description2"), nil
			}
		}

	case models.ReviewCategoryService:
		var items []models.ServiceItem
		if err := database.DB.
			Where("invoice_no = ?", reservation.InvoiceNo).
			Find(&items).Error; err != nil {
			return "", err
		}
		for _, item := range items {
			if item.ServiceType == draft.ServiceType {
				return c.PostForm("description3"), nil
			}
		}
	}

	return "", ErrNotOrdered
}

// createReviewLink inserts the link row matching the draft's active category
func createReviewLink(tx *gorm.DB, draft *services.Draft, reviewID uint) error {
	switch draft.ActiveCategory {
	case models.ReviewCategoryRoom:
		return tx.Create(&models.RoomReview{
			ReviewID: reviewID,
			RoomNo:   draft.RoomNo,
			HotelID:  draft.HotelID,
		}).Error
	case models.ReviewCategoryBreakfast:
		return tx.Create(&models.BreakfastReview{
			ReviewID:      reviewID,
			BreakfastType: draft.BreakfastType,
			HotelID:       draft.HotelID,
		}).Error
	case models.ReviewCategoryService:
		return tx.Create(&models.ServiceReview{
			ReviewID:    reviewID,
			ServiceType: draft.ServiceType,
			HotelID:     draft.HotelID,
		}).Error
	}
	return ErrNotOrdered
}
