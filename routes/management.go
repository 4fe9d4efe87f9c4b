package routes

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-management-server/database"
	"hotel-management-server/middleware"
	"hotel-management-server/models"
	"hotel-management-server/utils"
	ws "hotel-management-server/websocket"
)

// RegisterManagementRoutes registers the management dashboard routes
func RegisterManagementRoutes(router *gin.RouterGroup, hub *ws.Hub) {
	router.GET("/", managementIndex)
	router.GET("/reviews", listReviews)
	router.POST("/users", middleware.RequireRoles(models.RoleAdmin), createUserHandler)
	router.GET("/ws", func(c *gin.Context) {
		ws.ServeFeed(hub, c.Writer, c.Request, c.GetUint("user_id"), c.GetString("role"))
	})
}

// managementIndex reports the caller's role
func managementIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"logged_in": true,
		"role":      c.GetString("role"),
	})
}

// listReviews returns reviews for the management dashboard, newest first
func listReviews(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	rating, _ := strconv.Atoi(c.Query("rating"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	offset := (page - 1) * limit

	query := database.DB.Model(&models.Review{})
	if rating >= 1 && rating <= 5 {
		query = query.Where("rating = ?", rating)
	}

	var total int64
	query.Count(&total)

	var reviews []models.Review
	if err := query.
		Preload("Customer").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error; err != nil {
		log.Printf("❌ Failed to fetch reviews: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

// createUserHandler lets an admin create a user with an explicit role
func createUserHandler(c *gin.Context) {
	var req models.UserCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}

	user, status, err := createUser(&req, role)
	if err != nil {
		c.JSON(status, gin.H{
			"error":   "User creation failed",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
	})
}

// createUser persists a new user with a hashed password. Returns the HTTP
// status to report on failure.
func createUser(req *models.UserCreate, role string) (models.User, int, error) {
	var existing models.User
	if err := database.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return models.User{}, http.StatusConflict, errors.New("a user with this email already exists")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return models.User{}, http.StatusInternalServerError, errors.New("failed to process password")
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Name:         req.Name,
		Address:      req.Address,
		PhoneNo:      req.PhoneNo,
		Role:         role,
		IsActive:     true,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		log.Printf("❌ Failed to create user %s: %v", req.Email, err)
		return models.User{}, http.StatusInternalServerError, errors.New("failed to create user account")
	}

	return user, http.StatusCreated, nil
}
