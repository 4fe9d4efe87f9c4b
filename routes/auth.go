package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-management-server/config"
	"hotel-management-server/database"
	"hotel-management-server/middleware"
	"hotel-management-server/models"
	"hotel-management-server/utils"
)

// LoginRequest represents the login form. Field names match the original
// login form (email, pw) and are accepted as form data or JSON.
type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"pw" json:"pw" binding:"required"`
}

// RegisterAuthRoutes registers authentication routes
func RegisterAuthRoutes(router *gin.Engine) {
	router.GET("/login", loginPage)
	router.POST("/login", middleware.AuthRateLimitMiddleware(), login)
	router.GET("/logout", logout)
	router.POST("/register", middleware.AuthRateLimitMiddleware(), register)
}

// loginPage is the GET side of /login for clients probing session state
func loginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"logged_in": false,
		"message":   "Submit email and pw to log in",
	})
}

// login authenticates a user and issues a session token
func login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		log.Printf("❌ Login failed for %s: %v", req.Email, err)
		c.JSON(http.StatusUnauthorized, gin.H{
			"logged_in": false,
			"error":     "Authentication failed",
			"message":   "Unable to login user " + req.Email,
		})
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{
			"logged_in": false,
			"error":     "Account deactivated",
			"message":   "Your account has been deactivated",
		})
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		log.Printf("❌ Invalid password for user %d", user.ID)
		c.JSON(http.StatusUnauthorized, gin.H{
			"logged_in": false,
			"error":     "Authentication failed",
			"message":   "Unable to login user " + req.Email,
		})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		log.Printf("❌ Failed to generate token for user %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Token generation failed",
			"message": "Failed to generate authentication token",
		})
		return
	}

	maxAge := config.AppConfig.JWT.ExpiryHours * 3600
	c.SetCookie(middleware.AuthCookieName, token, maxAge, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"logged_in":  true,
		"message":    "Login successful",
		"token":      token,
		"expires_in": maxAge,
		"user":       user,
	})
}

// logout clears the session cookie
func logout(c *gin.Context) {
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"logged_in": false,
		"message":   "Successfully logged out",
	})
}

// register creates a new customer account
func register(c *gin.Context) {
	var req models.UserCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	user, status, err := createUser(&req, models.RoleCustomer)
	if err != nil {
		c.JSON(status, gin.H{
			"error":   "Registration failed",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}
