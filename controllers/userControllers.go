package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/FlixonCoder/Ketpa-backend/authentication"
	"github.com/FlixonCoder/Ketpa-backend/models"
)

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Pet             string `json:"pet"`
}

// RegisterUser creates an account and returns a signed token.
func (s *Server) RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Missing Details")
		return
	}
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Password == "" || req.ConfirmPassword == "" || req.Pet == "" {
		fail(c, http.StatusBadRequest, "Missing Details")
		return
	}

	if !IsValidEmail(req.Email) {
		fail(c, http.StatusBadRequest, "Enter a valid email.")
		return
	}

	phone := FormatPhone(req.Phone)
	if !IsValidPhone(phone) {
		fail(c, http.StatusBadRequest, "Enter valid phone number.")
		return
	}

	if !IsStrongPassword(req.Password) {
		fail(c, http.StatusBadRequest, "Password must be at least 8 characters long, include uppercase, lowercase, and a number.")
		return
	}

	if req.Password != req.ConfirmPassword {
		fail(c, http.StatusBadRequest, "The passwords do not match.")
		return
	}

	var existing models.User
	if err := s.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		fail(c, http.StatusConflict, "Account already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		storageFail(c)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		storageFail(c)
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    phone,
		Password: string(hashed),
		Pet:      req.Pet,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		storageFail(c)
		return
	}

	token, err := authentication.GenerateUserToken(user.ID, user.Email, s.Config.JWTSecret)
	if err != nil {
		storageFail(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "message": "Account creation success."})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginUser verifies credentials and returns a signed token.
func (s *Server) LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Missing Details")
		return
	}

	var user models.User
	if err := s.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusUnauthorized, "User does not exist")
			return
		}
		storageFail(c)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := authentication.GenerateUserToken(user.ID, user.Email, s.Config.JWTSecret)
	if err != nil {
		storageFail(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "message": "Login success."})
}

// GetProfile returns the caller's profile with the credential stripped.
func (s *Server) GetProfile(c *gin.Context) {
	userID := c.GetUint(authentication.CtxUserID)

	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "User not found")
			return
		}
		storageFail(c)
		return
	}
	user.PrepareGive()

	c.JSON(http.StatusOK, gin.H{"success": true, "userData": user})
}

type UpdateProfileRequest struct {
	Name     string          `json:"name"`
	Phone    string          `json:"phone"`
	Address  *models.Address `json:"address"`
	DOB      string          `json:"dob"`
	Gender   string          `json:"gender"`
	AboutPet string          `json:"aboutPet"`
	Image    string          `json:"image"`
}

// UpdateProfile edits the caller's profile. The image field takes a public
// URL as-is; image hosting lives outside this service.
func (s *Server) UpdateProfile(c *gin.Context) {
	userID := c.GetUint(authentication.CtxUserID)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Data missing")
		return
	}
	if req.Name == "" || req.DOB == "" || req.Gender == "" || req.AboutPet == "" {
		fail(c, http.StatusBadRequest, "Data missing")
		return
	}

	updates := map[string]interface{}{
		"name":      req.Name,
		"dob":       req.DOB,
		"gender":    req.Gender,
		"about_pet": req.AboutPet,
	}

	// optional fields only overwrite what the request actually carried
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Phone != "" {
		phone := FormatPhone(req.Phone)
		if !IsValidPhone(phone) {
			fail(c, http.StatusBadRequest, "Enter valid phone number.")
			return
		}
		updates["phone"] = phone
	}
	if req.Image != "" {
		updates["image"] = req.Image
	}

	if err := s.DB.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		storageFail(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile Updated"})
}

// Logout acknowledges the client discarding its token.
func (s *Server) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "You are successfully logged out"})
}
