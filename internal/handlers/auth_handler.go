package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/justconnect/justconnect-api/internal/config"
	"github.com/justconnect/justconnect-api/internal/httperr"
	"github.com/justconnect/justconnect-api/internal/httpresp"
	"github.com/justconnect/justconnect-api/internal/models"
	"github.com/justconnect/justconnect-api/internal/token"
	"github.com/justconnect/justconnect-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"omitempty,oneof=user professional"`

	// professional profile, required when role is "professional"
	ServiceID uint    `json:"service_id"`
	Headline  string  `json:"headline"`
	Bio       string  `json:"bio"`
	City      string  `json:"city"`
	Rate      float64 `json:"rate"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid registration payload")
		return
	}

	role := req.Role
	if role == "" {
		role = "user"
	}
	if role == "professional" && req.ServiceID == 0 {
		httperr.BadRequest(c, "service_id is required for professionals")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "email domain does not resolve")
		return
	}

	var count int64
	if err := h.db.Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		httperr.Internal(c, err, "failed to register")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, err, "failed to register")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         role,
	}

	// the user row and the professional profile land together or not at all
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		if role == "professional" {
			pro := models.Professional{
				UserID:    user.ID,
				ServiceID: req.ServiceID,
				Headline:  req.Headline,
				Bio:       req.Bio,
				City:      req.City,
				Rate:      req.Rate,
			}
			if err := tx.Create(&pro).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, err, "failed to register")
		return
	}

	signed, err := h.issueToken(&user)
	if err != nil {
		httperr.Internal(c, err, "failed to issue token")
		return
	}

	httpresp.Created(c, "registered", gin.H{
		"user":  userView(&user),
		"token": signed,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid login payload")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid credentials")
			return
		}
		httperr.Internal(c, err, "failed to log in")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid credentials")
		return
	}

	signed, err := h.issueToken(&user)
	if err != nil {
		httperr.Internal(c, err, "failed to issue token")
		return
	}

	httpresp.OK(c, "logged in", gin.H{
		"user":  userView(&user),
		"token": signed,
	})
}

func (h *AuthHandler) issueToken(user *models.User) (string, error) {
	return token.Sign(token.Claims{
		ID:    user.ID,
		Name:  user.Name,
		Role:  user.Role,
		Email: user.Email,
	}, h.config.JWTSecret, h.config.TokenTTL)
}

func userView(user *models.User) gin.H {
	return gin.H{
		"id":        user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"phone":     user.Phone,
		"role":      user.Role,
		"photo_url": user.PhotoURL,
	}
}
