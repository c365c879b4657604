package controllers

import (
	"errors"
	"net/http"
	"time"

	"salonbook-backend/models"
	"salonbook-backend/stores"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RegisterInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Name            string `json:"name"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	users stores.UserStore
}

func NewAuthController(users stores.UserStore) *AuthController {
	return &AuthController{users: users}
}

// Register validates the credentials locally before any store call, then
// creates the identity and profile as a single row. A partial write cannot
// leave an identity without a user record.
func (ctrl *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := utils.ValidateRegistration(input.Email, input.Password, input.ConfirmPassword); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := ctrl.users.ByEmail(c.Request.Context(), input.Email); err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(err, stores.ErrNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	newUser := models.User{
		Email:    input.Email,
		Password: input.Password, // hashed on create
		Name:     input.Name,
		Role:     string(models.RoleCustomer), // role is fixed at registration
	}

	if err := ctrl.users.Create(c.Request.Context(), &newUser); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"user": gin.H{
			"id":    newUser.ID,
			"email": newUser.Email,
			"name":  newUser.Name,
			"role":  newUser.Role,
		},
	})
}

// Login authenticates and resolves the principal's surface. A role value
// outside the known set is an explicit error, never a silent no-op.
func (ctrl *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	user, err := ctrl.users.ByEmail(c.Request.Context(), input.Email)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	role, err := models.ParseRole(user.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusForbidden, "Unknown role for this account")
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), user.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	// Best effort, login already succeeded
	ctrl.users.UpdateLastLogin(c.Request.Context(), user.ID, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"surface": role.Surface(),
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

// Me resolves the signed-in principal by the canonical key (id).
func (ctrl *AuthController) Me(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusInternalServerError, "User ID not found in context")
		return
	}

	id, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	user, err := ctrl.users.ByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User record not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	role, err := models.ParseRole(user.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusForbidden, "Unknown role for this account")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
		"surface": role.Surface(),
	})
}
