package controllers

import (
	"errors"
	"net/http"

	"salonbook-backend/stores"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProfileController struct {
	users stores.UserStore
}

func NewProfileController(users stores.UserStore) *ProfileController {
	return &ProfileController{users: users}
}

// GetProfile reads the signed-in user's profile by the canonical id. The
// email column is a derived unique index, never a lookup key here.
func (ctrl *ProfileController) GetProfile(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{
		"name":      user.Name,
		"email":     user.Email,
		"role":      user.Role,
		"lastLogin": user.LastLogin,
	})
}
