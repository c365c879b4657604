package controllers

import (
	"errors"
	"net/http"
	"strings"

	"salonbook-backend/libs"
	"salonbook-backend/models"
	"salonbook-backend/stores"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name     string `json:"service"`
	Prices   string `json:"prices"`
	ImageURL string `json:"imageUrl"`
}

type ServiceController struct {
	catalog stores.CatalogStore
	users   stores.UserStore
	blobs   libs.BlobStore
}

func NewServiceController(catalog stores.CatalogStore, users stores.UserStore, blobs libs.BlobStore) *ServiceController {
	return &ServiceController{catalog: catalog, users: users, blobs: blobs}
}

func serviceResponse(svc models.Service) gin.H {
	return gin.H{
		"id":              svc.ID,
		"service":         svc.Name,
		"prices":          svc.Prices,
		"pricesFormatted": utils.FormatPrice(svc.Prices),
		"imageUrl":        svc.ImageURL,
		"creatorName":     svc.CreatorName,
	}
}

func serviceListResponse(services []models.Service) []gin.H {
	out := make([]gin.H, 0, len(services))
	for _, svc := range services {
		out = append(out, serviceResponse(svc))
	}
	return out
}

// GetServices lists the catalog, optionally filtered by a name substring (?q=)
func (ctrl *ServiceController) GetServices(c *gin.Context) {
	var (
		services []models.Service
		err      error
	)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		services, err = ctrl.catalog.Search(c.Request.Context(), q)
	} else {
		services, err = ctrl.catalog.List(c.Request.Context())
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, serviceListResponse(services))
}

// GetService retrieves a specific service by ID
func (ctrl *ServiceController) GetService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	service, err := ctrl.catalog.ByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, serviceResponse(*service))
}

// CreateService creates a catalog entry from a multipart form. The optional
// image is uploaded to blob storage first; an upload failure aborts the
// create and no service record is written.
func (ctrl *ServiceController) CreateService(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("service"))
	prices := strings.TrimSpace(c.PostForm("prices"))

	if name == "" || prices == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Please fill in all fields")
		return
	}

	creatorName := ctrl.resolveCreatorName(c)

	imageURL := ""
	if header, err := c.FormFile("image"); err == nil {
		if ctrl.blobs == nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Image storage is not configured")
			return
		}
		localPath, err := libs.SaveUploadedFile(c, header, "./uploads")
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		imageURL, err = ctrl.blobs.Put(c.Request.Context(), "services", localPath)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "An error occurred while uploading the image")
			return
		}
	}

	service := models.Service{
		Name:        name,
		Prices:      prices,
		ImageURL:    imageURL,
		CreatorName: creatorName,
	}

	if err := ctrl.catalog.Create(c.Request.Context(), &service); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, serviceResponse(service))
}

// UpdateService updates a single service by its id
func (ctrl *ServiceController) UpdateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	upd, ok := bindServiceUpdate(c)
	if !ok {
		return
	}

	if err := ctrl.catalog.Update(c.Request.Context(), id, upd); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service updated successfully"})
}

// DeleteService deletes a single service by its id
func (ctrl *ServiceController) DeleteService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	if err := ctrl.catalog.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

// UpdateServiceByName applies the update to every service whose name matches.
//
// Deprecated: legacy name-keyed surface kept for existing clients. Duplicate
// names make this a broadcast write; prefer UpdateService.
func (ctrl *ServiceController) UpdateServiceByName(c *gin.Context) {
	name := c.Param("name")

	upd, ok := bindServiceUpdate(c)
	if !ok {
		return
	}

	affected, err := ctrl.catalog.UpdateByName(c.Request.Context(), name, upd)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Service updated successfully",
		"updated": affected,
	})
}

// DeleteServiceByName deletes every service whose name matches.
//
// Deprecated: legacy name-keyed surface, see UpdateServiceByName.
func (ctrl *ServiceController) DeleteServiceByName(c *gin.Context) {
	name := c.Param("name")

	affected, err := ctrl.catalog.DeleteByName(c.Request.Context(), name)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Service deleted successfully",
		"deleted": affected,
	})
}

func bindServiceUpdate(c *gin.Context) (stores.ServiceUpdate, bool) {
	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return stores.ServiceUpdate{}, false
	}

	name := strings.TrimSpace(input.Name)
	prices := strings.TrimSpace(input.Prices)
	if name == "" || prices == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Please fill in all fields")
		return stores.ServiceUpdate{}, false
	}

	return stores.ServiceUpdate{
		Name:     name,
		Prices:   prices,
		ImageURL: input.ImageURL,
	}, true
}

// resolveCreatorName denormalizes the authenticated admin's display name onto
// the service record at creation time.
func (ctrl *ServiceController) resolveCreatorName(c *gin.Context) string {
	userID, exists := c.Get("userId")
	if !exists {
		return ""
	}
	id, err := uuid.Parse(userID.(string))
	if err != nil {
		return ""
	}
	user, err := ctrl.users.ByID(c.Request.Context(), id)
	if err != nil {
		return ""
	}
	return user.Name
}
