package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campus-finds/api-go/models"
	"github.com/campus-finds/api-go/services"
	"github.com/campus-finds/api-go/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// Dashboard godoc
// @Summary Item counters and the latest reports
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/dashboard [get]
func (ac *AdminController) Dashboard(c *gin.Context) {
	var totalLost, totalFound, totalResolved, totalPending int64

	ac.DB.Model(&models.Item{}).
		Where("type = ? AND status <> ?", models.ItemLost, models.ItemResolved).
		Count(&totalLost)
	ac.DB.Model(&models.Item{}).
		Where("type = ? AND status <> ?", models.ItemFound, models.ItemResolved).
		Count(&totalFound)
	ac.DB.Model(&models.Item{}).Where("status = ?", models.ItemResolved).Count(&totalResolved)
	ac.DB.Model(&models.Item{}).Where("status = ?", models.ItemPending).Count(&totalPending)

	var items []models.Item
	err := ac.DB.Preload("Category").Preload("ReportingUser").
		Order("date_reported desc").
		Limit(50).
		Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching items", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"counters": gin.H{
			"totalLost":     totalLost,
			"totalFound":    totalFound,
			"totalResolved": totalResolved,
			"totalPending":  totalPending,
		},
		"items": items,
	})
}

// ListClaims godoc
// @Summary All claims, newest first
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/claims [get]
func (ac *AdminController) ListClaims(c *gin.Context) {
	var claims []models.Claim
	err := ac.DB.Preload("Item").Preload("ClaimingUser").
		Order("claim_date desc").
		Find(&claims).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching claims", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "claims": claims})
}

// ListUsers godoc
// @Summary All registered users
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/users [get]
func (ac *AdminController) ListUsers(c *gin.Context) {
	var users []models.User
	if err := ac.DB.Order("full_name asc").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching users", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}

// ListReports godoc
// @Summary All reports, optionally filtered by type
// @Tags admin
// @Produce json
// @Param type query string false "lost or found"
// @Success 200 {object} map[string]interface{}
// @Router /admin/items [get]
func (ac *AdminController) ListReports(c *gin.Context) {
	q := ac.DB.Preload("Category").Preload("ReportingUser")

	switch itemType := c.Query("type"); itemType {
	case "":
	case string(models.ItemLost), string(models.ItemFound):
		q = q.Where("type = ?", itemType)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be lost or found", "success": false})
		return
	}

	var items []models.Item
	if err := q.Order("date_reported desc").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching items", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "items": items})
}

// SubmitFoundItem godoc
// @Summary Register a found item handed in at the desk
// @Tags admin
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Router /admin/items/found [post]
func (ac *AdminController) SubmitFoundItem(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context", "success": false})
		return
	}

	var input reportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var eventDate *time.Time
	if input.DateLostOrFound != "" {
		if parsed, err := time.Parse("2006-01-02", input.DateLostOrFound); err == nil {
			eventDate = &parsed
		}
	}

	item, err := services.CreateReport(ac.DB, services.CreateReportInput{
		UserID:          user.UserID,
		Type:            models.ItemFound,
		Title:           input.Title,
		Description:     input.Description,
		Location:        input.Location,
		CategoryID:      input.CategoryID,
		DateLostOrFound: eventDate,
		PhotoURLs:       input.PhotoURLs,
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	log.Printf("Admin %d registered found item %d: %s", user.UserID, item.ID, item.Title)
	c.JSON(http.StatusCreated, gin.H{"success": true, "item": item})
}

// ApproveClaim godoc
// @Summary Approve a pending claim
// @Tags admin
// @Accept json
// @Produce json
// @Param id path integer true "Claim ID"
// @Success 200 {object} map[string]interface{}
// @Router /admin/claims/{id}/approve [post]
func (ac *AdminController) ApproveClaim(c *gin.Context) {
	claimID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid claim ID", "success": false})
		return
	}

	var input struct {
		VerificationNotes  string `json:"verificationNotes"`
		CollectionLocation string `json:"collectionLocation"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	claim, err := services.ApproveClaim(ac.DB, uint(claimID), input.VerificationNotes, input.CollectionLocation)
	if err != nil {
		serviceError(c, err)
		return
	}

	log.Printf("Claim %d approved, collection at %s", claim.ID, claim.CollectionLocation)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Claim approved. The owner has been notified to collect the item.",
		"claim":   claim,
	})
}

// RejectClaim godoc
// @Summary Reject a pending claim
// @Tags admin
// @Accept json
// @Produce json
// @Param id path integer true "Claim ID"
// @Success 200 {object} map[string]interface{}
// @Router /admin/claims/{id}/reject [post]
func (ac *AdminController) RejectClaim(c *gin.Context) {
	claimID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid claim ID", "success": false})
		return
	}

	var input struct {
		VerificationNotes string `json:"verificationNotes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	claim, err := services.RejectClaim(ac.DB, uint(claimID), input.VerificationNotes)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Claim rejected", "claim": claim})
}

// MarkCollected godoc
// @Summary Record the physical handover of an approved claim
// @Tags admin
// @Produce json
// @Param id path integer true "Claim ID"
// @Success 200 {object} map[string]interface{}
// @Router /admin/claims/{id}/collect [post]
func (ac *AdminController) MarkCollected(c *gin.Context) {
	claimID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid claim ID", "success": false})
		return
	}

	claim, err := services.MarkCollected(ac.DB, uint(claimID))
	if err != nil {
		serviceError(c, err)
		return
	}

	log.Printf("Item from claim %d collected", claim.ID)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Item marked as collected. Matching reports have been resolved.",
		"claim":   claim,
	})
}
