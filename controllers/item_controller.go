package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campus-finds/api-go/models"
	"github.com/campus-finds/api-go/services"
	"github.com/campus-finds/api-go/utils"
)

type ItemController struct {
	DB *gorm.DB
}

func NewItemController(db *gorm.DB) *ItemController {
	return &ItemController{DB: db}
}

type reportInput struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description"`
	Location        string   `json:"location"`
	CategoryID      *uint    `json:"categoryId"`
	DateLostOrFound string   `json:"dateLostOrFound"`
	PhotoURLs       []string `json:"photoUrls"`
}

type listItemsQuery struct {
	Type     string `form:"type" binding:"omitempty,oneof=lost found"`
	Status   string `form:"status" binding:"omitempty,oneof=pending under_review claimed resolved"`
	Category uint   `form:"categoryId"`
	Keyword  string `form:"q"`
	Page     int    `form:"page,default=1" binding:"min=1"`
	PageSize int    `form:"pageSize,default=20" binding:"min=1,max=100"`
}

// ReportLostItem godoc
// @Summary File a lost item report
// @Tags items
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Router /items/lost [post]
func (ic *ItemController) ReportLostItem(c *gin.Context) {
	ic.submitReport(c, models.ItemLost)
}

// ReportFoundItem godoc
// @Summary File a found item report
// @Tags items
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Router /items/found [post]
func (ic *ItemController) ReportFoundItem(c *gin.Context) {
	ic.submitReport(c, models.ItemFound)
}

func (ic *ItemController) submitReport(c *gin.Context, itemType models.ItemType) {
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

	item, err := services.CreateReport(ic.DB, services.CreateReportInput{
		UserID:          user.UserID,
		Type:            itemType,
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

	c.JSON(http.StatusCreated, gin.H{"success": true, "item": item})
}

// ListItems godoc
// @Summary Browse and search item reports
// @Tags items
// @Produce json
// @Param type query string false "lost or found"
// @Param status query string false "Item status filter"
// @Param categoryId query integer false "Category filter"
// @Param q query string false "Keyword over title and description"
// @Success 200 {object} StandardResponse
// @Router /items [get]
func (ic *ItemController) ListItems(c *gin.Context) {
	var query listItemsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	q := ic.DB.Model(&models.Item{}).Preload("Category")
	if query.Type != "" {
		q = q.Where("type = ?", query.Type)
	}
	if query.Status != "" {
		q = q.Where("status = ?", query.Status)
	}
	if query.Category != 0 {
		q = q.Where("category_id = ?", query.Category)
	}
	if query.Keyword != "" {
		pattern := "%" + query.Keyword + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching items", "success": false})
		return
	}

	var items []models.Item
	err := q.Order("date_reported desc").
		Offset((query.Page - 1) * query.PageSize).
		Limit(query.PageSize).
		Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching items", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    items,
		Pagination: &PaginationMeta{
			CurrentPage: query.Page,
			PageSize:    query.PageSize,
			TotalItems:  total,
			TotalPages:  int((total + int64(query.PageSize) - 1) / int64(query.PageSize)),
		},
	})
}

// GetItemDetail godoc
// @Summary Get a single item report
// @Tags items
// @Produce json
// @Param id path integer true "Item ID"
// @Success 200 {object} map[string]interface{}
// @Router /items/{id} [get]
func (ic *ItemController) GetItemDetail(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID", "success": false})
		return
	}

	var item models.Item
	if err := ic.DB.Preload("Category").Preload("ReportingUser").First(&item, itemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "item": item})
}

// MyReports godoc
// @Summary List the caller's reports with pending alerts
// @Description Returns the user's reports plus finder alerts and one-shot
// notifications. Alerts and notifications are consumed by this call.
// @Tags items
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /items/mine [get]
func (ic *ItemController) MyReports(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context", "success": false})
		return
	}

	var items []models.Item
	err := ic.DB.Preload("Category").
		Where("user_id = ?", user.UserID).
		Order("date_reported desc").
		Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching reports", "success": false})
		return
	}

	alerts, err := services.PendingFinderAlerts(ic.DB, user.UserID)
	if err != nil {
		serviceError(c, err)
		return
	}

	notifications, err := services.ConsumeNotifications(ic.DB, user.UserID)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"items":         items,
		"finderAlerts":  alerts,
		"notifications": notifications,
	})
}

// FindMatches godoc
// @Summary Rank found reports matching the caller's lost report
// @Tags matches
// @Produce json
// @Param id path integer true "Lost item ID"
// @Success 200 {object} map[string]interface{}
// @Router /items/{id}/matches [get]
func (ic *ItemController) FindMatches(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context", "success": false})
		return
	}

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID", "success": false})
		return
	}

	matches, err := services.FindMatches(ic.DB, uint(itemID), user.UserID)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "matches": matches})
}

// ConfirmMatch godoc
// @Summary Confirm a suggested match and file the resulting claim
// @Tags matches
// @Accept json
// @Produce json
// @Param id path integer true "Lost item ID"
// @Success 201 {object} map[string]interface{}
// @Router /items/{id}/matches/confirm [post]
func (ic *ItemController) ConfirmMatch(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context", "success": false})
		return
	}

	lostItemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID", "success": false})
		return
	}

	var input struct {
		FoundItemID uint `json:"foundItemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	claim, err := services.ConfirmMatch(ic.DB, uint(lostItemID), input.FoundItemID, user.UserID)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Match confirmed, claim submitted for review",
		"claim":   claim,
	})
}

// CreateClaim godoc
// @Summary File a claim against an item without a prior match
// @Tags claims
// @Accept json
// @Produce json
// @Param id path integer true "Item ID"
// @Success 201 {object} map[string]interface{}
// @Router /items/{id}/claims [post]
func (ic *ItemController) CreateClaim(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context", "success": false})
		return
	}

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID", "success": false})
		return
	}

	claim, err := services.CreateDirectClaim(ic.DB, uint(itemID), user.UserID)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Claim submitted for review",
		"claim":   claim,
	})
}

// MyClaims godoc
// @Summary List the caller's claims
// @Tags claims
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /claims/mine [get]
func (ic *ItemController) MyClaims(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context", "success": false})
		return
	}

	var claims []models.Claim
	err := ic.DB.Preload("Item").
		Where("user_id = ?", user.UserID).
		Order("claim_date desc").
		Find(&claims).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching claims", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "claims": claims})
}

// ListCategories godoc
// @Summary List item categories
// @Tags items
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /categories [get]
func (ic *ItemController) ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := ic.DB.Order("name asc").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching categories", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "categories": categories})
}
