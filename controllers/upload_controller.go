package controllers

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campus-finds/api-go/config"
	"github.com/campus-finds/api-go/utils"
	"gorm.io/gorm"
)

// UploadController issues presigned R2 URLs so clients upload report photos
// directly to object storage. The API never proxies image bytes.
type UploadController struct {
	DB       *gorm.DB
	R2Client *s3.Client
	R2Config *config.R2Config
}

type PhotoUploadRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	FileSize    int64  `json:"fileSize" binding:"required"`
}

type PhotoUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expiresIn"`
}

type MultiplePhotoUploadRequest struct {
	Files []PhotoUploadRequest `json:"files" binding:"required,dive"`
}

// MaxPhotosPerReport bounds a single presign request.
const MaxPhotosPerReport = 5

func NewUploadController(db *gorm.DB) *UploadController {
	r2Config := config.GetR2Config()

	r2Client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r2Config.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			r2Config.AccessKeyID,
			r2Config.SecretAccessKey,
			"",
		),
		Region: r2Config.Region,
	})

	return &UploadController{
		DB:       db,
		R2Client: r2Client,
		R2Config: r2Config,
	}
}

// GetPhotoUploadURL godoc
// @Summary Get a presigned URL for one report photo
// @Tags uploads
// @Accept json
// @Produce json
// @Success 200 {object} StandardResponse
// @Router /uploads/photos [post]
func (uc *UploadController) GetPhotoUploadURL(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context", "success": false})
		return
	}

	var req PhotoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	if !isValidPhoto(req.ContentType, req.FileSize) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid photo type or size", "success": false})
		return
	}

	key := uc.generatePhotoKey(user.UserID, req.FileName)
	presignedURL, err := uc.createPresignedURL(c.Request.Context(), key, req.ContentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload URL", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: PhotoUploadResponse{
			UploadURL: presignedURL,
			FileURL:   fmt.Sprintf("%s/%s", uc.R2Config.PublicURL, key),
			Key:       key,
			ExpiresIn: 3600,
		},
		Message: "Presigned URL generated successfully",
	})
}

// GetMultiplePhotoUploadURLs godoc
// @Summary Get presigned URLs for several report photos at once
// @Tags uploads
// @Accept json
// @Produce json
// @Success 200 {object} StandardResponse
// @Router /uploads/photos/batch [post]
func (uc *UploadController) GetMultiplePhotoUploadURLs(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context", "success": false})
		return
	}

	var req MultiplePhotoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	if len(req.Files) > MaxPhotosPerReport {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   fmt.Sprintf("Maximum %d photos allowed per report", MaxPhotosPerReport),
			"success": false,
		})
		return
	}

	responses := make([]PhotoUploadResponse, 0, len(req.Files))
	for _, fileReq := range req.Files {
		if !isValidPhoto(fileReq.ContentType, fileReq.FileSize) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   fmt.Sprintf("Invalid photo type or size for %s", fileReq.FileName),
				"success": false,
			})
			return
		}

		key := uc.generatePhotoKey(user.UserID, fileReq.FileName)
		presignedURL, err := uc.createPresignedURL(c.Request.Context(), key, fileReq.ContentType)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   fmt.Sprintf("Failed to create upload URL for %s", fileReq.FileName),
				"success": false,
			})
			return
		}

		responses = append(responses, PhotoUploadResponse{
			UploadURL: presignedURL,
			FileURL:   fmt.Sprintf("%s/%s", uc.R2Config.PublicURL, key),
			Key:       key,
			ExpiresIn: 3600,
		})
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    gin.H{"files": responses},
		Message: "Presigned URLs generated successfully",
	})
}

// DeletePhoto godoc
// @Summary Delete an uploaded report photo
// @Tags uploads
// @Produce json
// @Param key path string true "Object key"
// @Success 200 {object} StandardResponse
// @Router /uploads/photos/{key} [delete]
func (uc *UploadController) DeletePhoto(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context", "success": false})
		return
	}

	key := c.Param("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File key is required", "success": false})
		return
	}

	if !verifyPhotoOwnership(key, user.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied", "success": false})
		return
	}

	input := &s3.DeleteObjectInput{
		Bucket: aws.String(uc.R2Config.BucketName),
		Key:    aws.String(key),
	}
	if _, err := uc.R2Client.DeleteObject(c.Request.Context(), input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "File deleted successfully"})
}

func isValidPhoto(contentType string, fileSize int64) bool {
	validTypes := []string{"image/jpeg", "image/jpg", "image/png", "image/webp", "image/heic"}
	valid := false
	for _, t := range validTypes {
		if contentType == t {
			valid = true
			break
		}
	}
	if !valid {
		return false
	}
	return fileSize <= 10*1024*1024 // 10MB
}

func (uc *UploadController) generatePhotoKey(userID uint, fileName string) string {
	ext := filepath.Ext(fileName)
	return fmt.Sprintf("items/photos/%d/%d_%s%s", userID, time.Now().Unix(), uuid.New().String(), ext)
}

// verifyPhotoOwnership extracts the user id from the key format
// items/photos/{userID}/{timestamp}_{uuid}.{ext}.
func verifyPhotoOwnership(key string, userID uint) bool {
	parts := strings.Split(key, "/")
	if len(parts) < 3 {
		return false
	}
	return fmt.Sprintf("%d", userID) == parts[2]
}

func (uc *UploadController) createPresignedURL(ctx context.Context, key, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(uc.R2Config.BucketName),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	presigner := s3.NewPresignClient(uc.R2Client)
	req, err := presigner.PresignPutObject(ctx, input, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour
	})
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
