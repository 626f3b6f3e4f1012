package services

import (
	"errors"
	"time"

	"github.com/campus-finds/api-go/models"
	"gorm.io/gorm"
)

// FinderAlert tells the reporter of a found item that someone has claimed
// it. Alerts surface the first time the finder views their reports.
type FinderAlert struct {
	ClaimID   uint      `json:"claim_id"`
	ItemID    uint      `json:"item_id"`
	ItemTitle string    `json:"item_title"`
	ClaimDate time.Time `json:"claim_date"`
}

func notifyUser(tx *gorm.DB, userID uint, message string) error {
	return tx.Create(&models.Notification{UserID: userID, Message: message}).Error
}

// ConsumeNotifications returns and clears the user's pending messages.
// Read and delete commit together, so each message is delivered once.
func ConsumeNotifications(db *gorm.DB, userID uint) ([]models.Notification, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var notifications []models.Notification
	if err := tx.Where("user_id = ?", userID).Order("id asc").Find(&notifications).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if len(notifications) > 0 {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Notification{}).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// PendingFinderAlerts collects new claims against the finder's found
// reports and flags them notified. Delivery is at-most-once: a claim whose
// alert has been returned is never returned again.
func PendingFinderAlerts(db *gorm.DB, finderID uint) ([]FinderAlert, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var claims []models.Claim
	err := tx.Joins("JOIN items ON items.id = claims.item_id").
		Where("items.user_id = ? AND items.type = ?", finderID, models.ItemFound).
		Where("claims.status = ? AND claims.finder_notified = ?", models.ClaimPendingApproval, false).
		Order("claims.id asc").
		Find(&claims).Error
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	alerts := make([]FinderAlert, 0, len(claims))
	for i := range claims {
		claim := &claims[i]

		var item models.Item
		if err := tx.First(&item, claim.ItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			tx.Rollback()
			return nil, err
		}

		if err := tx.Model(claim).Update("finder_notified", true).Error; err != nil {
			tx.Rollback()
			return nil, err
		}

		alerts = append(alerts, FinderAlert{
			ClaimID:   claim.ID,
			ItemID:    item.ID,
			ItemTitle: item.Title,
			ClaimDate: claim.ClaimDate,
		})
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return alerts, nil
}
