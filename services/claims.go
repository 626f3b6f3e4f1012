package services

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/campus-finds/api-go/models"
	"gorm.io/gorm"
)

// FallbackCollectionLocation is used when an approval neither supplies a
// location nor finds one in DEFAULT_COLLECTION_LOCATION.
const FallbackCollectionLocation = "Security Office, Main Gate"

func defaultCollectionLocation() string {
	if loc := os.Getenv("DEFAULT_COLLECTION_LOCATION"); loc != "" {
		return loc
	}
	return FallbackCollectionLocation
}

// CreateDirectClaim files a claim against a pending report without a prior
// match search. The claim insert and the item's move to under-review commit
// together or not at all.
func CreateDirectClaim(db *gorm.DB, itemID, claimantID uint) (*models.Claim, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var item models.Item
	if err := forUpdate(tx).First(&item, itemID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item %d: %w", itemID, ErrNotFound)
		}
		return nil, err
	}

	if item.Status != models.ItemPending {
		tx.Rollback()
		return nil, fmt.Errorf("item %d is %s: %w", itemID, item.Status, ErrInvalidState)
	}
	if item.UserID == claimantID {
		tx.Rollback()
		return nil, fmt.Errorf("item %d was reported by the claimant: %w", itemID, ErrSelfClaim)
	}

	claim := models.Claim{
		ItemID:    item.ID,
		UserID:    claimantID,
		Status:    models.ClaimPendingApproval,
		ClaimDate: time.Now().UTC(),
	}
	if err := tx.Create(&claim).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(&item).Update("status", models.ItemUnderReview).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &claim, nil
}

// ConfirmMatch turns a ranked match into a claim against the found report.
// Unlike a direct claim it moves both reports to under-review and records
// the lost report's id on the claim so collection resolves the pair.
func ConfirmMatch(db *gorm.DB, lostItemID, foundItemID, claimantID uint) (*models.Claim, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var lostItem models.Item
	if err := forUpdate(tx).First(&lostItem, lostItemID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("lost item %d: %w", lostItemID, ErrNotFound)
		}
		return nil, err
	}

	var foundItem models.Item
	if err := forUpdate(tx).First(&foundItem, foundItemID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("found item %d: %w", foundItemID, ErrNotFound)
		}
		return nil, err
	}

	if lostItem.UserID != claimantID {
		tx.Rollback()
		return nil, fmt.Errorf("lost item %d belongs to another user: %w", lostItemID, ErrNotAuthorized)
	}
	if foundItem.UserID == claimantID {
		tx.Rollback()
		return nil, fmt.Errorf("found item %d was reported by the claimant: %w", foundItemID, ErrSelfClaim)
	}
	if lostItem.Type == foundItem.Type {
		tx.Rollback()
		return nil, fmt.Errorf("cannot match two %s reports: %w", lostItem.Type, ErrInvalidState)
	}
	if lostItem.Status != models.ItemPending || foundItem.Status != models.ItemPending {
		tx.Rollback()
		return nil, fmt.Errorf("both reports must be pending to confirm a match: %w", ErrInvalidState)
	}

	claim := models.Claim{
		ItemID:            foundItem.ID,
		UserID:            claimantID,
		Status:            models.ClaimPendingApproval,
		ClaimDate:         time.Now().UTC(),
		OwnerLostItemID:   &lostItem.ID,
		VerificationNotes: fmt.Sprintf("Claim from confirmed match with lost report #%d (%s)", lostItem.ID, lostItem.Title),
	}
	if err := tx.Create(&claim).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(&foundItem).Update("status", models.ItemUnderReview).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Model(&lostItem).Update("status", models.ItemUnderReview).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &claim, nil
}

// ApproveClaim marks a pending claim approved, stamps the collection
// location and moves the item to claimed. The owner is notified where to
// pick the item up.
func ApproveClaim(db *gorm.DB, claimID uint, notes, location string) (*models.Claim, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var claim models.Claim
	if err := forUpdate(tx).First(&claim, claimID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("claim %d: %w", claimID, ErrNotFound)
		}
		return nil, err
	}

	if claim.Status != models.ClaimPendingApproval {
		tx.Rollback()
		return nil, fmt.Errorf("claim %d is %s: %w", claimID, claim.Status, ErrInvalidState)
	}

	var item models.Item
	if err := forUpdate(tx).First(&item, claim.ItemID).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if location == "" {
		location = defaultCollectionLocation()
	}

	claim.Status = models.ClaimApproved
	claim.VerificationNotes = notes
	claim.CollectionLocation = location
	claim.ClaimDate = time.Now().UTC()
	if err := tx.Save(&claim).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(&item).Update("status", models.ItemClaimed).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	message := fmt.Sprintf("Your claim for '%s' was approved. The item is ready for collection at %s. Please bring your ID for verification.",
		item.Title, claim.CollectionLocation)
	if err := notifyUser(tx, claim.UserID, message); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &claim, nil
}

// RejectClaim marks a pending claim rejected. An item still under review
// returns to the matching pool; any other item status is left alone, since
// a later claim may already be driving it.
//
// A claim that came from a confirmed match does not revert the paired lost
// report here, matching the long-standing behavior of this flow.
func RejectClaim(db *gorm.DB, claimID uint, notes string) (*models.Claim, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var claim models.Claim
	if err := forUpdate(tx).First(&claim, claimID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("claim %d: %w", claimID, ErrNotFound)
		}
		return nil, err
	}

	if claim.Status != models.ClaimPendingApproval {
		tx.Rollback()
		return nil, fmt.Errorf("claim %d is %s: %w", claimID, claim.Status, ErrInvalidState)
	}

	claim.Status = models.ClaimRejected
	claim.VerificationNotes = notes
	claim.ClaimDate = time.Now().UTC()
	if err := tx.Save(&claim).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	var item models.Item
	if err := forUpdate(tx).First(&item, claim.ItemID).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if item.Status == models.ItemUnderReview {
		if err := tx.Model(&item).Update("status", models.ItemPending).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &claim, nil
}

// MarkCollected records the physical handover of an approved claim's item
// and resolves the report, plus the paired lost report when one is linked.
// Direct claims carry no link, so pairing falls back to a title-match
// search over the claimant's opposite-type reports; the heuristic is
// best-effort and may find nothing.
func MarkCollected(db *gorm.DB, claimID uint) (*models.Claim, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var claim models.Claim
	if err := forUpdate(tx).First(&claim, claimID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("claim %d: %w", claimID, ErrNotFound)
		}
		return nil, err
	}

	if claim.Status != models.ClaimApproved {
		tx.Rollback()
		return nil, fmt.Errorf("claim %d is %s, must be approved: %w", claimID, claim.Status, ErrInvalidState)
	}

	var item models.Item
	if err := forUpdate(tx).First(&item, claim.ItemID).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	now := time.Now().UTC()
	claim.Status = models.ClaimCollected
	claim.CollectionDate = &now
	if err := tx.Save(&claim).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(&item).Update("status", models.ItemResolved).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	paired, err := findPairedItem(tx, &claim, &item)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if paired != nil {
		if err := tx.Model(paired).Update("status", models.ItemResolved).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &claim, nil
}

// findPairedItem locates the other half of a lost/found pair. The strong
// path follows the OwnerLostItemID link recorded by ConfirmMatch. Without a
// link it searches the claimant's opposite-type reports, claimed or under
// review, for a case-insensitive title match.
func findPairedItem(tx *gorm.DB, claim *models.Claim, item *models.Item) (*models.Item, error) {
	if claim.OwnerLostItemID != nil {
		var paired models.Item
		err := forUpdate(tx).First(&paired, *claim.OwnerLostItemID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return &paired, nil
	}

	var paired models.Item
	err := forUpdate(tx).
		Where("user_id = ? AND type = ? AND status IN ? AND lower(title) = lower(?)",
			claim.UserID, item.Type.Opposite(),
			[]models.ItemStatus{models.ItemClaimed, models.ItemUnderReview},
			strings.TrimSpace(item.Title)).
		Order("id asc").
		First(&paired).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &paired, nil
}
