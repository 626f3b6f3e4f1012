package models

import (
	"time"

	"gorm.io/gorm"
)

type ClaimStatus string

// Claims move PendingApproval -> Approved -> Collected, or
// PendingApproval -> Rejected. Rejected and Collected are terminal.
const (
	ClaimPendingApproval ClaimStatus = "pending_approval"
	ClaimApproved        ClaimStatus = "approved"
	ClaimRejected        ClaimStatus = "rejected"
	ClaimCollected       ClaimStatus = "collected"
)

type Claim struct {
	ID                 uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	ItemID             uint           `gorm:"not null;index" json:"item_id"`
	Item               Item           `json:"item,omitempty" gorm:"foreignKey:ItemID"`
	UserID             uint           `gorm:"not null;index" json:"user_id"`
	ClaimingUser       User           `json:"claiming_user,omitempty" gorm:"foreignKey:UserID"`
	Status             ClaimStatus    `gorm:"not null;type:varchar(20);default:'pending_approval';index" json:"status"`
	ClaimDate          time.Time      `gorm:"not null" json:"claim_date"`
	VerificationNotes  string         `gorm:"type:text" json:"verification_notes"`
	CollectionLocation string         `gorm:"type:varchar(200)" json:"collection_location"`
	CollectionDate     *time.Time     `json:"collection_date"`
	FinderNotified     bool           `gorm:"not null;default:false" json:"finder_notified"`
	// Set when the claim came from a confirmed match: links back to the
	// claimant's own lost report so both sides resolve together.
	OwnerLostItemID *uint `json:"owner_lost_item_id"`
}
