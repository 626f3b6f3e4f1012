package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ItemType string

const (
	ItemLost  ItemType = "lost"
	ItemFound ItemType = "found"
)

// Opposite returns the other report type, used when pairing a lost
// report with the found report that resolves it.
func (t ItemType) Opposite() ItemType {
	if t == ItemLost {
		return ItemFound
	}
	return ItemLost
}

type ItemStatus string

// Items move Pending -> UnderReview -> Claimed -> Resolved. The only
// backwards transition is UnderReview -> Pending when a claim is rejected.
const (
	ItemPending     ItemStatus = "pending"
	ItemUnderReview ItemStatus = "under_review"
	ItemClaimed     ItemStatus = "claimed"
	ItemResolved    ItemStatus = "resolved"
)

type Item struct {
	ID              uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	UserID          uint           `gorm:"not null" json:"user_id"`
	ReportingUser   User           `json:"reporting_user,omitempty" gorm:"foreignKey:UserID"`
	CategoryID      uint           `gorm:"not null" json:"category_id"`
	Category        Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Type            ItemType       `gorm:"not null;type:varchar(10);index" json:"type"`
	Status          ItemStatus     `gorm:"not null;type:varchar(20);default:'pending';index" json:"status"`
	Title           string         `gorm:"not null;type:varchar(200)" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	Location        string         `gorm:"type:varchar(200)" json:"location"`
	DateReported    time.Time      `gorm:"not null" json:"date_reported"`
	DateLostOrFound *time.Time     `json:"date_lost_or_found"`
	PhotoURLs       pq.StringArray `json:"photo_urls" gorm:"type:text[]"`
	Claims          []Claim        `json:"claims,omitempty" gorm:"foreignKey:ItemID"`
}

// EffectiveDate is the date used for temporal match scoring: the reported
// lost/found date when the user supplied one, otherwise the report time.
func (i *Item) EffectiveDate() time.Time {
	if i.DateLostOrFound != nil {
		return *i.DateLostOrFound
	}
	return i.DateReported
}
