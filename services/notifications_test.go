package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-finds/api-go/models"
)

func TestConsumeNotificationsDeliversOnce(t *testing.T) {
	db := newTestDB(t)
	finder := createUser(t, db, "Finder")
	claimant := createUser(t, db, "Claimant")
	category := createCategory(t, db, "Electronics")

	found := createItem(t, db, itemSpec{
		user: finder, category: category, itemType: models.ItemFound,
		title: "Black Phone", location: "Library",
	})
	claim, err := CreateDirectClaim(db, found.ID, claimant.ID)
	require.NoError(t, err)
	_, err = ApproveClaim(db, claim.ID, "", "")
	require.NoError(t, err)

	notifications, err := ConsumeNotifications(db, claimant.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Message, "Black Phone")

	// The mailbox is cleared with the read.
	notifications, err = ConsumeNotifications(db, claimant.ID)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestConsumeNotificationsIsPerUser(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "Alice")
	bob := createUser(t, db, "Bob")

	require.NoError(t, db.Create(&models.Notification{UserID: alice.ID, Message: "for alice"}).Error)

	notifications, err := ConsumeNotifications(db, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, notifications)

	notifications, err = ConsumeNotifications(db, alice.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "for alice", notifications[0].Message)
}

func TestPendingFinderAlertsAtMostOnce(t *testing.T) {
	db := newTestDB(t)
	finder := createUser(t, db, "Finder")
	claimant := createUser(t, db, "Claimant")
	category := createCategory(t, db, "Keys")

	found := createItem(t, db, itemSpec{
		user: finder, category: category, itemType: models.ItemFound,
		title: "Key Ring", location: "Gate 1",
	})
	claim, err := CreateDirectClaim(db, found.ID, claimant.ID)
	require.NoError(t, err)

	alerts, err := PendingFinderAlerts(db, finder.ID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, claim.ID, alerts[0].ClaimID)
	assert.Equal(t, found.ID, alerts[0].ItemID)
	assert.Equal(t, "Key Ring", alerts[0].ItemTitle)

	assert.True(t, reloadClaim(t, db, claim.ID).FinderNotified)

	// Viewing reports again never replays the alert.
	alerts, err = PendingFinderAlerts(db, finder.ID)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestPendingFinderAlertsSkipOtherUsersAndStatuses(t *testing.T) {
	db := newTestDB(t)
	finder := createUser(t, db, "Finder")
	other := createUser(t, db, "Other")
	claimant := createUser(t, db, "Claimant")
	category := createCategory(t, db, "Bags")

	found := createItem(t, db, itemSpec{
		user: finder, category: category, itemType: models.ItemFound,
		title: "Backpack", location: "Gym",
	})
	claim, err := CreateDirectClaim(db, found.ID, claimant.ID)
	require.NoError(t, err)

	// A rejected claim no longer alerts the finder.
	_, err = RejectClaim(db, claim.ID, "")
	require.NoError(t, err)

	alerts, err := PendingFinderAlerts(db, finder.ID)
	require.NoError(t, err)
	assert.Empty(t, alerts)

	alerts, err = PendingFinderAlerts(db, other.ID)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}
