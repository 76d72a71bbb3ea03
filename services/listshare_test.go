package services

import (
	"context"
	"testing"

	"listeden-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateShare_RequiresAdmin(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")
	carol := createTestUser(t, db, "carol", "carol@example.com")
	list := createTestList(t, db, "Groceries", alice.ID)
	shareList(t, db, list.ID, bob.ID, models.PermissionEditor)

	svc := &ListShareService{DB: db}
	_, err := svc.Create(ctx, list.ID, carol.ID, models.PermissionViewer, bob.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	share, err := svc.Create(ctx, list.ID, carol.ID, models.PermissionViewer, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PermissionViewer, share.PermissionLevel)
	assert.False(t, share.SharedAt.IsZero())
}

func TestCreateShare_RejectsOwnerSelfShare(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice", "alice@example.com")
	list := createTestList(t, db, "Groceries", alice.ID)

	// Drop the bootstrap share so the only rejection left is the owner rule.
	require.NoError(t, db.Where("shopping_list_id = ?", list.ID).Delete(&models.ListShare{}).Error)

	svc := &ListShareService{DB: db}
	_, err := svc.Create(ctx, list.ID, alice.ID, models.PermissionEditor, alice.ID)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCreateShare_RejectsDuplicate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")
	list := createTestList(t, db, "Groceries", alice.ID)

	svc := &ListShareService{DB: db}
	_, err := svc.Create(ctx, list.ID, bob.ID, models.PermissionViewer, alice.ID)
	require.NoError(t, err)

	_, err = svc.Create(ctx, list.ID, bob.ID, models.PermissionEditor, alice.ID)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCreateShare_UnknownLevelAndTargets(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")
	list := createTestList(t, db, "Groceries", alice.ID)

	svc := &ListShareService{DB: db}

	_, err := svc.Create(ctx, list.ID, bob.ID, models.PermissionLevel("SUPERUSER"), alice.ID)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = svc.Create(ctx, uuid.New(), bob.ID, models.PermissionViewer, alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Create(ctx, list.ID, uuid.New(), models.PermissionViewer, alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateShare_OverwritesLevel(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")
	list := createTestList(t, db, "Groceries", alice.ID)
	share := shareList(t, db, list.ID, bob.ID, models.PermissionViewer)

	svc := &ListShareService{DB: db}
	updated, err := svc.Update(ctx, share.ID, models.PermissionAdmin, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PermissionAdmin, updated.PermissionLevel)

	_, err = svc.Update(ctx, share.ID, models.PermissionViewer, bob.ID)
	require.NoError(t, err) // bob is ADMIN now, allowed to manage shares

	_, err = svc.Update(ctx, uuid.New(), models.PermissionViewer, alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteShare_OwnerShareIsProtected(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")
	list := createTestList(t, db, "Groceries", alice.ID)
	shareList(t, db, list.ID, bob.ID, models.PermissionAdmin)

	var ownerShare models.ListShare
	require.NoError(t, db.Where("shopping_list_id = ? AND shared_user_id = ?", list.ID, alice.ID).First(&ownerShare).Error)

	svc := &ListShareService{DB: db}

	// Even an ADMIN requester cannot delete the owner's share.
	err := svc.Delete(ctx, ownerShare.ID, bob.ID)
	assert.ErrorIs(t, err, ErrInvalid)

	err = svc.Delete(ctx, ownerShare.ID, alice.ID)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDeleteShare_RevokesAccess(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")
	list := createTestList(t, db, "Groceries", alice.ID)
	share := shareList(t, db, list.ID, bob.ID, models.PermissionEditor)

	svc := &ListShareService{DB: db}
	require.NoError(t, svc.Delete(ctx, share.ID, alice.ID))

	perms := &PermissionService{DB: db}
	assert.Equal(t, models.PermissionNone, perms.EffectiveLevel(ctx, list, bob.ID))

	err := svc.Delete(ctx, share.ID, alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListForList_IncludesOwnerBootstrapShare(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")
	list := createTestList(t, db, "Groceries", alice.ID)
	shareList(t, db, list.ID, bob.ID, models.PermissionViewer)

	svc := &ListShareService{DB: db}
	shares, err := svc.ListForList(ctx, list.ID)
	require.NoError(t, err)
	assert.Len(t, shares, 2)
}
