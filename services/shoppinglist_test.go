package services

import (
	"context"
	"testing"

	"listeden-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateList_OwnerGetsAdminShare(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice", "alice@example.com")

	svc := &ShoppingListService{DB: db}
	list, err := svc.Create(ctx, models.CreateShoppingListRequest{Name: "Groceries"}, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, list.OwnerID)
	assert.False(t, list.Archived)

	var share models.ListShare
	require.NoError(t, db.Where("shopping_list_id = ? AND shared_user_id = ?", list.ID, alice.ID).First(&share).Error)
	assert.Equal(t, models.PermissionAdmin, share.PermissionLevel)

	lists, err := svc.GetAccessible(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "Groceries", lists[0].Name)
}

func TestCreateList_UnknownOwner(t *testing.T) {
	db := newTestDB(t)

	svc := &ShoppingListService{DB: db}
	_, err := svc.Create(context.Background(), models.CreateShoppingListRequest{Name: "Groceries"}, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAccessible_UnionOfOwnedAndShared(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	owned := createTestList(t, db, "Mine", bob.ID)
	shared := createTestList(t, db, "Alice's", alice.ID)
	shareList(t, db, shared.ID, bob.ID, models.PermissionViewer)
	createTestList(t, db, "Not mine", alice.ID)

	svc := &ShoppingListService{DB: db}
	lists, err := svc.GetAccessible(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, lists, 2)

	ids := []uuid.UUID{lists[0].ID, lists[1].ID}
	assert.Contains(t, ids, owned.ID)
	assert.Contains(t, ids, shared.ID)
}

func TestGetByID_RequiresViewAccess(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice", "alice@example.com")
	carol := createTestUser(t, db, "carol", "carol@example.com")
	list := createTestList(t, db, "Groceries", alice.ID)

	svc := &ShoppingListService{DB: db}

	got, err := svc.GetByID(ctx, list.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, list.ID, got.ID)

	_, err = svc.GetByID(ctx, list.ID, carol.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.GetByID(ctx, uuid.New(), alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateList_PatchSemantics(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice", "alice@example.com")
	list := createTestList(t, db, "Groceries", alice.ID)

	svc := &ShoppingListService{DB: db}

	// Only name patched; archived comes through as true.
	updated, err := svc.Update(ctx, list.ID, models.UpdateShoppingListRequest{
		Name:     strPtr("Weekly groceries"),
		Archived: true,
	}, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Weekly groceries", updated.Name)
	assert.True(t, updated.Archived)

	// A patch that omits archived resets it to false: the flag has no absent
	// representation and is always overwritten.
	updated, err = svc.Update(ctx, list.ID, models.UpdateShoppingListRequest{
		Description: strPtr("everything for the week"),
	}, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Weekly groceries", updated.Name)
	assert.Equal(t, "everything for the week", updated.Description)
	assert.False(t, updated.Archived)
}

func TestAccessibleListCacheKeys_CoverOwnerAndShareHolders(t *testing.T) {
	db := newTestDB(t)

	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")
	list := createTestList(t, db, "Groceries", alice.ID)
	shareList(t, db, list.ID, bob.ID, models.PermissionViewer)

	// Update and Delete invalidate exactly these keys, so a rename never
	// serves stale from a share holder's cached view.
	keys := accessibleListCacheKeys(db, list.ID, alice.ID)
	require.Len(t, keys, 2)
	assert.Contains(t, keys, accessibleListsKey(alice.ID))
	assert.Contains(t, keys, accessibleListsKey(bob.ID))
}

func TestUpdateList_RequiresAdmin(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")
	list := createTestList(t, db, "Groceries", alice.ID)
	shareList(t, db, list.ID, bob.ID, models.PermissionEditor)

	svc := &ShoppingListService{DB: db}
	_, err := svc.Update(ctx, list.ID, models.UpdateShoppingListRequest{Name: strPtr("hijacked")}, bob.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteList_CascadesItemsAndShares(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")
	list := createTestList(t, db, "Groceries", alice.ID)
	shareList(t, db, list.ID, bob.ID, models.PermissionEditor)

	itemSvc := &ListItemService{DB: db}
	_, err := itemSvc.AddItem(ctx, list.ID, models.AddListItemRequest{ProductName: "Milk", Quantity: 1}, alice.ID)
	require.NoError(t, err)

	svc := &ShoppingListService{DB: db}
	require.NoError(t, svc.Delete(ctx, list.ID, alice.ID))

	var itemCount, shareCount, listCount int64
	db.Model(&models.ListItem{}).Where("shopping_list_id = ?", list.ID).Count(&itemCount)
	db.Model(&models.ListShare{}).Where("shopping_list_id = ?", list.ID).Count(&shareCount)
	db.Model(&models.ShoppingList{}).Where("id = ?", list.ID).Count(&listCount)
	assert.Zero(t, itemCount)
	assert.Zero(t, shareCount)
	assert.Zero(t, listCount)
}

func TestDeleteList_RequiresAdmin(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")
	list := createTestList(t, db, "Groceries", alice.ID)
	shareList(t, db, list.ID, bob.ID, models.PermissionViewer)

	svc := &ShoppingListService{DB: db}
	err := svc.Delete(ctx, list.ID, bob.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(ctx, uuid.New(), alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
