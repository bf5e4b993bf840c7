package repository

import (
	"context"
	"testing"

	"github.com/connectify-dev/groupuser-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestCreateGroup(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		repo := &Repository{groups: mt.Coll, counters: mt.Coll}

		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: bson.D{{Key: "_id", Value: "group_id"}, {Key: "seq", Value: int64(1)}}},
		})
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		g, err := repo.CreateGroup(context.Background(), &domain.Group{Name: "general", OwnerUID: 7})

		require.NoError(t, err)
		assert.Equal(t, uint64(1), g.ID)
		assert.False(t, g.CreatedAt.IsZero())
	})
}

func TestGetGroup_NotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("not found", func(mt *mtest.T) {
		repo := &Repository{groups: mt.Coll}

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.groups", mtest.FirstBatch))

		g, err := repo.GetGroup(context.Background(), 42)

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, g)
	})
}

func TestAddMembership_Duplicate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("already a member", func(mt *mtest.T) {
		repo := &Repository{memberships: mt.Coll}

		mt.AddMockResponses(mtest.CreateCursorResponse(1, "db.memberships", mtest.FirstBatch, bson.D{
			{Key: "group_id", Value: int64(1)},
			{Key: "uid", Value: int64(7)},
			{Key: "role", Value: int32(domain.RoleMember)},
		}))

		err := repo.AddMembership(context.Background(), &domain.Membership{GroupID: 1, UID: 7, Role: domain.RoleMember})

		assert.ErrorIs(t, err, ErrDuplicate)
	})
}

func TestRemoveMembership_NotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("not found", func(mt *mtest.T) {
		repo := &Repository{memberships: mt.Coll}

		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "n", Value: 0},
		})

		err := repo.RemoveMembership(context.Background(), 1, 99)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}
