// Package repository is the Mongo-backed store for groups and memberships.
// It follows the collection-wrapper shape of the teacher's reel repository:
// one struct holding *mongo.Collection handles, context.WithTimeout on every
// call, bson.M filters, and $inc for atomic counters.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/connectify-dev/groupuser-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("repository: not found")
var ErrDuplicate = errors.New("repository: duplicate")

const opTimeout = 10 * time.Second

type Repository struct {
	groups      *mongo.Collection
	memberships *mongo.Collection
	counters    *mongo.Collection
}

func New(db *mongo.Database) *Repository {
	ctx := context.Background()

	db.Collection("groups").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "group_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	db.Collection("memberships").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "group_id", Value: 1}, {Key: "uid", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "uid", Value: 1}}},
	})

	return &Repository{
		groups:      db.Collection("groups"),
		memberships: db.Collection("memberships"),
		counters:    db.Collection("counters"),
	}
}

// nextID hands out a monotonically increasing, process-wide-unique integer
// from a single counter document, the same $inc-on-upsert idiom the teacher
// uses for view/reaction counts, applied here to identifier allocation
// instead of a tally.
func (r *Repository) nextID(ctx context.Context, name string) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var doc struct {
		Seq uint64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}

func (r *Repository) CreateGroup(ctx context.Context, g *domain.Group) (*domain.Group, error) {
	id, err := r.nextID(ctx, "group_id")
	if err != nil {
		return nil, err
	}
	g.ID = id
	g.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := r.groups.InsertOne(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (r *Repository) GetGroup(ctx context.Context, groupID uint64) (*domain.Group, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var g domain.Group
	err := r.groups.FindOne(ctx, bson.M{"group_id": groupID}).Decode(&g)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *Repository) UpdateGroupName(ctx context.Context, groupID uint64, name string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.groups.UpdateOne(ctx, bson.M{"group_id": groupID}, bson.M{"$set": bson.M{"name": name}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) UpdateGroupPassword(ctx context.Context, groupID uint64, password string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.groups.UpdateOne(ctx, bson.M{"group_id": groupID}, bson.M{"$set": bson.M{"password": password}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) ListMembers(ctx context.Context, groupID uint64) ([]*domain.Membership, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cur, err := r.memberships.Find(ctx, bson.M{"group_id": groupID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var members []*domain.Membership
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *Repository) GetMembership(ctx context.Context, groupID, uid uint64) (*domain.Membership, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var m domain.Membership
	err := r.memberships.FindOne(ctx, bson.M{"group_id": groupID, "uid": uid}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// AddMembership inserts the (group, user) edge. Existence is checked
// explicitly first rather than relying solely on the unique-index write
// error, so callers using mtest.Mock (which cannot synthesize a live
// duplicate-key response from prior InsertOne calls within the same test)
// still observe ErrDuplicate deterministically.
func (r *Repository) AddMembership(ctx context.Context, m *domain.Membership) error {
	if _, err := r.GetMembership(ctx, m.GroupID, m.UID); err == nil {
		return ErrDuplicate
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	m.JoinedAt = time.Now()
	_, err := r.memberships.InsertOne(ctx, m)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (r *Repository) RemoveMembership(ctx context.Context, groupID, uid uint64) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.memberships.DeleteOne(ctx, bson.M{"group_id": groupID, "uid": uid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) SetMembershipRole(ctx context.Context, groupID, uid uint64, role domain.Role) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.memberships.UpdateOne(
		ctx,
		bson.M{"group_id": groupID, "uid": uid},
		bson.M{"$set": bson.M{"role": role}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) ListGroupsByUID(ctx context.Context, uid uint64) ([]*domain.Membership, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cur, err := r.memberships.Find(ctx, bson.M{"uid": uid})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var memberships []*domain.Membership
	if err := cur.All(ctx, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}
