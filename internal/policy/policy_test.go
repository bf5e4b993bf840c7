package policy

import (
	"context"
	"testing"

	"github.com/connectify-dev/groupuser-service/internal/domain"
	"github.com/connectify-dev/groupuser-service/internal/grouplock"
	"github.com/connectify-dev/groupuser-service/internal/repository"
	"github.com/connectify-dev/groupuser-service/internal/statuscode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	nextGroupID uint64
	groups      map[uint64]*domain.Group
	memberships map[uint64]map[uint64]*domain.Membership
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		groups:      make(map[uint64]*domain.Group),
		memberships: make(map[uint64]map[uint64]*domain.Membership),
	}
}

func (f *fakeRepo) CreateGroup(ctx context.Context, g *domain.Group) (*domain.Group, error) {
	f.nextGroupID++
	g.ID = f.nextGroupID
	f.groups[g.ID] = g
	f.memberships[g.ID] = make(map[uint64]*domain.Membership)
	return g, nil
}

func (f *fakeRepo) GetGroup(ctx context.Context, groupID uint64) (*domain.Group, error) {
	g, ok := f.groups[groupID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return g, nil
}

func (f *fakeRepo) UpdateGroupName(ctx context.Context, groupID uint64, name string) error {
	g, ok := f.groups[groupID]
	if !ok {
		return repository.ErrNotFound
	}
	g.Name = name
	return nil
}

func (f *fakeRepo) UpdateGroupPassword(ctx context.Context, groupID uint64, password string) error {
	g, ok := f.groups[groupID]
	if !ok {
		return repository.ErrNotFound
	}
	g.Password = password
	return nil
}

func (f *fakeRepo) ListMembers(ctx context.Context, groupID uint64) ([]*domain.Membership, error) {
	var out []*domain.Membership
	for _, m := range f.memberships[groupID] {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeRepo) GetMembership(ctx context.Context, groupID, uid uint64) (*domain.Membership, error) {
	m, ok := f.memberships[groupID][uid]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return m, nil
}

func (f *fakeRepo) AddMembership(ctx context.Context, m *domain.Membership) error {
	if _, ok := f.memberships[m.GroupID][m.UID]; ok {
		return repository.ErrDuplicate
	}
	f.memberships[m.GroupID][m.UID] = m
	return nil
}

func (f *fakeRepo) RemoveMembership(ctx context.Context, groupID, uid uint64) error {
	if _, ok := f.memberships[groupID][uid]; !ok {
		return repository.ErrNotFound
	}
	delete(f.memberships[groupID], uid)
	return nil
}

func (f *fakeRepo) SetMembershipRole(ctx context.Context, groupID, uid uint64, role domain.Role) error {
	m, ok := f.memberships[groupID][uid]
	if !ok {
		return repository.ErrNotFound
	}
	m.Role = role
	return nil
}

func (f *fakeRepo) ListGroupsByUID(ctx context.Context, uid uint64) ([]*domain.Membership, error) {
	var out []*domain.Membership
	for _, byUID := range f.memberships {
		if m, ok := byUID[uid]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeResolver struct {
	usernameToUID map[string]uint64
	uidToUsername map[uint64]string
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{usernameToUID: make(map[string]uint64), uidToUsername: make(map[uint64]string)}
}

func (f *fakeResolver) register(username string, uid uint64) {
	f.usernameToUID[username] = uid
	f.uidToUsername[uid] = username
}

func (f *fakeResolver) ResolveUsername(ctx context.Context, username string) (uint64, bool, error) {
	uid, ok := f.usernameToUID[username]
	return uid, ok, nil
}

func (f *fakeResolver) ResolveUID(ctx context.Context, uid uint64) (string, bool, error) {
	name, ok := f.uidToUsername[uid]
	return name, ok, nil
}

func newTestEngine() (*Engine, *fakeRepo, *fakeResolver) {
	repo := newFakeRepo()
	resolver := newFakeResolver()
	e := New(repo, resolver, grouplock.New(), nil, nil, nil)
	return e, repo, resolver
}

func TestLifecycle(t *testing.T) {
	e, _, resolver := newTestEngine()
	resolver.register("P_acc1", 1)

	groupID, err := e.CreateGroup(context.Background(), "grp1", 1)
	require.NoError(t, err)

	name, err := e.GetGroupPublicInfo(context.Background(), groupID)
	require.NoError(t, err)
	assert.Equal(t, "grp1", name)

	members, err := e.GetGroupInfo(context.Background(), groupID, 1)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "P_acc1", members[0].Name)
	assert.Equal(t, domain.RoleOwner, members[0].Role)
}

func TestPermission_NonMemberCannotReadRoster(t *testing.T) {
	e, _, resolver := newTestEngine()
	resolver.register("P_acc1", 1)
	resolver.register("P_acc2", 2)

	groupID, err := e.CreateGroup(context.Background(), "grp2", 1)
	require.NoError(t, err)

	_, err = e.GetGroupInfo(context.Background(), groupID, 2)
	assert.Equal(t, statuscode.AuthDenied, statuscode.AsCode(err))
}

func TestJoin(t *testing.T) {
	e, _, resolver := newTestEngine()
	resolver.register("P_acc1", 1)
	resolver.register("P_acc2", 2)

	groupID, err := e.CreateGroup(context.Background(), "grp3", 1)
	require.NoError(t, err)

	err = e.JoinGroup(context.Background(), 9999, "", 2)
	assert.Equal(t, statuscode.NotFound, statuscode.AsCode(err))

	err = e.JoinGroup(context.Background(), groupID, "", 2)
	require.NoError(t, err)

	err = e.JoinGroup(context.Background(), groupID, "", 2)
	assert.Equal(t, statuscode.AlreadyMember, statuscode.AsCode(err))

	members, err := e.GetGroupInfo(context.Background(), groupID, 1)
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestJoin_WrongPassword(t *testing.T) {
	e, _, resolver := newTestEngine()
	resolver.register("P_acc1", 1)
	resolver.register("P_acc2", 2)

	groupID, err := e.CreateGroup(context.Background(), "grp4", 1)
	require.NoError(t, err)

	err = e.ChangeGroupPassword(context.Background(), groupID, "right_password", 1)
	require.NoError(t, err)

	err = e.ChangeGroupPassword(context.Background(), groupID, "hax", 2)
	assert.Equal(t, statuscode.AuthDenied, statuscode.AsCode(err))

	err = e.JoinGroup(context.Background(), groupID, "", 2)
	assert.Equal(t, statuscode.WrongPassword, statuscode.AsCode(err))

	err = e.JoinGroup(context.Background(), groupID, "right_password", 2)
	require.NoError(t, err)

	err = e.ChangeGroupPassword(context.Background(), groupID, "x", 2)
	assert.Equal(t, statuscode.AuthDenied, statuscode.AsCode(err))
}

func TestInvite(t *testing.T) {
	e, _, resolver := newTestEngine()
	resolver.register("P_acc1", 1)
	resolver.register("P_acc2", 2)
	resolver.register("P_acc3", 3)

	groupID, err := e.CreateGroup(context.Background(), "grp5", 1)
	require.NoError(t, err)

	err = e.InviteGroup(context.Background(), groupID, 1, "fake_username")
	assert.Equal(t, statuscode.NotFound, statuscode.AsCode(err))

	err = e.InviteGroup(context.Background(), groupID, 2, "P_acc2")
	assert.Equal(t, statuscode.AuthDenied, statuscode.AsCode(err))

	err = e.InviteGroup(context.Background(), groupID, 1, "P_acc2")
	require.NoError(t, err)

	err = e.InviteGroup(context.Background(), groupID, 1, "P_acc2")
	assert.Equal(t, statuscode.AlreadyMember, statuscode.AsCode(err))

	err = e.InviteGroup(context.Background(), groupID, 2, "P_acc3")
	require.NoError(t, err)
}

func TestRoleChange(t *testing.T) {
	e, _, resolver := newTestEngine()
	resolver.register("P_acc1", 1)
	resolver.register("P_acc2", 2)

	groupID, err := e.CreateGroup(context.Background(), "grp6", 1)
	require.NoError(t, err)
	require.NoError(t, e.JoinGroup(context.Background(), groupID, "", 2))

	err = e.SetUserType(context.Background(), groupID, 1, "P_acc2", domain.RoleManager)
	require.NoError(t, err)

	members, err := e.GetGroupInfo(context.Background(), groupID, 1)
	require.NoError(t, err)
	for _, m := range members {
		if m.UID == 2 {
			assert.Equal(t, domain.RoleManager, m.Role)
		}
	}
}

func TestGetGroupsByUID(t *testing.T) {
	e, _, resolver := newTestEngine()
	resolver.register("P_acc4", 4)
	resolver.register("P_acc5", 5)

	g1, err := e.CreateGroup(context.Background(), "grpA", 4)
	require.NoError(t, err)
	g2, err := e.CreateGroup(context.Background(), "grpB", 5)
	require.NoError(t, err)
	require.NoError(t, e.InviteGroup(context.Background(), g2, 5, "P_acc4"))

	groups, err := e.GetGroupsByUID(context.Background(), 4)
	require.NoError(t, err)
	assert.Len(t, groups, 2)

	_ = g1
}

func TestKickUser_OwnerSelfKickLeavesGroupOwnerless(t *testing.T) {
	e, _, resolver := newTestEngine()
	resolver.register("P_acc1", 1)

	groupID, err := e.CreateGroup(context.Background(), "grp7", 1)
	require.NoError(t, err)

	err = e.KickUser(context.Background(), groupID, 1, "P_acc1")
	require.NoError(t, err)

	_, err = e.GetGroupInfo(context.Background(), groupID, 1)
	assert.Equal(t, statuscode.AuthDenied, statuscode.AsCode(err))
}

func TestKickUser_ManagerCannotRemoveManager(t *testing.T) {
	e, _, resolver := newTestEngine()
	resolver.register("P_acc1", 1)
	resolver.register("P_acc2", 2)
	resolver.register("P_acc3", 3)

	groupID, err := e.CreateGroup(context.Background(), "grp8", 1)
	require.NoError(t, err)
	require.NoError(t, e.JoinGroup(context.Background(), groupID, "", 2))
	require.NoError(t, e.JoinGroup(context.Background(), groupID, "", 3))
	require.NoError(t, e.SetUserType(context.Background(), groupID, 1, "P_acc2", domain.RoleManager))
	require.NoError(t, e.SetUserType(context.Background(), groupID, 1, "P_acc3", domain.RoleManager))

	err = e.KickUser(context.Background(), groupID, 2, "P_acc3")
	assert.Equal(t, statuscode.AuthDenied, statuscode.AsCode(err))
}
