package rpcserver

import (
	"context"
	"testing"

	"github.com/connectify-dev/groupuser-service/api/groupuserpb"
	"github.com/connectify-dev/groupuser-service/internal/domain"
	"github.com/connectify-dev/groupuser-service/internal/policy"
	"github.com/connectify-dev/groupuser-service/internal/statuscode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	createGroupErr error
	groupID        uint64
	members        []policy.MemberView
	err            error
	lastRole       domain.Role
}

func (f *fakeEngine) CreateGroup(ctx context.Context, name string, ownerUID uint64) (uint64, error) {
	return f.groupID, f.createGroupErr
}
func (f *fakeEngine) GetGroupPublicInfo(ctx context.Context, groupID uint64) (string, error) {
	return "grp", f.err
}
func (f *fakeEngine) GetGroupInfo(ctx context.Context, groupID, uid uint64) ([]policy.MemberView, error) {
	return f.members, f.err
}
func (f *fakeEngine) JoinGroup(ctx context.Context, groupID uint64, password string, uid uint64) error {
	return f.err
}
func (f *fakeEngine) InviteGroup(ctx context.Context, groupID, callerUID uint64, username string) error {
	return f.err
}
func (f *fakeEngine) KickUser(ctx context.Context, groupID, callerUID uint64, username string) error {
	return f.err
}
func (f *fakeEngine) ChangeGroupName(ctx context.Context, groupID, callerUID uint64, name string) error {
	return f.err
}
func (f *fakeEngine) ChangeGroupPassword(ctx context.Context, groupID uint64, password string, callerUID uint64) error {
	return f.err
}
func (f *fakeEngine) SetUserType(ctx context.Context, groupID, callerUID uint64, username string, newRole domain.Role) error {
	f.lastRole = newRole
	return f.err
}
func (f *fakeEngine) GetGroupsByUID(ctx context.Context, uid uint64) ([]policy.GroupSummary, error) {
	return nil, f.err
}

func TestCreateGroup_RejectsEmptyName(t *testing.T) {
	s := NewServer(&fakeEngine{})
	resp, err := s.CreateGroup(context.Background(), &groupuserpb.CreateGroupRequest{Uid: 1})
	require.NoError(t, err)
	assert.Equal(t, uint32(statuscode.BadArgument), resp.Result.Code)
}

func TestCreateGroup_RejectsZeroUID(t *testing.T) {
	s := NewServer(&fakeEngine{})
	resp, err := s.CreateGroup(context.Background(), &groupuserpb.CreateGroupRequest{Name: "g"})
	require.NoError(t, err)
	assert.Equal(t, uint32(statuscode.BadArgument), resp.Result.Code)
}

func TestCreateGroup_Success(t *testing.T) {
	s := NewServer(&fakeEngine{groupID: 42})
	resp, err := s.CreateGroup(context.Background(), &groupuserpb.CreateGroupRequest{Name: "g", Uid: 1})
	require.NoError(t, err)
	assert.Equal(t, uint32(statuscode.OK), resp.Result.Code)
	assert.Equal(t, uint64(42), resp.GroupId)
}

func TestCreateGroup_PropagatesEngineError(t *testing.T) {
	s := NewServer(&fakeEngine{createGroupErr: statuscode.New(statuscode.Internal)})
	resp, err := s.CreateGroup(context.Background(), &groupuserpb.CreateGroupRequest{Name: "g", Uid: 1})
	require.NoError(t, err)
	assert.Equal(t, uint32(statuscode.Internal), resp.Result.Code)
}

func TestGetGroupInfo_TranslatesMembers(t *testing.T) {
	s := NewServer(&fakeEngine{members: []policy.MemberView{
		{UID: 1, Name: "owner", Role: domain.RoleOwner},
		{UID: 2, Name: "member", Role: domain.RoleMember},
	}})
	resp, err := s.GetGroupInfo(context.Background(), &groupuserpb.GetGroupInfoRequest{GroupId: 1, Uid: 1})
	require.NoError(t, err)
	require.Len(t, resp.Members, 2)
	assert.Equal(t, groupuserpb.MemberType_OWNER, resp.Members[0].Type)
	assert.Equal(t, groupuserpb.MemberType_MEMBER, resp.Members[1].Type)
}

func TestJoinGroup_RejectsMissingFields(t *testing.T) {
	s := NewServer(&fakeEngine{})
	resp, err := s.JoinGroup(context.Background(), &groupuserpb.JoinGroupRequest{})
	require.NoError(t, err)
	assert.Equal(t, uint32(statuscode.BadArgument), resp.Result.Code)
}

func TestSetUserType_ConvertsWireRole(t *testing.T) {
	engine := &fakeEngine{}
	s := NewServer(engine)
	resp, err := s.SetUserType(context.Background(), &groupuserpb.SetUserTypeRequest{
		GroupId: 1, Uid: 1, Username: "target", Type: groupuserpb.MemberType_MANAGER,
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(statuscode.OK), resp.Result.Code)
	assert.Equal(t, domain.RoleManager, engine.lastRole)
}
