// Package rpcserver wires GroupUserServiceServer onto the authority engine.
// Grounded on reelgrpc.Server's shape: validate request fields, delegate to
// a narrow service interface, wrap the result. The teacher validates Mongo
// ObjectID hex strings and returns gRPC status errors; here the wire
// contract has no transport-level failure mode for domain rejections at
// all — every outcome, success or denial, travels inside Result, so
// validation failures are reported the same way authority denials are.
package rpcserver

import (
	"context"

	"github.com/connectify-dev/groupuser-service/api/groupuserpb"
	"github.com/connectify-dev/groupuser-service/internal/domain"
	"github.com/connectify-dev/groupuser-service/internal/policy"
	"github.com/connectify-dev/groupuser-service/internal/statuscode"
)

// Engine is the subset of policy.Engine the façade depends on.
type Engine interface {
	CreateGroup(ctx context.Context, name string, ownerUID uint64) (uint64, error)
	GetGroupPublicInfo(ctx context.Context, groupID uint64) (string, error)
	GetGroupInfo(ctx context.Context, groupID, uid uint64) ([]policy.MemberView, error)
	JoinGroup(ctx context.Context, groupID uint64, password string, uid uint64) error
	InviteGroup(ctx context.Context, groupID, callerUID uint64, username string) error
	KickUser(ctx context.Context, groupID, callerUID uint64, username string) error
	ChangeGroupName(ctx context.Context, groupID, callerUID uint64, name string) error
	ChangeGroupPassword(ctx context.Context, groupID uint64, password string, callerUID uint64) error
	SetUserType(ctx context.Context, groupID, callerUID uint64, username string, newRole domain.Role) error
	GetGroupsByUID(ctx context.Context, uid uint64) ([]policy.GroupSummary, error)
}

type Server struct {
	groupuserpb.UnimplementedGroupUserServiceServer
	engine Engine
}

func NewServer(engine Engine) *Server {
	return &Server{engine: engine}
}

func badArgument(msg string) *groupuserpb.Result {
	return statuscode.Result(statuscode.Newf(statuscode.BadArgument, msg))
}

func (s *Server) Ping(ctx context.Context, req *groupuserpb.PingRequest) (*groupuserpb.PingResponse, error) {
	return &groupuserpb.PingResponse{Result: statuscode.Result(nil)}, nil
}

func (s *Server) CreateGroup(ctx context.Context, req *groupuserpb.CreateGroupRequest) (*groupuserpb.CreateGroupResponse, error) {
	if req.Name == "" {
		return &groupuserpb.CreateGroupResponse{Result: badArgument("name must not be empty")}, nil
	}
	if req.Uid == 0 {
		return &groupuserpb.CreateGroupResponse{Result: badArgument("uid must not be zero")}, nil
	}

	groupID, err := s.engine.CreateGroup(ctx, req.Name, req.Uid)
	if err != nil {
		return &groupuserpb.CreateGroupResponse{Result: statuscode.Result(err)}, nil
	}
	return &groupuserpb.CreateGroupResponse{Result: statuscode.Result(nil), GroupId: groupID}, nil
}

func (s *Server) GetGroupPublicInfo(ctx context.Context, req *groupuserpb.GetGroupPublicInfoRequest) (*groupuserpb.GetGroupPublicInfoResponse, error) {
	if req.GroupId == 0 {
		return &groupuserpb.GetGroupPublicInfoResponse{Result: badArgument("group_id must not be zero")}, nil
	}

	name, err := s.engine.GetGroupPublicInfo(ctx, req.GroupId)
	if err != nil {
		return &groupuserpb.GetGroupPublicInfoResponse{Result: statuscode.Result(err)}, nil
	}
	return &groupuserpb.GetGroupPublicInfoResponse{Result: statuscode.Result(nil), Name: name}, nil
}

func (s *Server) GetGroupInfo(ctx context.Context, req *groupuserpb.GetGroupInfoRequest) (*groupuserpb.GetGroupInfoResponse, error) {
	if req.GroupId == 0 {
		return &groupuserpb.GetGroupInfoResponse{Result: badArgument("group_id must not be zero")}, nil
	}
	if req.Uid == 0 {
		return &groupuserpb.GetGroupInfoResponse{Result: badArgument("uid must not be zero")}, nil
	}

	views, err := s.engine.GetGroupInfo(ctx, req.GroupId, req.Uid)
	if err != nil {
		return &groupuserpb.GetGroupInfoResponse{Result: statuscode.Result(err)}, nil
	}

	members := make([]*groupuserpb.Member, 0, len(views))
	for _, v := range views {
		members = append(members, &groupuserpb.Member{Name: v.Name, Type: v.Role.ToWire()})
	}
	return &groupuserpb.GetGroupInfoResponse{Result: statuscode.Result(nil), Members: members}, nil
}

func (s *Server) JoinGroup(ctx context.Context, req *groupuserpb.JoinGroupRequest) (*groupuserpb.JoinGroupResponse, error) {
	if req.GroupId == 0 {
		return &groupuserpb.JoinGroupResponse{Result: badArgument("group_id must not be zero")}, nil
	}
	if req.Uid == 0 {
		return &groupuserpb.JoinGroupResponse{Result: badArgument("uid must not be zero")}, nil
	}

	err := s.engine.JoinGroup(ctx, req.GroupId, req.Password, req.Uid)
	return &groupuserpb.JoinGroupResponse{Result: statuscode.Result(err)}, nil
}

func (s *Server) InviteGroup(ctx context.Context, req *groupuserpb.InviteGroupRequest) (*groupuserpb.InviteGroupResponse, error) {
	if req.GroupId == 0 {
		return &groupuserpb.InviteGroupResponse{Result: badArgument("group_id must not be zero")}, nil
	}
	if req.Uid == 0 {
		return &groupuserpb.InviteGroupResponse{Result: badArgument("uid must not be zero")}, nil
	}
	if req.Username == "" {
		return &groupuserpb.InviteGroupResponse{Result: badArgument("username must not be empty")}, nil
	}

	err := s.engine.InviteGroup(ctx, req.GroupId, req.Uid, req.Username)
	return &groupuserpb.InviteGroupResponse{Result: statuscode.Result(err)}, nil
}

func (s *Server) KickUser(ctx context.Context, req *groupuserpb.KickUserRequest) (*groupuserpb.KickUserResponse, error) {
	if req.GroupId == 0 {
		return &groupuserpb.KickUserResponse{Result: badArgument("group_id must not be zero")}, nil
	}
	if req.Uid == 0 {
		return &groupuserpb.KickUserResponse{Result: badArgument("uid must not be zero")}, nil
	}
	if req.Username == "" {
		return &groupuserpb.KickUserResponse{Result: badArgument("username must not be empty")}, nil
	}

	err := s.engine.KickUser(ctx, req.GroupId, req.Uid, req.Username)
	return &groupuserpb.KickUserResponse{Result: statuscode.Result(err)}, nil
}

func (s *Server) ChangeGroupName(ctx context.Context, req *groupuserpb.ChangeGroupNameRequest) (*groupuserpb.ChangeGroupNameResponse, error) {
	if req.GroupId == 0 {
		return &groupuserpb.ChangeGroupNameResponse{Result: badArgument("group_id must not be zero")}, nil
	}
	if req.Uid == 0 {
		return &groupuserpb.ChangeGroupNameResponse{Result: badArgument("uid must not be zero")}, nil
	}
	if req.Name == "" {
		return &groupuserpb.ChangeGroupNameResponse{Result: badArgument("name must not be empty")}, nil
	}

	err := s.engine.ChangeGroupName(ctx, req.GroupId, req.Uid, req.Name)
	return &groupuserpb.ChangeGroupNameResponse{Result: statuscode.Result(err)}, nil
}

func (s *Server) ChangeGroupPassword(ctx context.Context, req *groupuserpb.ChangeGroupPasswordRequest) (*groupuserpb.ChangeGroupPasswordResponse, error) {
	if req.GroupId == 0 {
		return &groupuserpb.ChangeGroupPasswordResponse{Result: badArgument("group_id must not be zero")}, nil
	}
	if req.Uid == 0 {
		return &groupuserpb.ChangeGroupPasswordResponse{Result: badArgument("uid must not be zero")}, nil
	}

	err := s.engine.ChangeGroupPassword(ctx, req.GroupId, req.Password, req.Uid)
	return &groupuserpb.ChangeGroupPasswordResponse{Result: statuscode.Result(err)}, nil
}

func (s *Server) SetUserType(ctx context.Context, req *groupuserpb.SetUserTypeRequest) (*groupuserpb.SetUserTypeResponse, error) {
	if req.GroupId == 0 {
		return &groupuserpb.SetUserTypeResponse{Result: badArgument("group_id must not be zero")}, nil
	}
	if req.Uid == 0 {
		return &groupuserpb.SetUserTypeResponse{Result: badArgument("uid must not be zero")}, nil
	}
	if req.Username == "" {
		return &groupuserpb.SetUserTypeResponse{Result: badArgument("username must not be empty")}, nil
	}

	err := s.engine.SetUserType(ctx, req.GroupId, req.Uid, req.Username, domain.RoleFromWire(req.Type))
	return &groupuserpb.SetUserTypeResponse{Result: statuscode.Result(err)}, nil
}

func (s *Server) GetGroupsByUID(ctx context.Context, req *groupuserpb.GetGroupsByUIDRequest) (*groupuserpb.GetGroupsByUIDResponse, error) {
	if req.Uid == 0 {
		return &groupuserpb.GetGroupsByUIDResponse{Result: badArgument("uid must not be zero")}, nil
	}

	summaries, err := s.engine.GetGroupsByUID(ctx, req.Uid)
	if err != nil {
		return &groupuserpb.GetGroupsByUIDResponse{Result: statuscode.Result(err)}, nil
	}

	groups := make([]*groupuserpb.GroupSummary, 0, len(summaries))
	for _, gs := range summaries {
		groups = append(groups, &groupuserpb.GroupSummary{GroupId: gs.GroupID, Name: gs.Name})
	}
	return &groupuserpb.GetGroupsByUIDResponse{Result: statuscode.Result(nil), Groups: groups}, nil
}
