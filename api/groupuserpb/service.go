package groupuserpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	GroupUserService_ServiceName = "groupuser.v1.GroupUserService"
)

// GroupUserServiceClient is the client API for GroupUserService.
type GroupUserServiceClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	CreateGroup(ctx context.Context, in *CreateGroupRequest, opts ...grpc.CallOption) (*CreateGroupResponse, error)
	GetGroupPublicInfo(ctx context.Context, in *GetGroupPublicInfoRequest, opts ...grpc.CallOption) (*GetGroupPublicInfoResponse, error)
	GetGroupInfo(ctx context.Context, in *GetGroupInfoRequest, opts ...grpc.CallOption) (*GetGroupInfoResponse, error)
	JoinGroup(ctx context.Context, in *JoinGroupRequest, opts ...grpc.CallOption) (*JoinGroupResponse, error)
	InviteGroup(ctx context.Context, in *InviteGroupRequest, opts ...grpc.CallOption) (*InviteGroupResponse, error)
	KickUser(ctx context.Context, in *KickUserRequest, opts ...grpc.CallOption) (*KickUserResponse, error)
	ChangeGroupName(ctx context.Context, in *ChangeGroupNameRequest, opts ...grpc.CallOption) (*ChangeGroupNameResponse, error)
	ChangeGroupPassword(ctx context.Context, in *ChangeGroupPasswordRequest, opts ...grpc.CallOption) (*ChangeGroupPasswordResponse, error)
	SetUserType(ctx context.Context, in *SetUserTypeRequest, opts ...grpc.CallOption) (*SetUserTypeResponse, error)
	GetGroupsByUID(ctx context.Context, in *GetGroupsByUIDRequest, opts ...grpc.CallOption) (*GetGroupsByUIDResponse, error)
}

type groupUserServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewGroupUserServiceClient(cc grpc.ClientConnInterface) GroupUserServiceClient {
	return &groupUserServiceClient{cc}
}

func (c *groupUserServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	out := new(PingResponse)
	if err := c.cc.Invoke(ctx, "/"+GroupUserService_ServiceName+"/Ping", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *groupUserServiceClient) CreateGroup(ctx context.Context, in *CreateGroupRequest, opts ...grpc.CallOption) (*CreateGroupResponse, error) {
	out := new(CreateGroupResponse)
	if err := c.cc.Invoke(ctx, "/"+GroupUserService_ServiceName+"/CreateGroup", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *groupUserServiceClient) GetGroupPublicInfo(ctx context.Context, in *GetGroupPublicInfoRequest, opts ...grpc.CallOption) (*GetGroupPublicInfoResponse, error) {
	out := new(GetGroupPublicInfoResponse)
	if err := c.cc.Invoke(ctx, "/"+GroupUserService_ServiceName+"/GetGroupPublicInfo", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *groupUserServiceClient) GetGroupInfo(ctx context.Context, in *GetGroupInfoRequest, opts ...grpc.CallOption) (*GetGroupInfoResponse, error) {
	out := new(GetGroupInfoResponse)
	if err := c.cc.Invoke(ctx, "/"+GroupUserService_ServiceName+"/GetGroupInfo", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *groupUserServiceClient) JoinGroup(ctx context.Context, in *JoinGroupRequest, opts ...grpc.CallOption) (*JoinGroupResponse, error) {
	out := new(JoinGroupResponse)
	if err := c.cc.Invoke(ctx, "/"+GroupUserService_ServiceName+"/JoinGroup", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *groupUserServiceClient) InviteGroup(ctx context.Context, in *InviteGroupRequest, opts ...grpc.CallOption) (*InviteGroupResponse, error) {
	out := new(InviteGroupResponse)
	if err := c.cc.Invoke(ctx, "/"+GroupUserService_ServiceName+"/InviteGroup", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *groupUserServiceClient) KickUser(ctx context.Context, in *KickUserRequest, opts ...grpc.CallOption) (*KickUserResponse, error) {
	out := new(KickUserResponse)
	if err := c.cc.Invoke(ctx, "/"+GroupUserService_ServiceName+"/KickUser", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *groupUserServiceClient) ChangeGroupName(ctx context.Context, in *ChangeGroupNameRequest, opts ...grpc.CallOption) (*ChangeGroupNameResponse, error) {
	out := new(ChangeGroupNameResponse)
	if err := c.cc.Invoke(ctx, "/"+GroupUserService_ServiceName+"/ChangeGroupName", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *groupUserServiceClient) ChangeGroupPassword(ctx context.Context, in *ChangeGroupPasswordRequest, opts ...grpc.CallOption) (*ChangeGroupPasswordResponse, error) {
	out := new(ChangeGroupPasswordResponse)
	if err := c.cc.Invoke(ctx, "/"+GroupUserService_ServiceName+"/ChangeGroupPassword", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *groupUserServiceClient) SetUserType(ctx context.Context, in *SetUserTypeRequest, opts ...grpc.CallOption) (*SetUserTypeResponse, error) {
	out := new(SetUserTypeResponse)
	if err := c.cc.Invoke(ctx, "/"+GroupUserService_ServiceName+"/SetUserType", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *groupUserServiceClient) GetGroupsByUID(ctx context.Context, in *GetGroupsByUIDRequest, opts ...grpc.CallOption) (*GetGroupsByUIDResponse, error) {
	out := new(GetGroupsByUIDResponse)
	if err := c.cc.Invoke(ctx, "/"+GroupUserService_ServiceName+"/GetGroupsByUID", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// GroupUserServiceServer is the server API for GroupUserService.
type GroupUserServiceServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	CreateGroup(context.Context, *CreateGroupRequest) (*CreateGroupResponse, error)
	GetGroupPublicInfo(context.Context, *GetGroupPublicInfoRequest) (*GetGroupPublicInfoResponse, error)
	GetGroupInfo(context.Context, *GetGroupInfoRequest) (*GetGroupInfoResponse, error)
	JoinGroup(context.Context, *JoinGroupRequest) (*JoinGroupResponse, error)
	InviteGroup(context.Context, *InviteGroupRequest) (*InviteGroupResponse, error)
	KickUser(context.Context, *KickUserRequest) (*KickUserResponse, error)
	ChangeGroupName(context.Context, *ChangeGroupNameRequest) (*ChangeGroupNameResponse, error)
	ChangeGroupPassword(context.Context, *ChangeGroupPasswordRequest) (*ChangeGroupPasswordResponse, error)
	SetUserType(context.Context, *SetUserTypeRequest) (*SetUserTypeResponse, error)
	GetGroupsByUID(context.Context, *GetGroupsByUIDRequest) (*GetGroupsByUIDResponse, error)
}

// UnimplementedGroupUserServiceServer can be embedded to have forward
// compatible implementations.
type UnimplementedGroupUserServiceServer struct{}

func (UnimplementedGroupUserServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedGroupUserServiceServer) CreateGroup(context.Context, *CreateGroupRequest) (*CreateGroupResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateGroup not implemented")
}
func (UnimplementedGroupUserServiceServer) GetGroupPublicInfo(context.Context, *GetGroupPublicInfoRequest) (*GetGroupPublicInfoResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetGroupPublicInfo not implemented")
}
func (UnimplementedGroupUserServiceServer) GetGroupInfo(context.Context, *GetGroupInfoRequest) (*GetGroupInfoResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetGroupInfo not implemented")
}
func (UnimplementedGroupUserServiceServer) JoinGroup(context.Context, *JoinGroupRequest) (*JoinGroupResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method JoinGroup not implemented")
}
func (UnimplementedGroupUserServiceServer) InviteGroup(context.Context, *InviteGroupRequest) (*InviteGroupResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method InviteGroup not implemented")
}
func (UnimplementedGroupUserServiceServer) KickUser(context.Context, *KickUserRequest) (*KickUserResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method KickUser not implemented")
}
func (UnimplementedGroupUserServiceServer) ChangeGroupName(context.Context, *ChangeGroupNameRequest) (*ChangeGroupNameResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ChangeGroupName not implemented")
}
func (UnimplementedGroupUserServiceServer) ChangeGroupPassword(context.Context, *ChangeGroupPasswordRequest) (*ChangeGroupPasswordResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ChangeGroupPassword not implemented")
}
func (UnimplementedGroupUserServiceServer) SetUserType(context.Context, *SetUserTypeRequest) (*SetUserTypeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetUserType not implemented")
}
func (UnimplementedGroupUserServiceServer) GetGroupsByUID(context.Context, *GetGroupsByUIDRequest) (*GetGroupsByUIDResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetGroupsByUID not implemented")
}

func RegisterGroupUserServiceServer(s grpc.ServiceRegistrar, srv GroupUserServiceServer) {
	s.RegisterService(&GroupUserService_ServiceDesc, srv)
}

func _GroupUserService_Ping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GroupUserServiceServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + GroupUserService_ServiceName + "/Ping"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GroupUserServiceServer).Ping(ctx, req.(*PingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GroupUserService_CreateGroup_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateGroupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GroupUserServiceServer).CreateGroup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + GroupUserService_ServiceName + "/CreateGroup"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GroupUserServiceServer).CreateGroup(ctx, req.(*CreateGroupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GroupUserService_GetGroupPublicInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetGroupPublicInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GroupUserServiceServer).GetGroupPublicInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + GroupUserService_ServiceName + "/GetGroupPublicInfo"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GroupUserServiceServer).GetGroupPublicInfo(ctx, req.(*GetGroupPublicInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GroupUserService_GetGroupInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetGroupInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GroupUserServiceServer).GetGroupInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + GroupUserService_ServiceName + "/GetGroupInfo"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GroupUserServiceServer).GetGroupInfo(ctx, req.(*GetGroupInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GroupUserService_JoinGroup_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(JoinGroupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GroupUserServiceServer).JoinGroup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + GroupUserService_ServiceName + "/JoinGroup"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GroupUserServiceServer).JoinGroup(ctx, req.(*JoinGroupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GroupUserService_InviteGroup_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InviteGroupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GroupUserServiceServer).InviteGroup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + GroupUserService_ServiceName + "/InviteGroup"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GroupUserServiceServer).InviteGroup(ctx, req.(*InviteGroupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GroupUserService_KickUser_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(KickUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GroupUserServiceServer).KickUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + GroupUserService_ServiceName + "/KickUser"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GroupUserServiceServer).KickUser(ctx, req.(*KickUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GroupUserService_ChangeGroupName_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ChangeGroupNameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GroupUserServiceServer).ChangeGroupName(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + GroupUserService_ServiceName + "/ChangeGroupName"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GroupUserServiceServer).ChangeGroupName(ctx, req.(*ChangeGroupNameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GroupUserService_ChangeGroupPassword_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ChangeGroupPasswordRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GroupUserServiceServer).ChangeGroupPassword(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + GroupUserService_ServiceName + "/ChangeGroupPassword"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GroupUserServiceServer).ChangeGroupPassword(ctx, req.(*ChangeGroupPasswordRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GroupUserService_SetUserType_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetUserTypeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GroupUserServiceServer).SetUserType(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + GroupUserService_ServiceName + "/SetUserType"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GroupUserServiceServer).SetUserType(ctx, req.(*SetUserTypeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GroupUserService_GetGroupsByUID_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetGroupsByUIDRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GroupUserServiceServer).GetGroupsByUID(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + GroupUserService_ServiceName + "/GetGroupsByUID"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GroupUserServiceServer).GetGroupsByUID(ctx, req.(*GetGroupsByUIDRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var GroupUserService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: GroupUserService_ServiceName,
	HandlerType: (*GroupUserServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: _GroupUserService_Ping_Handler},
		{MethodName: "CreateGroup", Handler: _GroupUserService_CreateGroup_Handler},
		{MethodName: "GetGroupPublicInfo", Handler: _GroupUserService_GetGroupPublicInfo_Handler},
		{MethodName: "GetGroupInfo", Handler: _GroupUserService_GetGroupInfo_Handler},
		{MethodName: "JoinGroup", Handler: _GroupUserService_JoinGroup_Handler},
		{MethodName: "InviteGroup", Handler: _GroupUserService_InviteGroup_Handler},
		{MethodName: "KickUser", Handler: _GroupUserService_KickUser_Handler},
		{MethodName: "ChangeGroupName", Handler: _GroupUserService_ChangeGroupName_Handler},
		{MethodName: "ChangeGroupPassword", Handler: _GroupUserService_ChangeGroupPassword_Handler},
		{MethodName: "SetUserType", Handler: _GroupUserService_SetUserType_Handler},
		{MethodName: "GetGroupsByUID", Handler: _GroupUserService_GetGroupsByUID_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "groupuser/v1/groupuser.proto",
}
