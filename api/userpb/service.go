package userpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const UserService_ServiceName = "user.v1.UserService"

// UserServiceClient is the client API for UserService.
type UserServiceClient interface {
	ResolveUsernameToUserId(ctx context.Context, in *ResolveUsernameToUserIdRequest, opts ...grpc.CallOption) (*ResolveUsernameToUserIdResponse, error)
	ResolveUserIdToUsername(ctx context.Context, in *ResolveUserIdToUsernameRequest, opts ...grpc.CallOption) (*ResolveUserIdToUsernameResponse, error)
}

type userServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewUserServiceClient(cc grpc.ClientConnInterface) UserServiceClient {
	return &userServiceClient{cc}
}

func (c *userServiceClient) ResolveUsernameToUserId(ctx context.Context, in *ResolveUsernameToUserIdRequest, opts ...grpc.CallOption) (*ResolveUsernameToUserIdResponse, error) {
	out := new(ResolveUsernameToUserIdResponse)
	if err := c.cc.Invoke(ctx, "/"+UserService_ServiceName+"/ResolveUsernameToUserId", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userServiceClient) ResolveUserIdToUsername(ctx context.Context, in *ResolveUserIdToUsernameRequest, opts ...grpc.CallOption) (*ResolveUserIdToUsernameResponse, error) {
	out := new(ResolveUserIdToUsernameResponse)
	if err := c.cc.Invoke(ctx, "/"+UserService_ServiceName+"/ResolveUserIdToUsername", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// UserServiceServer is the server API for UserService.
type UserServiceServer interface {
	ResolveUsernameToUserId(context.Context, *ResolveUsernameToUserIdRequest) (*ResolveUsernameToUserIdResponse, error)
	ResolveUserIdToUsername(context.Context, *ResolveUserIdToUsernameRequest) (*ResolveUserIdToUsernameResponse, error)
}

type UnimplementedUserServiceServer struct{}

func (UnimplementedUserServiceServer) ResolveUsernameToUserId(context.Context, *ResolveUsernameToUserIdRequest) (*ResolveUsernameToUserIdResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResolveUsernameToUserId not implemented")
}

func (UnimplementedUserServiceServer) ResolveUserIdToUsername(context.Context, *ResolveUserIdToUsernameRequest) (*ResolveUserIdToUsernameResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResolveUserIdToUsername not implemented")
}

func RegisterUserServiceServer(s grpc.ServiceRegistrar, srv UserServiceServer) {
	s.RegisterService(&UserService_ServiceDesc, srv)
}

func _UserService_ResolveUsernameToUserId_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResolveUsernameToUserIdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserServiceServer).ResolveUsernameToUserId(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + UserService_ServiceName + "/ResolveUsernameToUserId"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UserServiceServer).ResolveUsernameToUserId(ctx, req.(*ResolveUsernameToUserIdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UserService_ResolveUserIdToUsername_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResolveUserIdToUsernameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserServiceServer).ResolveUserIdToUsername(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + UserService_ServiceName + "/ResolveUserIdToUsername"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UserServiceServer).ResolveUserIdToUsername(ctx, req.(*ResolveUserIdToUsernameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var UserService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: UserService_ServiceName,
	HandlerType: (*UserServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ResolveUsernameToUserId", Handler: _UserService_ResolveUsernameToUserId_Handler},
		{MethodName: "ResolveUserIdToUsername", Handler: _UserService_ResolveUserIdToUsername_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "user/v1/user.proto",
}
