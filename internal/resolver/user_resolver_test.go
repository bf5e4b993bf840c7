package resolver

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/connectify-dev/groupuser-service/api/userpb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

type fakeUserClient struct {
	calls    int32
	response *userpb.ResolveUsernameToUserIdResponse
	err      error
}

func (f *fakeUserClient) ResolveUsernameToUserId(ctx context.Context, in *userpb.ResolveUsernameToUserIdRequest, opts ...grpc.CallOption) (*userpb.ResolveUsernameToUserIdResponse, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func (f *fakeUserClient) ResolveUserIdToUsername(ctx context.Context, in *userpb.ResolveUserIdToUsernameRequest, opts ...grpc.CallOption) (*userpb.ResolveUserIdToUsernameResponse, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return &userpb.ResolveUserIdToUsernameResponse{Found: true, Username: "resolved"}, nil
}

func TestResolveUsername_Found(t *testing.T) {
	fake := &fakeUserClient{response: &userpb.ResolveUsernameToUserIdResponse{Found: true, Uid: 42}}
	r := New(fake, nil, nil, nil)

	uid, found, err := r.ResolveUsername(context.Background(), "alice")

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(42), uid)
}

func TestResolveUsername_NotFound(t *testing.T) {
	fake := &fakeUserClient{response: &userpb.ResolveUsernameToUserIdResponse{Found: false}}
	r := New(fake, nil, nil, nil)

	_, found, err := r.ResolveUsername(context.Background(), "ghost")

	require.NoError(t, err)
	assert.False(t, found)
}

func TestResolveUsername_UpstreamError(t *testing.T) {
	fake := &fakeUserClient{err: errors.New("unreachable")}
	r := New(fake, nil, nil, nil)

	_, found, err := r.ResolveUsername(context.Background(), "bob")

	assert.Error(t, err)
	assert.False(t, found)
}
