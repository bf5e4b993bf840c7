// Package groupuserpb is the wire contract for GroupUserService, mirroring
// api/proto/groupuser/v1/groupuser.proto. Messages are carried over gRPC's
// standard HTTP/2, length-prefixed framing through the "json" codec
// registered in internal/rpcjson, rather than wire-format protobuf — see
// DESIGN.md for why.
package groupuserpb

// MemberType is the closed role enum published on the wire. Ordinal values
// are part of the contract and must not change once a client depends on
// them.
type MemberType int32

const (
	MemberType_OWNER   MemberType = 0
	MemberType_MANAGER MemberType = 1
	MemberType_MEMBER  MemberType = 2
)

func (t MemberType) String() string {
	switch t {
	case MemberType_OWNER:
		return "OWNER"
	case MemberType_MANAGER:
		return "MANAGER"
	case MemberType_MEMBER:
		return "MEMBER"
	default:
		return "UNKNOWN"
	}
}

// Result is present on every response. Code==800 is the sole success
// sentinel; any other value is a failure, described by Msg.
type Result struct {
	Code uint32 `json:"code"`
	Msg  string `json:"msg"`
}

type PingRequest struct{}

type PingResponse struct {
	Result *Result `json:"result"`
}

type CreateGroupRequest struct {
	Name string `json:"name"`
	Uid  uint64 `json:"uid"`
}

type CreateGroupResponse struct {
	Result  *Result `json:"result"`
	GroupId uint64  `json:"group_id"`
}

type GetGroupPublicInfoRequest struct {
	GroupId uint64 `json:"group_id"`
}

type GetGroupPublicInfoResponse struct {
	Result *Result `json:"result"`
	Name   string  `json:"name"`
}

type Member struct {
	Name string     `json:"name"`
	Type MemberType `json:"type"`
}

type GetGroupInfoRequest struct {
	GroupId uint64 `json:"group_id"`
	Uid     uint64 `json:"uid"`
}

type GetGroupInfoResponse struct {
	Result  *Result   `json:"result"`
	Members []*Member `json:"members"`
}

type JoinGroupRequest struct {
	GroupId  uint64 `json:"group_id"`
	Password string `json:"password"`
	Uid      uint64 `json:"uid"`
}

type JoinGroupResponse struct {
	Result *Result `json:"result"`
}

type InviteGroupRequest struct {
	GroupId  uint64 `json:"group_id"`
	Uid      uint64 `json:"uid"`
	Username string `json:"username"`
}

type InviteGroupResponse struct {
	Result *Result `json:"result"`
}

type KickUserRequest struct {
	GroupId  uint64 `json:"group_id"`
	Uid      uint64 `json:"uid"`
	Username string `json:"username"`
}

type KickUserResponse struct {
	Result *Result `json:"result"`
}

type ChangeGroupNameRequest struct {
	GroupId uint64 `json:"group_id"`
	Uid     uint64 `json:"uid"`
	Name    string `json:"name"`
}

type ChangeGroupNameResponse struct {
	Result *Result `json:"result"`
}

type ChangeGroupPasswordRequest struct {
	GroupId  uint64 `json:"group_id"`
	Password string `json:"password"`
	Uid      uint64 `json:"uid"`
}

type ChangeGroupPasswordResponse struct {
	Result *Result `json:"result"`
}

type SetUserTypeRequest struct {
	GroupId  uint64     `json:"group_id"`
	Uid      uint64     `json:"uid"`
	Username string     `json:"username"`
	Type     MemberType `json:"type"`
}

type SetUserTypeResponse struct {
	Result *Result `json:"result"`
}

type GroupSummary struct {
	GroupId uint64 `json:"group_id"`
	Name    string `json:"name"`
}

type GetGroupsByUIDRequest struct {
	Uid uint64 `json:"uid"`
}

type GetGroupsByUIDResponse struct {
	Result *Result         `json:"result"`
	Groups []*GroupSummary `json:"groups"`
}
