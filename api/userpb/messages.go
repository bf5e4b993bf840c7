// Package userpb is the wire contract for the companion UserService,
// mirroring api/proto/user/v1/user.proto. GroupUserService only consumes
// username resolution from it.
package userpb

type ResolveUsernameToUserIdRequest struct {
	Username string `json:"username"`
}

type ResolveUsernameToUserIdResponse struct {
	Found bool   `json:"found"`
	Uid   uint64 `json:"uid"`
}

type ResolveUserIdToUsernameRequest struct {
	Uid uint64 `json:"uid"`
}

type ResolveUserIdToUsernameResponse struct {
	Found    bool   `json:"found"`
	Username string `json:"username"`
}
