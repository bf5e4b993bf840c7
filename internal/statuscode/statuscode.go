// Package statuscode defines the numeric result taxonomy carried on every
// GroupUserService response, independent of gRPC/HTTP transport status.
package statuscode

import "github.com/connectify-dev/groupuser-service/api/groupuserpb"

type Code uint32

const (
	OK            Code = 800
	BadArgument   Code = 801
	NotFound      Code = 802
	AuthDenied    Code = 803
	NotMember     Code = 804
	AlreadyMember Code = 805
	WrongPassword Code = 806
	Upstream      Code = 807
	Internal      Code = 808
)

var messages = map[Code]string{
	OK:            "ok",
	BadArgument:   "bad argument",
	NotFound:      "not found",
	AuthDenied:    "authorization denied",
	NotMember:     "not a member",
	AlreadyMember: "already a member",
	WrongPassword: "wrong password",
	Upstream:      "upstream failure",
	Internal:      "internal error",
}

// Error carries a Code through the domain and policy layers so the
// rpcserver façade can translate it into a Result without re-deriving
// intent from an opaque error string.
type Error struct {
	Code Code
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func New(code Code) *Error {
	return &Error{Code: code, Msg: messages[code]}
}

func Newf(code Code, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

// AsCode extracts the Code carried by err, defaulting to Internal for any
// error that didn't originate from this package.
func AsCode(err error) Code {
	if err == nil {
		return OK
	}
	if se, ok := err.(*Error); ok {
		return se.Code
	}
	return Internal
}

// Result builds the wire envelope for a success or failure outcome. A nil
// err produces the OK sentinel.
func Result(err error) *groupuserpb.Result {
	if err == nil {
		return &groupuserpb.Result{Code: uint32(OK), Msg: messages[OK]}
	}
	if se, ok := err.(*Error); ok {
		return &groupuserpb.Result{Code: uint32(se.Code), Msg: se.Msg}
	}
	return &groupuserpb.Result{Code: uint32(Internal), Msg: err.Error()}
}
