package domain

import "github.com/connectify-dev/groupuser-service/api/groupuserpb"

// Role is the closed membership hierarchy: owner > manager > member.
type Role uint8

const (
	RoleNone Role = iota
	RoleMember
	RoleManager
	RoleOwner
)

// Rank gives Role a total order so authority checks reduce to integer
// comparison instead of a chain of switch statements.
func (r Role) Rank() int {
	return int(r)
}

func (r Role) String() string {
	switch r {
	case RoleOwner:
		return "owner"
	case RoleManager:
		return "manager"
	case RoleMember:
		return "member"
	default:
		return "none"
	}
}

func RoleFromWire(t groupuserpb.MemberType) Role {
	switch t {
	case groupuserpb.MemberType_OWNER:
		return RoleOwner
	case groupuserpb.MemberType_MANAGER:
		return RoleManager
	default:
		return RoleMember
	}
}

func (r Role) ToWire() groupuserpb.MemberType {
	switch r {
	case RoleOwner:
		return groupuserpb.MemberType_OWNER
	case RoleManager:
		return groupuserpb.MemberType_MANAGER
	default:
		return groupuserpb.MemberType_MEMBER
	}
}
