package domain

import "time"

// Group is a named room owned by a single user at creation time. Ownership
// can end up unattached after the owner leaves voluntarily (see
// internal/policy), so OwnerUID is advisory, not authoritative: membership
// roles in Membership are what authorization actually checks.
type Group struct {
	ID        uint64    `bson:"group_id"`
	Name      string    `bson:"name"`
	Password  string    `bson:"password"`
	OwnerUID  uint64    `bson:"owner_uid"`
	CreatedAt time.Time `bson:"created_at"`
}

// Membership is one (group, user) edge carrying the user's role in that
// group.
type Membership struct {
	GroupID  uint64    `bson:"group_id"`
	UID      uint64    `bson:"uid"`
	Role     Role      `bson:"role"`
	JoinedAt time.Time `bson:"joined_at"`
}
