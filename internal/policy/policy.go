// Package policy is the authority rule engine for groups and membership. It
// is the component the rest of the service exists to serve: every mutating
// operation loads current state from the repository, authorizes the caller
// against the target group, mutates through the repository, and publishes
// the resulting domain event — authority checks always run before any
// write, so a denied request never leaves a trace in storage.
package policy

import (
	"context"
	"log/slog"
	"time"

	"github.com/connectify-dev/groupuser-service/internal/domain"
	"github.com/connectify-dev/groupuser-service/internal/events"
	"github.com/connectify-dev/groupuser-service/internal/grouplock"
	"github.com/connectify-dev/groupuser-service/internal/metrics"
	"github.com/connectify-dev/groupuser-service/internal/repository"
	"github.com/connectify-dev/groupuser-service/internal/statuscode"
)

// Repository is the subset of internal/repository's Repository the policy
// engine depends on, narrowed to an interface so tests can substitute an
// in-memory double.
type Repository interface {
	CreateGroup(ctx context.Context, g *domain.Group) (*domain.Group, error)
	GetGroup(ctx context.Context, groupID uint64) (*domain.Group, error)
	UpdateGroupName(ctx context.Context, groupID uint64, name string) error
	UpdateGroupPassword(ctx context.Context, groupID uint64, password string) error
	ListMembers(ctx context.Context, groupID uint64) ([]*domain.Membership, error)
	GetMembership(ctx context.Context, groupID, uid uint64) (*domain.Membership, error)
	AddMembership(ctx context.Context, m *domain.Membership) error
	RemoveMembership(ctx context.Context, groupID, uid uint64) error
	SetMembershipRole(ctx context.Context, groupID, uid uint64, role domain.Role) error
	ListGroupsByUID(ctx context.Context, uid uint64) ([]*domain.Membership, error)
}

// Resolver is the username/uid translation boundary to the companion User
// service.
type Resolver interface {
	ResolveUsername(ctx context.Context, username string) (uid uint64, found bool, err error)
	ResolveUID(ctx context.Context, uid uint64) (username string, found bool, err error)
}

type MemberView struct {
	UID  uint64
	Name string
	Role domain.Role
}

type GroupSummary struct {
	GroupID uint64
	Name    string
}

type Engine struct {
	repo     Repository
	resolver Resolver
	locks    *grouplock.Locker
	producer events.Producer
	metrics  *metrics.BusinessMetrics
	logger   *slog.Logger
}

func New(repo Repository, resolver Resolver, locks *grouplock.Locker, producer events.Producer, metrics *metrics.BusinessMetrics, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{repo: repo, resolver: resolver, locks: locks, producer: producer, metrics: metrics, logger: logger}
}

// CreateGroup admits any caller (the spec treats any uid presented on the
// wire as an already-authenticated registered user; there is no reverse
// uid-existence RPC on the User service contract to double check it).
func (e *Engine) CreateGroup(ctx context.Context, name string, ownerUID uint64) (uint64, error) {
	g, err := e.repo.CreateGroup(ctx, &domain.Group{Name: name, OwnerUID: ownerUID})
	if err != nil {
		return 0, statuscode.New(statuscode.Internal)
	}

	if err := e.repo.AddMembership(ctx, &domain.Membership{GroupID: g.ID, UID: ownerUID, Role: domain.RoleOwner}); err != nil {
		return 0, statuscode.New(statuscode.Internal)
	}

	if e.metrics != nil {
		e.metrics.GroupsCreated.Inc()
	}
	e.publish(ctx, events.GroupCreated, events.Payload{GroupID: g.ID, UID: ownerUID})
	e.logger.Info("group created", "group_id", g.ID, "owner_uid", ownerUID)
	return g.ID, nil
}

func (e *Engine) GetGroupPublicInfo(ctx context.Context, groupID uint64) (string, error) {
	g, err := e.repo.GetGroup(ctx, groupID)
	if err != nil {
		if err == repository.ErrNotFound {
			return "", statuscode.New(statuscode.NotFound)
		}
		return "", statuscode.New(statuscode.Internal)
	}
	return g.Name, nil
}

// GetGroupInfo returns the roster. Only current members may see it.
func (e *Engine) GetGroupInfo(ctx context.Context, groupID, uid uint64) ([]MemberView, error) {
	if _, err := e.repo.GetGroup(ctx, groupID); err != nil {
		if err == repository.ErrNotFound {
			return nil, statuscode.New(statuscode.NotFound)
		}
		return nil, statuscode.New(statuscode.Internal)
	}

	caller, err := e.repo.GetMembership(ctx, groupID, uid)
	if err != nil && err != repository.ErrNotFound {
		return nil, statuscode.New(statuscode.Internal)
	}
	if caller == nil {
		return nil, statuscode.New(statuscode.AuthDenied)
	}

	members, err := e.repo.ListMembers(ctx, groupID)
	if err != nil {
		return nil, statuscode.New(statuscode.Internal)
	}

	views := make([]MemberView, 0, len(members))
	for _, m := range members {
		name, found, rerr := e.resolver.ResolveUID(ctx, m.UID)
		if rerr != nil {
			return nil, statuscode.New(statuscode.Upstream)
		}
		if !found {
			continue
		}
		views = append(views, MemberView{UID: m.UID, Name: name, Role: m.Role})
	}
	return views, nil
}

// JoinGroup admits uid as a plain member if not already in the group and
// the supplied password matches (empty group password admits any password,
// including empty).
func (e *Engine) JoinGroup(ctx context.Context, groupID uint64, password string, uid uint64) error {
	unlock := e.locks.Lock(groupID)
	defer unlock()

	g, err := e.repo.GetGroup(ctx, groupID)
	if err != nil {
		if err == repository.ErrNotFound {
			return statuscode.New(statuscode.NotFound)
		}
		return statuscode.New(statuscode.Internal)
	}

	if existing, err := e.repo.GetMembership(ctx, groupID, uid); err == nil && existing != nil {
		return statuscode.New(statuscode.AlreadyMember)
	} else if err != nil && err != repository.ErrNotFound {
		return statuscode.New(statuscode.Internal)
	}

	if g.Password != "" && password != g.Password {
		return statuscode.New(statuscode.WrongPassword)
	}

	if err := e.repo.AddMembership(ctx, &domain.Membership{GroupID: groupID, UID: uid, Role: domain.RoleMember}); err != nil {
		if err == repository.ErrDuplicate {
			return statuscode.New(statuscode.AlreadyMember)
		}
		return statuscode.New(statuscode.Internal)
	}

	if e.metrics != nil {
		e.metrics.Joins.Inc()
	}
	e.publish(ctx, events.MemberJoined, events.Payload{GroupID: groupID, UID: uid})
	e.logger.Info("member joined", "group_id", groupID, "uid", uid)
	return nil
}

// InviteGroup adds username as a member. Per the resolved authority rule,
// any current member of the group (not just manager/owner) may invite a
// non-member; see DESIGN.md for why.
func (e *Engine) InviteGroup(ctx context.Context, groupID, callerUID uint64, username string) error {
	unlock := e.locks.Lock(groupID)
	defer unlock()

	if _, err := e.repo.GetGroup(ctx, groupID); err != nil {
		if err == repository.ErrNotFound {
			return statuscode.New(statuscode.NotFound)
		}
		return statuscode.New(statuscode.Internal)
	}

	caller, err := e.repo.GetMembership(ctx, groupID, callerUID)
	if err != nil && err != repository.ErrNotFound {
		return statuscode.New(statuscode.Internal)
	}
	if caller == nil {
		return statuscode.New(statuscode.AuthDenied)
	}

	targetUID, found, err := e.resolver.ResolveUsername(ctx, username)
	if err != nil {
		return statuscode.New(statuscode.Upstream)
	}
	if !found {
		return statuscode.New(statuscode.NotFound)
	}

	if existing, err := e.repo.GetMembership(ctx, groupID, targetUID); err == nil && existing != nil {
		return statuscode.New(statuscode.AlreadyMember)
	} else if err != nil && err != repository.ErrNotFound {
		return statuscode.New(statuscode.Internal)
	}

	if err := e.repo.AddMembership(ctx, &domain.Membership{GroupID: groupID, UID: targetUID, Role: domain.RoleMember}); err != nil {
		if err == repository.ErrDuplicate {
			return statuscode.New(statuscode.AlreadyMember)
		}
		return statuscode.New(statuscode.Internal)
	}

	if e.metrics != nil {
		e.metrics.Invites.Inc()
	}
	e.publish(ctx, events.MemberInvited, events.Payload{GroupID: groupID, UID: targetUID, ActorUID: callerUID})
	e.logger.Info("member invited", "group_id", groupID, "uid", targetUID, "by", callerUID)
	return nil
}

// KickUser removes username (self-leave when target==caller). Authority:
// target removing self always succeeds except there's no special-case for
// owner — an owner self-kick is allowed and intentionally leaves the group
// ownerless; see DESIGN.md Open Question 1.
func (e *Engine) KickUser(ctx context.Context, groupID, callerUID uint64, username string) error {
	unlock := e.locks.Lock(groupID)
	defer unlock()

	if _, err := e.repo.GetGroup(ctx, groupID); err != nil {
		if err == repository.ErrNotFound {
			return statuscode.New(statuscode.NotFound)
		}
		return statuscode.New(statuscode.Internal)
	}

	targetUID, found, err := e.resolver.ResolveUsername(ctx, username)
	if err != nil {
		return statuscode.New(statuscode.Upstream)
	}
	if !found {
		return statuscode.New(statuscode.NotFound)
	}

	target, err := e.repo.GetMembership(ctx, groupID, targetUID)
	if err != nil {
		if err == repository.ErrNotFound {
			return statuscode.New(statuscode.NotMember)
		}
		return statuscode.New(statuscode.Internal)
	}

	if targetUID != callerUID {
		caller, err := e.repo.GetMembership(ctx, groupID, callerUID)
		if err != nil && err != repository.ErrNotFound {
			return statuscode.New(statuscode.Internal)
		}
		if caller == nil {
			return statuscode.New(statuscode.AuthDenied)
		}
		allowed := caller.Role == domain.RoleOwner ||
			(caller.Role == domain.RoleManager && target.Role == domain.RoleMember)
		if !allowed {
			return statuscode.New(statuscode.AuthDenied)
		}
	}

	if err := e.repo.RemoveMembership(ctx, groupID, targetUID); err != nil {
		if err == repository.ErrNotFound {
			return statuscode.New(statuscode.NotMember)
		}
		return statuscode.New(statuscode.Internal)
	}

	if e.metrics != nil {
		e.metrics.Kicks.Inc()
	}
	if targetUID == callerUID && target.Role == domain.RoleOwner {
		e.logger.Warn("owner left group, group is now ownerless", "group_id", groupID, "uid", targetUID)
	}
	e.publish(ctx, events.MemberKicked, events.Payload{GroupID: groupID, UID: targetUID, ActorUID: callerUID})
	e.logger.Info("member removed", "group_id", groupID, "uid", targetUID, "by", callerUID)
	return nil
}

func (e *Engine) ChangeGroupName(ctx context.Context, groupID, callerUID uint64, name string) error {
	unlock := e.locks.Lock(groupID)
	defer unlock()

	if _, err := e.repo.GetGroup(ctx, groupID); err != nil {
		if err == repository.ErrNotFound {
			return statuscode.New(statuscode.NotFound)
		}
		return statuscode.New(statuscode.Internal)
	}

	caller, err := e.repo.GetMembership(ctx, groupID, callerUID)
	if err != nil && err != repository.ErrNotFound {
		return statuscode.New(statuscode.Internal)
	}
	if caller == nil || caller.Role.Rank() < domain.RoleManager.Rank() {
		return statuscode.New(statuscode.AuthDenied)
	}

	if err := e.repo.UpdateGroupName(ctx, groupID, name); err != nil {
		return statuscode.New(statuscode.Internal)
	}

	e.publish(ctx, events.GroupRenamed, events.Payload{GroupID: groupID, ActorUID: callerUID})
	e.logger.Info("group renamed", "group_id", groupID, "by", callerUID)
	return nil
}

// ChangeGroupPassword is owner-only; a manager is deliberately excluded —
// see DESIGN.md Open Question 3.
func (e *Engine) ChangeGroupPassword(ctx context.Context, groupID uint64, password string, callerUID uint64) error {
	unlock := e.locks.Lock(groupID)
	defer unlock()

	if _, err := e.repo.GetGroup(ctx, groupID); err != nil {
		if err == repository.ErrNotFound {
			return statuscode.New(statuscode.NotFound)
		}
		return statuscode.New(statuscode.Internal)
	}

	caller, err := e.repo.GetMembership(ctx, groupID, callerUID)
	if err != nil && err != repository.ErrNotFound {
		return statuscode.New(statuscode.Internal)
	}
	if caller == nil || caller.Role != domain.RoleOwner {
		return statuscode.New(statuscode.AuthDenied)
	}

	if err := e.repo.UpdateGroupPassword(ctx, groupID, password); err != nil {
		return statuscode.New(statuscode.Internal)
	}

	e.publish(ctx, events.GroupPasswordChanged, events.Payload{GroupID: groupID, ActorUID: callerUID})
	e.logger.Info("group password changed", "group_id", groupID, "by", callerUID)
	return nil
}

// SetUserType promotes/demotes a current member. Owner-only; target must be
// a current non-owner member distinct from the caller.
func (e *Engine) SetUserType(ctx context.Context, groupID, callerUID uint64, username string, newRole domain.Role) error {
	unlock := e.locks.Lock(groupID)
	defer unlock()

	if _, err := e.repo.GetGroup(ctx, groupID); err != nil {
		if err == repository.ErrNotFound {
			return statuscode.New(statuscode.NotFound)
		}
		return statuscode.New(statuscode.Internal)
	}

	caller, err := e.repo.GetMembership(ctx, groupID, callerUID)
	if err != nil && err != repository.ErrNotFound {
		return statuscode.New(statuscode.Internal)
	}
	if caller == nil || caller.Role != domain.RoleOwner {
		return statuscode.New(statuscode.AuthDenied)
	}

	if newRole != domain.RoleManager && newRole != domain.RoleMember {
		return statuscode.New(statuscode.BadArgument)
	}

	targetUID, found, err := e.resolver.ResolveUsername(ctx, username)
	if err != nil {
		return statuscode.New(statuscode.Upstream)
	}
	if !found {
		return statuscode.New(statuscode.NotFound)
	}
	if targetUID == callerUID {
		return statuscode.New(statuscode.AuthDenied)
	}

	if _, err := e.repo.GetMembership(ctx, groupID, targetUID); err != nil {
		if err == repository.ErrNotFound {
			return statuscode.New(statuscode.NotMember)
		}
		return statuscode.New(statuscode.Internal)
	}

	if err := e.repo.SetMembershipRole(ctx, groupID, targetUID, newRole); err != nil {
		return statuscode.New(statuscode.Internal)
	}

	if e.metrics != nil {
		e.metrics.RoleChanges.Inc()
	}
	e.publish(ctx, events.MemberRoleChanged, events.Payload{GroupID: groupID, UID: targetUID, ActorUID: callerUID})
	e.logger.Info("member role changed", "group_id", groupID, "uid", targetUID, "role", newRole.String(), "by", callerUID)
	return nil
}

func (e *Engine) GetGroupsByUID(ctx context.Context, uid uint64) ([]GroupSummary, error) {
	memberships, err := e.repo.ListGroupsByUID(ctx, uid)
	if err != nil {
		return nil, statuscode.New(statuscode.Internal)
	}

	summaries := make([]GroupSummary, 0, len(memberships))
	for _, m := range memberships {
		g, err := e.repo.GetGroup(ctx, m.GroupID)
		if err != nil {
			continue
		}
		summaries = append(summaries, GroupSummary{GroupID: g.ID, Name: g.Name})
	}
	return summaries, nil
}

func (e *Engine) publish(ctx context.Context, eventType events.Type, payload events.Payload) {
	if e.producer == nil {
		return
	}
	payload.At = time.Now()
	e.producer.Publish(ctx, eventType, payload)
}
