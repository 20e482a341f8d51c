package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sakif/educonnect/internal/apperror"
	"github.com/sakif/educonnect/internal/model"
	"github.com/sakif/educonnect/internal/storage"
)

// GroupService creates, joins and lists study groups.
type GroupService struct {
	groups *storage.Collection[model.Group]
	users  *storage.Collection[model.User]
	ids    IDGenerator
	now    func() time.Time
	logger *slog.Logger
}

func NewGroupService(d Deps) *GroupService {
	d = d.withDefaults()
	return &GroupService{
		groups: d.Store.Groups,
		users:  d.Store.Users,
		ids:    d.IDs,
		now:    d.Now,
		logger: d.Logger,
	}
}

// GroupInput is what the "create group" form submits.
type GroupInput struct {
	Name        string `json:"name"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

// ListUserGroups returns the groups user created or belongs to, in
// collection order.
func (s *GroupService) ListUserGroups(ctx context.Context, user *model.User) ([]model.Group, error) {
	groups, err := s.groups.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("service/group: loading groups: %w", err)
	}

	mine := make([]model.Group, 0, len(groups))
	for _, g := range groups {
		if g.CreatedBy == user.ID || g.HasMember(user.ID) {
			mine = append(mine, g)
		}
	}
	return mine, nil
}

// CreateGroup stores a new group with user as creator and only member.
func (s *GroupService) CreateGroup(ctx context.Context, user *model.User, in GroupInput) (*model.Group, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperror.ValidationFailed("name", MsgGroupNameRequired)
	}
	subject := strings.TrimSpace(in.Subject)
	if subject == "" {
		return nil, apperror.ValidationFailed("subject", MsgSubjectRequired)
	}

	group := model.Group{
		ID:          s.ids.NewID(),
		Name:        name,
		Subject:     subject,
		Description: strings.TrimSpace(in.Description),
		CreatedBy:   user.ID,
		Members:     []string{user.ID},
		CreatedAt:   s.now(),
	}

	if err := s.groups.Append(ctx, group); err != nil {
		s.logger.Error("failed to create group",
			slog.String("name", name),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("service/group: saving group: %w", err)
	}

	s.logger.Info("group created",
		slog.String("groupID", group.ID),
		slog.String("userID", user.ID),
	)
	return &group, nil
}

// ListAvailableGroups returns the groups user is not a member of, with the
// creator's name resolved for display.
func (s *GroupService) ListAvailableGroups(ctx context.Context, user *model.User) ([]model.GroupView, error) {
	groups, err := s.groups.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("service/group: loading groups: %w", err)
	}
	users, err := s.users.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("service/group: loading users: %w", err)
	}

	available := make([]model.GroupView, 0, len(groups))
	for _, g := range groups {
		if g.HasMember(user.ID) {
			continue
		}
		available = append(available, model.GroupView{
			Group:       g,
			CreatorName: model.FindUserByID(users, g.CreatedBy).NameOr(model.UnknownUserName),
			MemberCount: len(g.Members),
		})
	}
	return available, nil
}

// JoinGroup adds user to the group's members.
//
// It reports false without writing anything when the group does not exist
// or user is already a member, so repeating a join never duplicates the
// membership.
func (s *GroupService) JoinGroup(ctx context.Context, user *model.User, groupID string) (bool, error) {
	if strings.TrimSpace(groupID) == "" {
		return false, apperror.ValidationFailed("groupId", MsgGroupIDRequired)
	}

	joined := false
	err := s.groups.Update(ctx, func(groups []model.Group) ([]model.Group, bool) {
		for i := range groups {
			if groups[i].ID != groupID {
				continue
			}
			if groups[i].HasMember(user.ID) {
				return groups, false
			}
			groups[i].Members = append(groups[i].Members, user.ID)
			joined = true
			return groups, true
		}
		return groups, false
	})
	if err != nil {
		return false, fmt.Errorf("service/group: joining group %s: %w", groupID, err)
	}

	if joined {
		s.logger.Info("member joined group",
			slog.String("groupID", groupID),
			slog.String("userID", user.ID),
		)
	}
	return joined, nil
}
