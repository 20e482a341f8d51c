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

// MentorService handles mentor profiles and mentor–student connections.
type MentorService struct {
	mentors    *storage.Collection[model.MentorProfile]
	mentorings *storage.Collection[model.Mentoring]
	users      *storage.Collection[model.User]
	ids        IDGenerator
	now        func() time.Time
	logger     *slog.Logger
}

func NewMentorService(d Deps) *MentorService {
	d = d.withDefaults()
	return &MentorService{
		mentors:    d.Store.Mentors,
		mentorings: d.Store.Mentorings,
		users:      d.Store.Users,
		ids:        d.IDs,
		now:        d.Now,
		logger:     d.Logger,
	}
}

// ListUserMentorings returns every mentoring user takes part in, tagged with
// user's role and the other party.
func (s *MentorService) ListUserMentorings(ctx context.Context, user *model.User) ([]model.MentoringView, error) {
	mentorings, err := s.mentorings.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("service/mentor: loading mentorings: %w", err)
	}
	users, err := s.users.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("service/mentor: loading users: %w", err)
	}

	views := make([]model.MentoringView, 0, len(mentorings))
	for _, m := range mentorings {
		var role model.Role
		var otherID string
		switch {
		case m.MentorID == user.ID:
			role, otherID = model.RoleMentor, m.StudentID
		case m.StudentID == user.ID:
			role, otherID = model.RoleStudent, m.MentorID
		default:
			continue
		}

		view := model.MentoringView{Mentoring: m, Role: role}
		other := model.FindUserByID(users, otherID)
		if other != nil {
			pub := other.Public()
			view.OtherParty = &pub
		}
		view.OtherPartyName = other.NameOr(model.UnknownUserName)
		views = append(views, view)
	}
	return views, nil
}

// RegisterAsMentor always adds a new profile, even when user already has
// one for the same subject.
func (s *MentorService) RegisterAsMentor(ctx context.Context, user *model.User, subject, experience string) (*model.MentorProfile, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, apperror.ValidationFailed("subject", MsgSubjectRequired)
	}

	profile := model.MentorProfile{
		ID:         s.ids.NewID(),
		UserID:     user.ID,
		Subject:    subject,
		Experience: strings.TrimSpace(experience),
		CreatedAt:  s.now(),
	}
	if err := s.mentors.Append(ctx, profile); err != nil {
		return nil, fmt.Errorf("service/mentor: saving profile: %w", err)
	}

	s.logger.Info("mentor registered",
		slog.String("profileID", profile.ID),
		slog.String("userID", user.ID),
		slog.String("subject", subject),
	)
	return &profile, nil
}

// ListAvailableMentors returns every profile not owned by user, joined to
// its owner.
func (s *MentorService) ListAvailableMentors(ctx context.Context, user *model.User) ([]model.MentorView, error) {
	profiles, err := s.mentors.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("service/mentor: loading profiles: %w", err)
	}
	users, err := s.users.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("service/mentor: loading users: %w", err)
	}

	views := make([]model.MentorView, 0, len(profiles))
	for _, p := range profiles {
		if p.UserID == user.ID {
			continue
		}
		view := model.MentorView{Profile: p}
		owner := model.FindUserByID(users, p.UserID)
		if owner != nil {
			pub := owner.Public()
			view.Mentor = &pub
		}
		view.Name = owner.NameOr(model.UnknownMentorName)
		views = append(views, view)
	}
	return views, nil
}

// ConnectWithMentor records user as the student of mentorID for subject.
// mentorID is not checked against the mentor profiles.
func (s *MentorService) ConnectWithMentor(ctx context.Context, user *model.User, mentorID, subject string) (*model.Mentoring, error) {
	if strings.TrimSpace(mentorID) == "" {
		return nil, apperror.ValidationFailed("mentorId", MsgMentorIDRequired)
	}

	mentoring := model.Mentoring{
		ID:        s.ids.NewID(),
		MentorID:  mentorID,
		StudentID: user.ID,
		Subject:   subject,
		CreatedAt: s.now(),
	}
	if err := s.mentorings.Append(ctx, mentoring); err != nil {
		return nil, fmt.Errorf("service/mentor: saving mentoring: %w", err)
	}

	s.logger.Info("mentoring created",
		slog.String("mentoringID", mentoring.ID),
		slog.String("mentorID", mentorID),
		slog.String("studentID", user.ID),
	)
	return &mentoring, nil
}
