package model

import "time"

// Mentoring links a mentor and a student around one subject.
// MentorID is not checked against any MentorProfile.
type Mentoring struct {
	ID        string    `json:"id"`
	MentorID  string    `json:"mentorId"`
	StudentID string    `json:"studentId"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"createdAt"`
}

// Role is the side a user takes in a Mentoring.
type Role string

const (
	RoleMentor  Role = "Mentor"
	RoleStudent Role = "Estudante"
)

// MentoringView is a Mentoring seen from one of its two parties.
// OtherPartyName falls back to UnknownUserName when the other user is gone.
type MentoringView struct {
	Mentoring
	Role           Role        `json:"role"`
	OtherParty     *PublicUser `json:"otherParty,omitempty"`
	OtherPartyName string      `json:"otherPartyName"`
}

// MentorProfile advertises a user as a mentor for a subject.
// A user may hold any number of profiles, including repeats.
type MentorProfile struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Subject    string    `json:"subject"`
	Experience string    `json:"experience"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MentorView is a MentorProfile joined to its owner.
type MentorView struct {
	Profile MentorProfile `json:"profile"`
	Mentor  *PublicUser   `json:"mentor,omitempty"`
	Name    string        `json:"name"`
}
