package model

import (
	"slices"
	"time"
)

// Group is a study group. The creator is always a member from creation on,
// and Members only ever grows.
type Group struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	CreatedBy   string    `json:"createdBy"`
	Members     []string  `json:"members"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HasMember reports whether userID is in the member list.
func (g Group) HasMember(userID string) bool {
	return slices.Contains(g.Members, userID)
}

// GroupView is a Group as listed to a user who may join it.
type GroupView struct {
	Group
	CreatorName string `json:"creatorName"`
	MemberCount int    `json:"memberCount"`
}
