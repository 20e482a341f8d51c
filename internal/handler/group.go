package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/educonnect/internal/service"
)

// GroupHandler serves the "my groups" and "available groups" panels.
type GroupHandler struct {
	groups *service.GroupService
	logger *slog.Logger
}

func NewGroupHandler(groups *service.GroupService, logger *slog.Logger) *GroupHandler {
	return &GroupHandler{groups: groups, logger: logger}
}

// HandleListMine returns the groups the user created or joined.
//
// HTTP: GET /api/groups
func (h *GroupHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	user := userFrom(w, r)
	if user == nil {
		return
	}
	groups, err := h.groups.ListUserGroups(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

// HandleCreate creates a group with the user as its first member.
//
// HTTP: POST /api/groups
// REQUEST BODY: {"name":"Cálculo I","subject":"Matemática","description":"..."}
func (h *GroupHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := userFrom(w, r)
	if user == nil {
		return
	}
	var in service.GroupInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.logger.Warn("invalid request body", slog.String("path", r.URL.Path))
		writeError(w, err)
		return
	}

	group, err := h.groups.CreateGroup(r.Context(), user, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, group)
}

// HandleListAvailable returns the groups the user could join.
//
// HTTP: GET /api/groups/available
func (h *GroupHandler) HandleListAvailable(w http.ResponseWriter, r *http.Request) {
	user := userFrom(w, r)
	if user == nil {
		return
	}
	groups, err := h.groups.ListAvailableGroups(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

// HandleJoin adds the user to a group. Joining twice, or joining an unknown
// group, answers {"joined": false}.
//
// HTTP: POST /api/groups/{id}/join
func (h *GroupHandler) HandleJoin(w http.ResponseWriter, r *http.Request) {
	user := userFrom(w, r)
	if user == nil {
		return
	}
	joined, err := h.groups.JoinGroup(r.Context(), user, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"joined": joined})
}
