package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/educonnect/internal/service"
)

// MentorHandler serves mentor profiles and mentorings.
type MentorHandler struct {
	mentors *service.MentorService
	logger  *slog.Logger
}

func NewMentorHandler(mentors *service.MentorService, logger *slog.Logger) *MentorHandler {
	return &MentorHandler{mentors: mentors, logger: logger}
}

type mentorRequest struct {
	Subject    string `json:"subject"`
	Experience string `json:"experience"`
}

type connectRequest struct {
	Subject string `json:"subject"`
}

// HandleListMentorings returns the user's mentorings with role and other party.
//
// HTTP: GET /api/mentorings
func (h *MentorHandler) HandleListMentorings(w http.ResponseWriter, r *http.Request) {
	user := userFrom(w, r)
	if user == nil {
		return
	}
	views, err := h.mentors.ListUserMentorings(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// HandleRegister adds a mentor profile for the user.
//
// HTTP: POST /api/mentors
// REQUEST BODY: {"subject":"Física","experience":"5 anos"}
func (h *MentorHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	user := userFrom(w, r)
	if user == nil {
		return
	}
	var in mentorRequest
	if err := decodeJSON(w, r, &in); err != nil {
		h.logger.Warn("invalid request body", slog.String("path", r.URL.Path))
		writeError(w, err)
		return
	}

	profile, err := h.mentors.RegisterAsMentor(r.Context(), user, in.Subject, in.Experience)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, profile)
}

// HandleListAvailable returns other users' mentor profiles.
//
// HTTP: GET /api/mentors/available
func (h *MentorHandler) HandleListAvailable(w http.ResponseWriter, r *http.Request) {
	user := userFrom(w, r)
	if user == nil {
		return
	}
	views, err := h.mentors.ListAvailableMentors(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// HandleConnect makes the user a student of the mentor in the path.
// {userID} is the mentor's user id, not a profile id.
//
// HTTP: POST /api/mentors/{userID}/connect
// REQUEST BODY: {"subject":"Física"}
func (h *MentorHandler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	user := userFrom(w, r)
	if user == nil {
		return
	}
	var in connectRequest
	if err := decodeJSON(w, r, &in); err != nil {
		h.logger.Warn("invalid request body", slog.String("path", r.URL.Path))
		writeError(w, err)
		return
	}

	mentoring, err := h.mentors.ConnectWithMentor(r.Context(), user, chi.URLParam(r, "userID"), in.Subject)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mentoring)
}
