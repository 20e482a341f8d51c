package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/educonnect/internal/service"
)

// MaterialHandler serves the "my materials" panel. Files are described by
// name and size only; their bytes are never uploaded.
type MaterialHandler struct {
	materials *service.MaterialService
	logger    *slog.Logger
}

func NewMaterialHandler(materials *service.MaterialService, logger *slog.Logger) *MaterialHandler {
	return &MaterialHandler{materials: materials, logger: logger}
}

// HandleListMine returns the materials the user shared.
//
// HTTP: GET /api/materials
func (h *MaterialHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	user := userFrom(w, r)
	if user == nil {
		return
	}
	materials, err := h.materials.ListUserMaterials(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, materials)
}

// HandleShare stores a material.
//
// HTTP: POST /api/materials
// REQUEST BODY (link): {"title":"Limites","subject":"Matemática","type":"link","link":"https://..."}
// REQUEST BODY (file): {"title":"Lista 1","type":"file","fileName":"lista1.pdf","fileSize":20480}
func (h *MaterialHandler) HandleShare(w http.ResponseWriter, r *http.Request) {
	user := userFrom(w, r)
	if user == nil {
		return
	}
	var in service.MaterialInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.logger.Warn("invalid request body", slog.String("path", r.URL.Path))
		writeError(w, err)
		return
	}

	material, err := h.materials.ShareMaterial(r.Context(), user, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, material)
}
