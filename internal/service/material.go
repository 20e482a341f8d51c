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

type MaterialService struct {
	materials *storage.Collection[model.Material]
	ids       IDGenerator
	now       func() time.Time
	logger    *slog.Logger
}

func NewMaterialService(d Deps) *MaterialService {
	d = d.withDefaults()
	return &MaterialService{
		materials: d.Store.Materials,
		ids:       d.IDs,
		now:       d.Now,
		logger:    d.Logger,
	}
}

// MaterialInput is what the "share material" form submits.
//
// Link is read for type "link". FileName and FileSize are read for type
// "file"; they come from the picked file's metadata and may be empty when no
// file was picked.
type MaterialInput struct {
	Title       string `json:"title"`
	Subject     string `json:"subject"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Link        string `json:"link"`
	FileName    string `json:"fileName"`
	FileSize    int64  `json:"fileSize"`
}

// ListUserMaterials returns the materials user shared.
func (s *MaterialService) ListUserMaterials(ctx context.Context, user *model.User) ([]model.Material, error) {
	materials, err := s.materials.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("service/material: loading materials: %w", err)
	}

	mine := make([]model.Material, 0, len(materials))
	for _, m := range materials {
		if m.UploadedBy == user.ID {
			mine = append(mine, m)
		}
	}
	return mine, nil
}

// ShareMaterial stores a material. Only the payload fields matching its
// type are kept.
func (s *MaterialService) ShareMaterial(ctx context.Context, user *model.User, in MaterialInput) (*model.Material, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperror.ValidationFailed("title", MsgTitleRequired)
	}
	materialType, err := model.ParseMaterialType(strings.TrimSpace(in.Type))
	if err != nil {
		return nil, apperror.ValidationFailed("type", MsgMaterialTypeInvalid)
	}

	material := model.Material{
		ID:          s.ids.NewID(),
		Title:       title,
		Subject:     strings.TrimSpace(in.Subject),
		Type:        materialType,
		Description: strings.TrimSpace(in.Description),
		UploadedBy:  user.ID,
		CreatedAt:   s.now(),
	}

	switch materialType {
	case model.MaterialLink:
		link := strings.TrimSpace(in.Link)
		if link == "" {
			return nil, apperror.ValidationFailed("link", MsgLinkRequired)
		}
		material.Link = link
	case model.MaterialFile:
		if in.FileSize < 0 {
			return nil, apperror.ValidationFailed("fileSize", MsgFileSizeInvalid)
		}
		if in.FileName != "" {
			size := in.FileSize
			material.FileName = in.FileName
			material.FileSize = &size
		}
	}

	if err := s.materials.Append(ctx, material); err != nil {
		return nil, fmt.Errorf("service/material: saving material: %w", err)
	}

	s.logger.Info("material shared",
		slog.String("materialID", material.ID),
		slog.String("type", string(material.Type)),
		slog.String("userID", user.ID),
	)
	return &material, nil
}
