package model

import (
	"fmt"
	"time"
)

// MaterialType selects which payload fields a Material carries.
type MaterialType string

const (
	MaterialFile MaterialType = "file"
	MaterialLink MaterialType = "link"
)

// ParseMaterialType validates a raw type string.
func ParseMaterialType(s string) (MaterialType, error) {
	switch t := MaterialType(s); t {
	case MaterialFile, MaterialLink:
		return t, nil
	default:
		return "", fmt.Errorf("unknown material type %q", s)
	}
}

// Material is a shared study resource.
//
// Link is set only for MaterialLink. FileName and FileSize are set only for
// MaterialFile and describe the picked file; the file's bytes are never read
// or stored. FileSize is non-nil whenever FileName is set, including for
// zero-byte files.
type Material struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Subject     string       `json:"subject"`
	Type        MaterialType `json:"type"`
	Description string       `json:"description"`
	UploadedBy  string       `json:"uploadedBy"`
	CreatedAt   time.Time    `json:"createdAt"`
	Link        string       `json:"link,omitempty"`
	FileName    string       `json:"fileName,omitempty"`
	FileSize    *int64       `json:"fileSize,omitempty"`
}
