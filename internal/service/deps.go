package service

import (
	"log/slog"
	"time"

	"github.com/rs/xid"

	"github.com/sakif/educonnect/internal/storage"
)

// IDGenerator hands out entity ids.
type IDGenerator interface {
	NewID() string
}

// XIDGenerator produces xid strings: 20 URL-safe characters, unique across
// processes and sortable by creation time. Two entities created in the same
// millisecond still get distinct ids.
type XIDGenerator struct{}

func (XIDGenerator) NewID() string {
	return xid.New().String()
}

// Deps is what every service is built from.
//
// IDs and Now may be left nil; they default to XIDGenerator and time.Now.
type Deps struct {
	Store  *storage.Store
	IDs    IDGenerator
	Now    func() time.Time
	Logger *slog.Logger
}

func (d Deps) withDefaults() Deps {
	if d.IDs == nil {
		d.IDs = XIDGenerator{}
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return d
}
