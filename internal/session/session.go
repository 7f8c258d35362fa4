// Package session binds the partition core to input events for the two
// interaction modes and exposes what a front end must draw each frame.
package session

import (
	"fmt"

	"github.com/piwi3910/rectcut/internal/drag"
	"github.com/piwi3910/rectcut/internal/input"
	"github.com/piwi3910/rectcut/internal/model"
	"github.com/piwi3910/rectcut/internal/partition"
)

// Frame is everything a front end draws for one refresh.
type Frame struct {
	Bounds      model.Rect
	Rects       []model.Rect
	Preview     *model.Segment
	Cursor      drag.CursorHint
	Orientation model.Orientation
	Mode        model.Mode
}

// Session is one interaction mode over a partition.
type Session interface {
	// Handlers builds the event table. quit stops the control loop.
	Handlers(quit func()) input.Handlers
	Frame() Frame
	Partition() *partition.Partition
	Mode() model.Mode
}

// New returns the session for cfg.Mode rooted at cfg.RootRect().
func New(cfg model.AppConfig) (Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	root := cfg.RootRect()
	Logger().Info("session start", "mode", cfg.Mode, "root", root.String())
	switch cfg.Mode {
	case model.ModeDrag:
		return NewDragSession(root), nil
	default:
		return NewCutSession(root), nil
	}
}

// isQuitKey reports whether key ends the session.
func isQuitKey(key string) bool {
	return key == input.KeyEscape || key == input.KeyQ
}

func quitHandler(quit func()) input.Handler {
	return func(ev input.Event) {
		if isQuitKey(ev.Key) {
			Logger().Info("quit requested", "key", ev.Key)
			quit()
		}
	}
}
