// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"sync"

	"github.com/kittyfont/kittyfont/internal/application/port"
	"github.com/kittyfont/kittyfont/internal/logging"
)

// panelHandle tags a live panel with a sequence number for logging.
type panelHandle struct {
	id int
}

func (h panelHandle) PanelID() int { return h.id }

// Surface is the terminal implementation of port.Surface. The navigation
// engine writes panel state in and the Bubble Tea session reads a snapshot
// back out on every View. A mutex covers the handoff because engine calls
// arrive from the update loop while repaints happen on the renderer
// goroutine.
type Surface struct {
	mu     sync.Mutex
	nextID int
	id     int
	spec   *port.PanelSpec
}

// NewSurface creates a surface with no open panel.
func NewSurface() *Surface {
	return &Surface{}
}

// OpenPanel implements port.Surface.
func (s *Surface) OpenPanel(ctx context.Context, spec port.PanelSpec) (port.PanelHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.id = s.nextID
	snapshot := spec
	snapshot.Lines = append([]string(nil), spec.Lines...)
	s.spec = &snapshot

	logging.FromContext(ctx).Debug().
		Int("panel_id", s.id).
		Str("panel", string(spec.Kind)).
		Msg("surface panel opened")

	return panelHandle{id: s.id}, nil
}

// UpdatePanel implements port.Surface.
func (s *Surface) UpdatePanel(_ context.Context, h port.PanelHandle, lines []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(h); err != nil {
		return err
	}
	s.spec.Lines = append([]string(nil), lines...)
	return nil
}

// MoveCursor implements port.Surface.
func (s *Surface) MoveCursor(_ context.Context, h port.PanelHandle, row int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(h); err != nil {
		return err
	}
	s.spec.Cursor = row
	return nil
}

// ClosePanel implements port.Surface.
func (s *Surface) ClosePanel(ctx context.Context, h port.PanelHandle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(h); err != nil {
		return err
	}
	logging.FromContext(ctx).Debug().Int("panel_id", s.id).Msg("surface panel closed")
	s.spec = nil
	s.id = 0
	return nil
}

// Snapshot returns a copy of the open panel, if any.
func (s *Surface) Snapshot() (port.PanelSpec, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spec == nil {
		return port.PanelSpec{}, false
	}
	snapshot := *s.spec
	snapshot.Lines = append([]string(nil), s.spec.Lines...)
	return snapshot, true
}

// check verifies the handle refers to the panel currently on the surface.
func (s *Surface) check(h port.PanelHandle) error {
	if h == nil {
		return fmt.Errorf("nil panel handle")
	}
	if s.spec == nil || h.PanelID() != s.id {
		return fmt.Errorf("panel %d is not open", h.PanelID())
	}
	return nil
}

var _ port.Surface = (*Surface)(nil)
