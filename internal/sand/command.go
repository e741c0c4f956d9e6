package sand

import (
	"fmt"
	"unicode"
)

// EventKind enumerates the commands a front end can issue.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventTogglePause
	EventSetPaused
	EventReset
	EventSelectMaterial
	EventSelectBrush
	EventPaint
	EventErase
)

func (k EventKind) String() string {
	switch k {
	case EventTogglePause:
		return "toggle-pause"
	case EventSetPaused:
		return "set-paused"
	case EventReset:
		return "reset"
	case EventSelectMaterial:
		return "select-material"
	case EventSelectBrush:
		return "select-brush"
	case EventPaint:
		return "paint"
	case EventErase:
		return "erase"
	default:
		return "none"
	}
}

// Event is a UI command. X and Y are grid coordinates for paint and erase;
// Arg carries the material id, brush id, seed or pause flag (non-zero means
// paused) depending on Kind.
type Event struct {
	Kind EventKind
	X, Y int
	Arg  int64
}

// Apply dispatches an event to the matching setter.
func (s *Simulation) Apply(ev Event) error {
	switch ev.Kind {
	case EventNone:
		return nil
	case EventTogglePause:
		s.SetPaused(!s.paused)
	case EventSetPaused:
		s.SetPaused(ev.Arg != 0)
	case EventReset:
		s.Reset(ev.Arg)
	case EventSelectMaterial:
		if ev.Arg < 0 || ev.Arg > 255 || !s.table.Valid(MaterialID(ev.Arg)) {
			return fmt.Errorf("%w: %d", ErrUnknownMaterial, ev.Arg)
		}
		s.SelectMaterial(MaterialID(ev.Arg))
	case EventSelectBrush:
		if ev.Arg < 0 || ev.Arg >= int64(s.brushes.Len()) {
			return fmt.Errorf("%w: %d", ErrUnknownBrush, ev.Arg)
		}
		s.SelectBrush(BrushID(ev.Arg))
	case EventPaint:
		return s.Paint(ev.X, ev.Y)
	case EventErase:
		return s.Erase(ev.X, ev.Y)
	default:
		return fmt.Errorf("unknown event kind %d", ev.Kind)
	}
	return nil
}

// EventForKey maps a keyboard rune to a command: material keys select a
// material, brush keys select a brush and space toggles the pause. The
// second return is false for unbound keys.
func (s *Simulation) EventForKey(r rune) (Event, bool) {
	if r == ' ' {
		return Event{Kind: EventTogglePause}, true
	}
	if m, ok := s.table.ByKey(r); ok {
		return Event{Kind: EventSelectMaterial, Arg: int64(m.ID)}, true
	}
	if b, ok := s.brushes.ByKey(unicode.ToLower(r)); ok {
		return Event{Kind: EventSelectBrush, Arg: int64(b)}, true
	}
	return Event{}, false
}
