package state

import "errors"

// MaxEntries bounds the history log. Committing past the bound evicts
// the oldest entry.
const MaxEntries = 50

var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Entry is one replayable unit of history: a committed shape or a
// clear marker.
type Entry struct {
	Shape *Shape `json:"shape,omitempty"`
	Clear bool   `json:"clear,omitempty"`
}

// Log is an append-only operation log with a cursor. Entries at
// indices below the cursor are active; entries at or above it are
// redoable and are destroyed when a new entry is committed.
type Log struct {
	entries []Entry
	cursor  int
}

// Commit truncates any redo branch, appends the shape, and advances
// the cursor. At capacity the oldest entry is evicted and the cursor
// compensated. Always succeeds.
func (l *Log) Commit(s Shape) {
	l.commit(Entry{Shape: &s})
}

// CommitClear records a clear-canvas operation. Replay resets to empty
// at the marker, so undoing past it restores the pre-clear shapes.
func (l *Log) CommitClear() {
	l.commit(Entry{Clear: true})
}

func (l *Log) commit(e Entry) {
	l.entries = append(l.entries[:l.cursor], e)
	l.cursor = len(l.entries)
	if len(l.entries) > MaxEntries {
		l.entries = l.entries[1:]
		l.cursor--
	}
}

// Undo steps the cursor back one entry. At the beginning of history it
// is a no-op returning ErrNothingToUndo.
func (l *Log) Undo() error {
	if l.cursor == 0 {
		return ErrNothingToUndo
	}
	l.cursor--
	return nil
}

// Redo steps the cursor forward one entry. With no redo branch it is a
// no-op returning ErrNothingToRedo.
func (l *Log) Redo() error {
	if l.cursor == len(l.entries) {
		return ErrNothingToRedo
	}
	l.cursor++
	return nil
}

func (l *Log) CanUndo() bool { return l.cursor > 0 }

func (l *Log) CanRedo() bool { return l.cursor < len(l.entries) }

// Len reports the number of recorded entries, active or redoable.
func (l *Log) Len() int { return len(l.entries) }

// Reset drops the entire log.
func (l *Log) Reset() {
	l.entries = nil
	l.cursor = 0
}

// ActiveShapes replays entries up to the cursor and returns the shapes
// that are currently visible. Every clear marker resets the result to
// empty. Replay is a full reconstruction each call, so the returned
// slice never drifts from history truth.
func (l *Log) ActiveShapes() []Shape {
	var shapes []Shape
	for _, e := range l.entries[:l.cursor] {
		if e.Clear {
			shapes = shapes[:0]
			continue
		}
		if e.Shape != nil {
			shapes = append(shapes, *e.Shape)
		}
	}
	return shapes
}
