package state

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/euba/PaintApp/internal/geom"
)

func lineShape(id string) Shape {
	return Shape{
		ID:     id,
		Kind:   KindLine,
		Color:  Black,
		Width:  WidthNormal,
		Stroke: WidthNormal.StrokePx(),
		Style:  StyleSolid,
		Points: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 10}},
	}
}

func activeIDs(l *Log) []string {
	var ids []string
	for _, s := range l.ActiveShapes() {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestUndoRedoRoundTrip(t *testing.T) {
	for _, n := range []int{1, 7, 50} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			var l Log
			for i := 0; i < n; i++ {
				l.Commit(lineShape(fmt.Sprintf("s%d", i)))
			}
			want := activeIDs(&l)
			require.Len(t, want, n)

			for i := 0; i < n; i++ {
				require.NoError(t, l.Undo())
			}
			assert.Empty(t, l.ActiveShapes())
			assert.ErrorIs(t, l.Undo(), ErrNothingToUndo)

			for i := 0; i < n; i++ {
				require.NoError(t, l.Redo())
			}
			assert.Equal(t, want, activeIDs(&l))
			assert.ErrorIs(t, l.Redo(), ErrNothingToRedo)
		})
	}
}

func TestCommitEvictsOldest(t *testing.T) {
	var l Log
	for i := 0; i < MaxEntries+1; i++ {
		l.Commit(lineShape(fmt.Sprintf("s%d", i)))
	}
	require.Equal(t, MaxEntries, l.Len())

	ids := activeIDs(&l)
	require.Len(t, ids, MaxEntries)
	assert.Equal(t, "s1", ids[0], "oldest entry should be evicted")
	assert.Equal(t, fmt.Sprintf("s%d", MaxEntries), ids[len(ids)-1])

	// cursor compensated: undo still peels entries one at a time
	require.NoError(t, l.Undo())
	assert.Len(t, l.ActiveShapes(), MaxEntries-1)
}

func TestEvictionWithPendingRedo(t *testing.T) {
	var l Log
	for i := 0; i < MaxEntries; i++ {
		l.Commit(lineShape(fmt.Sprintf("s%d", i)))
	}
	require.NoError(t, l.Undo())
	require.NoError(t, l.Undo())
	require.True(t, l.CanRedo())

	// committing truncates the redo branch first, so the log is back
	// under capacity and nothing is evicted
	l.Commit(lineShape("new"))
	assert.False(t, l.CanRedo())
	assert.Equal(t, MaxEntries-1, l.Len())

	ids := activeIDs(&l)
	assert.Equal(t, "new", ids[len(ids)-1])
	assert.Equal(t, "s0", ids[0])
}

func TestCommitDestroysRedoBranch(t *testing.T) {
	var l Log
	l.Commit(lineShape("a"))
	l.Commit(lineShape("b"))
	require.NoError(t, l.Undo())

	l.Commit(lineShape("c"))
	assert.Equal(t, []string{"a", "c"}, activeIDs(&l))
	assert.ErrorIs(t, l.Redo(), ErrNothingToRedo)
}

func TestClearMarkerReplay(t *testing.T) {
	var l Log
	l.Commit(lineShape("a"))
	l.Commit(lineShape("b"))
	l.CommitClear()
	l.Commit(lineShape("c"))

	assert.Equal(t, []string{"c"}, activeIDs(&l))

	// undoing past the clear restores the pre-clear shapes
	require.NoError(t, l.Undo())
	assert.Empty(t, l.ActiveShapes())
	require.NoError(t, l.Undo())
	assert.Equal(t, []string{"a", "b"}, activeIDs(&l))

	require.NoError(t, l.Redo())
	assert.Empty(t, l.ActiveShapes())
}

func TestCanUndoCanRedo(t *testing.T) {
	var l Log
	assert.False(t, l.CanUndo())
	assert.False(t, l.CanRedo())

	l.Commit(lineShape("a"))
	assert.True(t, l.CanUndo())
	assert.False(t, l.CanRedo())

	require.NoError(t, l.Undo())
	assert.False(t, l.CanUndo())
	assert.True(t, l.CanRedo())
}
