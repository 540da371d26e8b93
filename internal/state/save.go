package state

import (
	"encoding/json"
	"fmt"
	"io"
)

// drawingFile is the on-disk format: the visible shapes at save time.
// History and redo state are not persisted.
type drawingFile struct {
	Version int     `json:"version"`
	Shapes  []Shape `json:"shapes"`
}

const fileVersion = 1

// Save writes the currently visible shapes as JSON.
func (c *Canvas) Save(w io.Writer) error {
	doc := drawingFile{Version: fileVersion, Shapes: c.log.ActiveShapes()}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode drawing: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write drawing: %w", err)
	}
	return nil
}

// Load replaces the canvas contents with a saved drawing. The history
// log restarts with one commit per loaded shape, so each can be undone
// individually.
func (c *Canvas) Load(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read drawing: %w", err)
	}
	var doc drawingFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse drawing: %w", err)
	}
	c.draft = nil
	c.log.Reset()
	for _, s := range doc.Shapes {
		if len(s.Points) == 0 {
			continue
		}
		c.log.Commit(s)
	}
	return nil
}
