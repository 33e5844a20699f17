package meshio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/roomnav/geom"
	"github.com/katalvlaran/roomnav/rooms"
)

// Version is the document format written by this package.
const Version = 1

// ErrInvalidDocument is returned for documents that cannot be decoded or
// whose rooms and portals are inconsistent.
var ErrInvalidDocument = errors.New("meshio: invalid document")

// Orientation names used in documents.
const (
	Vertical   = "vertical"
	Horizontal = "horizontal"
)

// Document is the serialised form of a decomposed map.
type Document struct {
	Version int      `json:"version" jsonschema:"title=Format version,description=Document format version; currently 1"`
	Width   int      `json:"width" jsonschema:"title=Grid width,description=Number of grid columns"`
	Height  int      `json:"height" jsonschema:"title=Grid height,description=Number of grid rows"`
	Areas   []Area   `json:"rooms" jsonschema:"title=Rooms,description=Room rectangles in discovery order; the position in the list is the room id"`
	Portals []Portal `json:"portals" jsonschema:"title=Portals,description=Every connection between two rooms listed once"`
}

// Area is one room of a Document.
type Area struct {
	ID     int `json:"id" jsonschema:"description=Room id; equals the position in the rooms list"`
	X      int `json:"x" jsonschema:"description=Leftmost column"`
	Y      int `json:"y" jsonschema:"description=Topmost row"`
	Width  int `json:"width" jsonschema:"description=Columns covered; positive"`
	Height int `json:"height" jsonschema:"description=Rows covered; positive"`
}

// Portal is one connection of a Document.
type Portal struct {
	ID          string     `json:"id" jsonschema:"pattern=^[0-9]+-[0-9]+$,description=Lower and higher room id joined by a dash"`
	Rooms       [2]int     `json:"rooms" jsonschema:"description=The two room ids in ascending order"`
	Start       geom.Point `json:"start" jsonschema:"description=First end of the shared border segment"`
	End         geom.Point `json:"end" jsonschema:"description=Second end of the shared border segment"`
	Orientation string     `json:"orientation" jsonschema:"description=vertical or horizontal"`
}

// NewDocument captures rs, decomposed from a width×height grid.
// Each connection is stored once, under the lower of its two rooms.
func NewDocument(width, height int, rs []rooms.Room) Document {
	doc := Document{
		Version: Version,
		Width:   width,
		Height:  height,
		Areas:   make([]Area, 0, len(rs)),
		Portals: []Portal{},
	}
	for _, r := range rs {
		doc.Areas = append(doc.Areas, Area{ID: r.ID, X: r.Area.X, Y: r.Area.Y, Width: r.Area.Width, Height: r.Area.Height})
		for _, c := range r.Connections {
			if c.RoomIDs[0] != r.ID {
				continue
			}
			doc.Portals = append(doc.Portals, portalOf(c))
		}
	}
	return doc
}

func portalOf(c rooms.Connection) Portal {
	o := Horizontal
	if c.Vertical() {
		o = Vertical
	}
	return Portal{ID: c.ID(), Rooms: c.RoomIDs, Start: c.Start, End: c.End, Orientation: o}
}

// Rooms rebuilds the rooms of the document with their connections.
//
// Returns ErrInvalidDocument when the version is unknown, room ids are not
// 0..n-1 in order, a room is empty, leaves the grid or overlaps another, or
// the stored portals differ from the ones the areas imply.
func (d Document) Rooms() ([]rooms.Room, error) {
	if d.Version != Version {
		return nil, fmt.Errorf("%w: version %d, want %d", ErrInvalidDocument, d.Version, Version)
	}
	if d.Width < 0 || d.Height < 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidDocument, d.Width, d.Height)
	}
	bounds := geom.Area{Width: d.Width, Height: d.Height}

	rs := make([]rooms.Room, len(d.Areas))
	for i, a := range d.Areas {
		area := geom.Area{X: a.X, Y: a.Y, Width: a.Width, Height: a.Height}
		switch {
		case a.ID != i:
			return nil, fmt.Errorf("%w: room at position %d has id %d", ErrInvalidDocument, i, a.ID)
		case area.Empty():
			return nil, fmt.Errorf("%w: room %d is empty", ErrInvalidDocument, i)
		case area.X < 0 || area.Y < 0 || area.Right() > bounds.Right() || area.Bottom() > bounds.Bottom():
			return nil, fmt.Errorf("%w: room %d %v outside %dx%d grid", ErrInvalidDocument, i, area, d.Width, d.Height)
		}
		for j := 0; j < i; j++ {
			if rs[j].Area.Overlaps(area) {
				return nil, fmt.Errorf("%w: rooms %d and %d overlap", ErrInvalidDocument, j, i)
			}
		}
		rs[i] = rooms.Room{ID: i, Area: area}
	}
	rooms.Connect(rs)

	stored := make(map[string]Portal, len(d.Portals))
	for _, p := range d.Portals {
		if _, dup := stored[p.ID]; dup {
			return nil, fmt.Errorf("%w: portal %s listed twice", ErrInvalidDocument, p.ID)
		}
		stored[p.ID] = p
	}
	derived := 0
	for _, r := range rs {
		for _, c := range r.Connections {
			if c.RoomIDs[0] != r.ID {
				continue
			}
			derived++
			p, ok := stored[c.ID()]
			if !ok {
				return nil, fmt.Errorf("%w: portal %s missing", ErrInvalidDocument, c.ID())
			}
			if p != portalOf(c) {
				return nil, fmt.Errorf("%w: portal %s does not match its rooms", ErrInvalidDocument, c.ID())
			}
		}
	}
	if derived != len(stored) {
		return nil, fmt.Errorf("%w: %d portals listed, rooms imply %d", ErrInvalidDocument, len(stored), derived)
	}

	return rs, nil
}

// Encode writes doc to w as indented JSON.
func Encode(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("meshio: encode: %w", err)
	}
	return nil
}

// Decode reads one document from r. Unknown fields are rejected.
// The rooms are not validated until Document.Rooms is called.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return doc, nil
}

// Save writes doc to path, replacing any existing file only once the new
// contents are complete.
func Save(path string, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("meshio: marshal document: %w", err)
	}
	return writeFile(path, append(data, '\n'))
}

// Load reads a document from path and rebuilds its rooms.
func Load(path string) (Document, []rooms.Room, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, nil, fmt.Errorf("meshio: open document: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return Document{}, nil, err
	}
	rs, err := doc.Rooms()
	if err != nil {
		return Document{}, nil, err
	}
	return doc, rs, nil
}

// writeFile writes data next to path and renames it into place.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("meshio: create directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("meshio: write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("meshio: replace file: %w", err)
	}

	return nil
}
