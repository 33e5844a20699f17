package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomnav/geom"
	"github.com/katalvlaran/roomnav/navmesh"
)

// writeMap draws rows as a PNG, '#' black and everything else white.
func writeMap(t *testing.T, rows ...string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, r := range row {
			c := color.White
			if r == '#' {
				c = color.Black
			}
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "map.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestRun_DecomposeExportAndPath(t *testing.T) {
	mapPath := writeMap(t, "..###", "..###", ".....")
	dir := t.TempDir()
	docPath := filepath.Join(dir, "map.json")
	schemaPath := filepath.Join(dir, "schema.json")

	var out bytes.Buffer
	err := run([]string{
		"-map", mapPath, "-walls",
		"-export", docPath, "-schema", schemaPath,
		"-from", "0.5,0.5", "-to", "4.5, 2.5",
	}, &out)
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"schema written to " + schemaPath,
		"map 5x3: 2 rooms, 1 portals, 1 islands",
		"walls: 1 rectangles",
		"map written to " + docPath,
		"path: (0.5,0.5) (1.5,2) (4.5,2.5)",
	}, "\n")+"\n", out.String())
	assert.FileExists(t, schemaPath)

	out.Reset()
	require.NoError(t, run([]string{"-load", docPath, "-from", "0.5,0.5", "-to", "1.5,2.5", "-raw"}, &out))
	assert.Equal(t, "map 5x3: 2 rooms, 1 portals\npath: (0.5,0.5) (1.5,2.5)\n", out.String())
}

func TestRun_Errors(t *testing.T) {
	open := writeMap(t, "..#..")
	blocked := writeMap(t, "###")

	var out bytes.Buffer
	assert.Error(t, run(nil, &out), "nothing to do")
	assert.Error(t, run([]string{"-map", open, "-load", "x.json"}, &out))
	assert.Error(t, run([]string{"-map", open, "-from", "1,1"}, &out))
	assert.Error(t, run([]string{"-load", "x.json", "-walls"}, &out))
	assert.Error(t, run([]string{"-map", filepath.Join(t.TempDir(), "missing.png")}, &out))

	assert.ErrorIs(t, run([]string{"-map", blocked}, &out), navmesh.ErrEmptyGrid)
	assert.ErrorIs(t, run([]string{"-map", open, "-from", "2.5,0.5", "-to", "0.5,0.5"}, &out), navmesh.ErrNoContainingRoom)
	assert.ErrorIs(t, run([]string{"-map", open, "-from", "0.5,0.5", "-to", "4.5,0.5"}, &out), navmesh.ErrNoPathFound)
	assert.Error(t, run([]string{"-map", open, "-from", "a,b", "-to", "0,0"}, &out))
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("1.5, -2")
	require.NoError(t, err)
	assert.Equal(t, geom.Pt(1.5, -2), p)

	for _, bad := range []string{"", "1", "x,1", "1,y"} {
		_, err := parsePoint(bad)
		assert.Error(t, err, bad)
	}
}
