// Command roomnav decomposes a bitmap map into rooms and portals, prints
// the result, and plans paths on it.
//
//	roomnav -map level.png -from 10,12 -to 240,96
//	roomnav -map level.png -export level.json -schema map.schema.json
//	roomnav -load level.json -serve :8080
//
// In bitmaps a pixel whose red channel is zero is a wall.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/roomnav/geom"
	"github.com/katalvlaran/roomnav/grid"
	"github.com/katalvlaran/roomnav/internal/wsapi"
	"github.com/katalvlaran/roomnav/meshio"
	"github.com/katalvlaran/roomnav/navmesh"
	"github.com/katalvlaran/roomnav/rooms"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("roomnav: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

type config struct {
	mapPath    string
	loadPath   string
	from, to   string
	raw        bool
	exportPath string
	schemaPath string
	serveAddr  string
	walls      bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("roomnav", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.mapPath, "map", "", "bitmap map to decompose (PNG, GIF or JPEG)")
	fs.StringVar(&cfg.loadPath, "load", "", "previously exported map document to use instead of -map")
	fs.StringVar(&cfg.from, "from", "", "path start as x,y")
	fs.StringVar(&cfg.to, "to", "", "path end as x,y")
	fs.BoolVar(&cfg.raw, "raw", false, "print the path without smoothing")
	fs.StringVar(&cfg.exportPath, "export", "", "write the decomposed map as JSON to this file")
	fs.StringVar(&cfg.schemaPath, "schema", "", "write the JSON Schema of map documents to this file")
	fs.StringVar(&cfg.serveAddr, "serve", "", "serve path queries over WebSocket on this address")
	fs.BoolVar(&cfg.walls, "walls", false, "also decompose and print the walls")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.mapPath != "" && cfg.loadPath != "" {
		return cfg, errors.New("-map and -load are mutually exclusive")
	}
	if cfg.mapPath == "" && cfg.loadPath == "" && cfg.schemaPath == "" {
		return cfg, errors.New("one of -map, -load or -schema is required")
	}
	if (cfg.from == "") != (cfg.to == "") {
		return cfg, errors.New("-from and -to must be given together")
	}
	if cfg.walls && cfg.mapPath == "" {
		return cfg, errors.New("-walls needs -map")
	}
	return cfg, nil
}

func run(args []string, stdout io.Writer) error {
	cfg, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	if cfg.schemaPath != "" {
		if err := meshio.WriteSchema(cfg.schemaPath); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "schema written to %s\n", cfg.schemaPath)
	}
	if cfg.mapPath == "" && cfg.loadPath == "" {
		return nil
	}

	var (
		doc  meshio.Document
		mesh *navmesh.Mesh
	)
	if cfg.mapPath != "" {
		g, err := grid.Load(cfg.mapPath)
		if err != nil {
			return err
		}
		if mesh, err = navmesh.New(g); err != nil {
			return err
		}
		doc = meshio.NewDocument(g.Width, g.Height, mesh.Rooms())
		fmt.Fprintf(stdout, "map %dx%d: %d rooms, %d portals, %d islands\n",
			g.Width, g.Height, len(mesh.Rooms()), mesh.Graph().NodeCount(), len(g.Components()))
		if cfg.walls {
			fmt.Fprintf(stdout, "walls: %d rectangles\n", len(rooms.Walls(g)))
		}
	} else {
		var rs []rooms.Room
		if doc, rs, err = meshio.Load(cfg.loadPath); err != nil {
			return err
		}
		if mesh, err = navmesh.FromRooms(rs); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "map %dx%d: %d rooms, %d portals\n",
			doc.Width, doc.Height, len(mesh.Rooms()), mesh.Graph().NodeCount())
	}
	if mesh.Empty() {
		return navmesh.ErrEmptyGrid
	}

	if cfg.exportPath != "" {
		if err := meshio.Save(cfg.exportPath, doc); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "map written to %s\n", cfg.exportPath)
	}

	if cfg.from != "" {
		if err := printPath(stdout, mesh, cfg); err != nil {
			return err
		}
	}

	if cfg.serveAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/path", wsapi.NewHandler(mesh, wsapi.Config{Logger: log.Default()}))
		log.Printf("serving path queries on ws://%s/path", cfg.serveAddr)
		return http.ListenAndServe(cfg.serveAddr, mux)
	}
	return nil
}

func printPath(w io.Writer, mesh *navmesh.Mesh, cfg config) error {
	from, err := parsePoint(cfg.from)
	if err != nil {
		return fmt.Errorf("-from: %w", err)
	}
	to, err := parsePoint(cfg.to)
	if err != nil {
		return fmt.Errorf("-to: %w", err)
	}

	path, err := mesh.FindPath(from, to, navmesh.WithSmoothing(!cfg.raw))
	if err != nil {
		return err
	}
	pts := navmesh.Points(path)
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = p.String()
	}
	fmt.Fprintf(w, "path: %s\n", strings.Join(parts, " "))
	return nil
}

// parsePoint reads "x,y".
func parsePoint(s string) (geom.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Point{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("bad x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("bad y in %q: %w", s, err)
	}
	return geom.Pt(x, y), nil
}
