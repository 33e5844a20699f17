// Package wsapi answers path queries over a WebSocket connection.
//
// Every text frame from the client is one query:
//
//	{"id":"q1","from":{"x":0.5,"y":0.5},"to":{"x":9.5,"y":3.5},"raw":false}
//
// and is answered by exactly one frame carrying the same id:
//
//	{"id":"q1","path":[{"x":0.5,"y":0.5,"kind":"endpoint"},...]}
//	{"id":"q2","error":"navmesh: no path found: room 0 to room 3","code":"no_path"}
//
// Malformed frames are logged and answered with code "bad_request"; the
// connection stays open until the client closes it.
package wsapi

import (
	"encoding/json"
	"errors"
	"log"
	nethttp "net/http"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/roomnav/geom"
	"github.com/katalvlaran/roomnav/navmesh"
)

// Error codes sent in Response.Code.
const (
	CodeBadRequest       = "bad_request"
	CodeEmptyMap         = "empty_map"
	CodeNoContainingRoom = "no_containing_room"
	CodeNoPath           = "no_path"
	CodeInternal         = "internal"
)

// Config configures a Handler.
type Config struct {
	// Logger receives connection and protocol errors. Defaults to log.Default().
	Logger *log.Logger
}

// Request is one path query.
type Request struct {
	ID   string      `json:"id"`
	From *geom.Point `json:"from"`
	To   *geom.Point `json:"to"`
	Raw  bool        `json:"raw,omitempty"`
}

// Step is one waypoint of a Response path.
type Step struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Kind string  `json:"kind"`
}

// Response answers the Request with the same ID.
type Response struct {
	ID    string `json:"id"`
	Path  []Step `json:"path,omitempty"`
	Error string `json:"error,omitempty"`
	Code  string `json:"code,omitempty"`
}

// Handler serves path queries against one mesh.
type Handler struct {
	mesh     *navmesh.Mesh
	logger   *log.Logger
	upgrader websocket.Upgrader
}

// NewHandler returns a Handler answering queries on mesh.
func NewHandler(mesh *navmesh.Mesh, cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *nethttp.Request) bool {
			return true
		},
	}

	return &Handler{
		mesh:     mesh,
		logger:   logger,
		upgrader: upgrader,
	}
}

// ServeHTTP makes Handler an http.Handler.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) { h.Handle(w, r) }

// Handle upgrades the request and answers queries until the client leaves.
func (h *Handler) Handle(w nethttp.ResponseWriter, r *nethttp.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("upgrade failed for %s: %v", r.RemoteAddr, err)
		return
	}
	defer conn.Close()

	for {
		messageType, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Printf("read failed for %s: %v", r.RemoteAddr, err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		resp := h.answer(r.RemoteAddr, payload)
		data, err := json.Marshal(resp)
		if err != nil {
			h.logger.Printf("failed to marshal response for %s: %v", r.RemoteAddr, err)
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Printf("write failed for %s: %v", r.RemoteAddr, err)
			return
		}
	}
}

// answer turns one frame into its response.
func (h *Handler) answer(remote string, payload []byte) Response {
	var req Request
	if err := json.Unmarshal(payload, &req); err != nil {
		h.logger.Printf("discarding malformed message from %s: %v", remote, err)
		return Response{Error: err.Error(), Code: CodeBadRequest}
	}
	if req.From == nil || req.To == nil {
		h.logger.Printf("discarding query %q from %s: missing from or to", req.ID, remote)
		return Response{ID: req.ID, Error: "from and to are required", Code: CodeBadRequest}
	}
	if h.mesh.Empty() {
		return Response{ID: req.ID, Error: navmesh.ErrEmptyGrid.Error(), Code: CodeEmptyMap}
	}

	path, err := h.mesh.FindPath(*req.From, *req.To, navmesh.WithSmoothing(!req.Raw))
	if err != nil {
		return Response{ID: req.ID, Error: err.Error(), Code: codeOf(err)}
	}

	steps := make([]Step, len(path))
	for i, w := range path {
		steps[i] = Step{X: w.Point.X, Y: w.Point.Y, Kind: w.Kind.String()}
	}
	return Response{ID: req.ID, Path: steps}
}

func codeOf(err error) string {
	switch {
	case errors.Is(err, navmesh.ErrNoContainingRoom):
		return CodeNoContainingRoom
	case errors.Is(err, navmesh.ErrNoPathFound):
		return CodeNoPath
	case errors.Is(err, navmesh.ErrEmptyGrid):
		return CodeEmptyMap
	}
	return CodeInternal
}
