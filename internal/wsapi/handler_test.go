package wsapi

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomnav/grid"
	"github.com/katalvlaran/roomnav/navmesh"
)

// syncBuffer collects log output written from the handler goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newMesh(t *testing.T, rows ...string) *navmesh.Mesh {
	t.Helper()
	g, err := grid.Parse(rows...)
	require.NoError(t, err)
	m, err := navmesh.New(g)
	require.NoError(t, err)
	return m
}

func dial(t *testing.T, h *Handler) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(h.Handle))
	t.Cleanup(srv.Close)

	parsed, err := url.Parse(srv.URL)
	require.NoError(t, err)
	parsed.Scheme = "ws"

	conn, resp, err := websocket.DefaultDialer.Dial(parsed.String(), nil)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		t.Fatalf("failed to open websocket connection: %v", err)
	}
	t.Cleanup(func() {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
		if resp != nil {
			resp.Body.Close()
		}
	})
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, frame string) Response {
	t.Helper()
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(frame)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal(payload, &resp))
	return resp
}

func TestHandle_Queries(t *testing.T) {
	var logs syncBuffer
	h := NewHandler(newMesh(t, "..###", "..###", ".....", "#####", "....."), Config{Logger: log.New(&logs, "", 0)})
	conn := dial(t, h)

	resp := roundTrip(t, conn, `{"id":"a","from":{"x":0.5,"y":0.5},"to":{"x":4.5,"y":2.5}}`)
	assert.Equal(t, Response{ID: "a", Path: []Step{
		{X: 0.5, Y: 0.5, Kind: "endpoint"},
		{X: 1.5, Y: 2, Kind: "portal"},
		{X: 4.5, Y: 2.5, Kind: "endpoint"},
	}}, resp)

	resp = roundTrip(t, conn, `{"id":"b","from":{"x":0.5,"y":0.5},"to":{"x":3.5,"y":0.5},"raw":true}`)
	assert.Equal(t, "b", resp.ID)
	assert.Equal(t, CodeNoContainingRoom, resp.Code)
	assert.Empty(t, resp.Path)

	resp = roundTrip(t, conn, `{"id":"c","from":{"x":0.5,"y":0.5},"to":{"x":0.5,"y":4.5}}`)
	assert.Equal(t, CodeNoPath, resp.Code)

	resp = roundTrip(t, conn, `not json`)
	assert.Equal(t, CodeBadRequest, resp.Code)
	assert.Contains(t, logs.String(), "discarding malformed message")

	resp = roundTrip(t, conn, `{"id":"d","from":{"x":0.5,"y":0.5}}`)
	assert.Equal(t, Response{ID: "d", Error: "from and to are required", Code: CodeBadRequest}, resp)

	resp = roundTrip(t, conn, `{"id":"e","from":{"x":0.5,"y":0.5},"to":{"x":1.5,"y":1.5}}`)
	assert.Empty(t, resp.Code, "connection still answers after bad frames")
	assert.Len(t, resp.Path, 2)
}

func TestHandle_EmptyMap(t *testing.T) {
	h := NewHandler(newMesh(t, "##", "##"), Config{Logger: log.New(&syncBuffer{}, "", 0)})
	conn := dial(t, h)

	resp := roundTrip(t, conn, `{"id":"x","from":{"x":0,"y":0},"to":{"x":1,"y":1}}`)
	assert.Equal(t, CodeEmptyMap, resp.Code)
	assert.Equal(t, navmesh.ErrEmptyGrid.Error(), resp.Error)
}

func TestNewHandler_DefaultLogger(t *testing.T) {
	h := NewHandler(newMesh(t, "."), Config{})
	assert.Equal(t, log.Default(), h.logger)
}
