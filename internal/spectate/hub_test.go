package spectate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase/levels"
	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase/sim"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	set, err := levels.Load("")
	if err != nil {
		t.Fatalf("levels.Load() failed: %v", err)
	}
	sched, err := sim.New(set, sim.DefaultRules())
	if err != nil {
		t.Fatalf("sim.New() failed: %v", err)
	}
	return NewHub(sched, 100, nil)
}

func decodeFrame(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("frame is not JSON: %v", err)
	}
	return m
}

func TestSnapshotEndpoint(t *testing.T) {
	h := newTestHub(t)
	h.Step()
	h.Step()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, URISnapshot, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, expected application/json", ct)
	}
	frame := decodeFrame(t, rec.Body.Bytes())
	if frame["state"] != "attract" {
		t.Errorf("state = %v, expected attract", frame["state"])
	}
	if frame["demo"] != true {
		t.Errorf("demo = %v, expected true", frame["demo"])
	}
	board, ok := frame["board"].([]any)
	if !ok || len(board) == 0 {
		t.Errorf("board = %v, expected rows", frame["board"])
	}
}

func TestUnknownRoute(t *testing.T) {
	h := newTestHub(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, URISnapshot, nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("POST status = %d, expected 404", rec.Code)
	}
}

func TestStepAdvancesFrame(t *testing.T) {
	h := newTestHub(t)
	_, before := h.Frame()

	h.Step()

	data, after := h.Frame()
	if after != before+1 {
		t.Errorf("seq = %d, expected %d", after, before+1)
	}
	if tick := decodeFrame(t, data)["tick"]; tick != float64(1) {
		t.Errorf("tick = %v, expected 1", tick)
	}
}

func TestWatchStreamsFrames(t *testing.T) {
	h := newTestHub(t)
	srv := httptest.NewServer(h)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + URIWatch
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() failed: %v", err)
	}
	defer conn.Close()

	read := func() map[string]any {
		t.Helper()
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		kind, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("ReadMessage() failed: %v", err)
		}
		if kind != websocket.TextMessage {
			t.Fatalf("message type = %d, expected text", kind)
		}
		return decodeFrame(t, data)
	}

	first := read()
	if h.Clients() != 1 {
		t.Errorf("Clients() = %d, expected 1", h.Clients())
	}

	h.Step()
	second := read()

	if second["tick"] != first["tick"].(float64)+1 {
		t.Errorf("tick = %v after %v, expected the next tick", second["tick"], first["tick"])
	}
}
