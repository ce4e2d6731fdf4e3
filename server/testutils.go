package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	utils "github.com/minaorangina/mau/internal"
	"github.com/minaorangina/mau/store"
	"go.uber.org/zap/zaptest"
)

func mustMakeJson(t *testing.T, input interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(input)
	utils.AssertNoError(t, err)

	return data
}

func newCreateGameRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/new", bytes.NewBuffer(data))
	return request
}

func newGetGameRequest(gameID string) *http.Request {
	request, _ := http.NewRequest(http.MethodGet, "/game/"+gameID, nil)
	return request
}

func someGameReq() NewGameReq {
	return NewGameReq{
		Players: []PlayerReq{
			{Name: "Kim", Strategy: "random"},
			{Name: "Sam", Strategy: "scaredy"},
			{Name: "Alex"},
		},
		Rounds: 2,
		Seed:   123,
	}
}

// newServerWithGame returns a GameServer holding one finished simulation
func newServerWithGame(t *testing.T) (*GameServer, store.Simulation) {
	t.Helper()

	logger := zaptest.NewLogger(t)
	sim, err := simulate(someGameReq(), logger)
	utils.AssertNoError(t, err)

	return NewServer(store.NewTestGameStore(sim), logger), sim
}

// newTestServer starts and returns a new server.
// The caller must call close to shut it down.
func newTestServer(t *testing.T, str store.GameStore) *httptest.Server {
	return httptest.NewServer(NewServer(str, zaptest.NewLogger(t)))
}

// ASSERTIONS

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}

func decodeGameRes(t *testing.T, body *bytes.Buffer) GameRes {
	t.Helper()

	var got GameRes
	if err := json.NewDecoder(body).Decode(&got); err != nil {
		t.Fatalf("could not unmarshal json: %s", err.Error())
	}
	return got
}

func mustDialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	ws, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		t.Fatalf("could not open a ws connection on %s, code %d: %v", url, status, err)
	}

	return ws
}

func makeWSUrl(serverURL, gameID string) string {
	return "ws" + strings.TrimPrefix(serverURL, "http") + "/ws?game_id=" + gameID
}
