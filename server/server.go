package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/minaorangina/mau/game"
	"github.com/minaorangina/mau/protocol"
	"github.com/minaorangina/mau/store"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type GameRes struct {
	GameID  string                  `json:"game_id"`
	Players []protocol.PlayerInfo   `json:"players"`
	Rounds  []protocol.RoundSummary `json:"rounds"`
}

type ListGamesRes struct {
	GameIDs []string `json:"game_ids"`
}

// GameServer runs simulations and replays them to spectators
type GameServer struct {
	store  store.GameStore
	logger *zap.Logger
	http.Server
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

// NewServer creates a new GameServer
func NewServer(s store.GameStore, logger *zap.Logger) *GameServer {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &GameServer{store: s, logger: logger}

	router := http.NewServeMux()
	router.Handle("/new", http.HandlerFunc(g.HandleNewGame))
	router.Handle("/games", http.HandlerFunc(g.HandleListGames))
	router.Handle("/game/", http.HandlerFunc(g.HandleFindGame))
	router.Handle("/ws", http.HandlerFunc(g.HandleWS))

	stdLog := zap.NewStdLog(logger)
	g.Handler = handlers.RecoveryHandler(handlers.RecoveryLogger(stdLog))(
		handlers.CORS(
			handlers.AllowedOrigins([]string{"*"}),
			handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
			handlers.AllowedHeaders([]string{"Content-Type"}),
		)(handlers.LoggingHandler(stdLog.Writer(), router)),
	)

	return g
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// HandleNewGame plays a simulation to the end and stores it
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data NewGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		g.writeParseError(err, w)
		return
	}

	sim, err := simulate(data, g.logger)
	if errors.Is(err, game.ErrInvalidConfiguration) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}
	if err != nil {
		g.logger.Error("simulation failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := g.store.AddGame(sim); err != nil {
		g.logger.Error("could not store simulation", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	g.writeJSON(w, http.StatusCreated, gameResponse(sim))
}

func (g *GameServer) HandleListGames(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	g.writeJSON(w, http.StatusOK, ListGamesRes{GameIDs: g.store.GameIDs()})
}

func (g *GameServer) HandleFindGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	gameID := strings.TrimPrefix(r.URL.Path, "/game/")
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	sim, err := g.store.FindGame(gameID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	g.writeJSON(w, http.StatusOK, gameResponse(sim))
}

// HandleWS replays a stored game's events, one JSON text frame each,
// then closes the connection.
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	sim, err := g.store.FindGame(gameID)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied
		g.logger.Warn("could not upgrade to websocket", zap.Error(err))
		return
	}
	defer conn.Close()

	for _, e := range sim.Events {
		if err := conn.WriteJSON(e); err != nil {
			g.logger.Warn("replay interrupted", zap.String("game_id", gameID), zap.Error(err))
			return
		}
	}

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "replay complete")
	if err := conn.WriteMessage(websocket.CloseMessage, msg); err != nil {
		g.logger.Warn("could not close websocket", zap.Error(err))
	}
}

func gameResponse(sim store.Simulation) GameRes {
	return GameRes{GameID: sim.GameID, Players: sim.Players, Rounds: sim.Rounds}
}

func (g *GameServer) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		g.logger.Error("could not marshal response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

func (g *GameServer) writeParseError(err error, w http.ResponseWriter) {
	w.Header().Add("Content-Type", "text/plain")
	w.WriteHeader(http.StatusBadRequest)
	if err == io.EOF {
		w.Write([]byte("Missing body"))
		return
	}
	g.logger.Debug("could not parse request", zap.Error(err))
	w.Write([]byte("Malformed body"))
}
