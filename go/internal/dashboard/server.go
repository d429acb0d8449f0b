package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"github.com/ttflab/injurytrack/go/internal/injuries"
	"github.com/ttflab/injurytrack/go/internal/models"
	"github.com/ttflab/injurytrack/go/internal/schedule"
	"github.com/ttflab/injurytrack/go/internal/timewindow"
)

// ScheduleReader defines what the dashboard needs from the schedule app
type ScheduleReader interface {
	GamesInWindow(ctx context.Context, start, end time.Time) ([]schedule.GameSummary, error)
	TeamsPlayingInWindow(ctx context.Context, start, end time.Time) ([]int, error)
}

// InjuriesReader defines what the dashboard needs from the injuries app
type InjuriesReader interface {
	CurrentForTeams(ctx context.Context, teamIDs []int) ([]injuries.TeamInjury, error)
	History(ctx context.Context, teamID int, player string, limit int) ([]models.InjuryHistoryEntry, error)
}

// Server serves the TTFL dashboard JSON API and the websocket feed.
type Server struct {
	port     string
	schedule ScheduleReader
	injuries InjuriesReader
	hub      *Hub

	httpServer *http.Server
	upgrader   websocket.Upgrader
}

func NewServer(port string, scheduleApp ScheduleReader, injuriesApp InjuriesReader, hub *Hub) *Server {
	return &Server{
		port:     port,
		schedule: scheduleApp,
		injuries: injuriesApp,
		hub:      hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (s *Server) router() http.Handler {
	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
	api.HandleFunc("/games", s.handleGames).Methods("GET")
	api.HandleFunc("/injuries", s.handleInjuries).Methods("GET")
	api.HandleFunc("/injuries/history", s.handleHistory).Methods("GET")

	router.HandleFunc("/ws", s.handleWebSocket)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return c.Handler(router)
}

func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         ":" + s.port,
		Handler:      s.router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info().Str("port", s.port).Msg("dashboard server starting")
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("dashboard server shutdown")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Unix(),
	})
}

// windowFromRequest resolves the ?date=YYYY-MM-DD query (Paris calendar
// date) to the matching pick-night window, defaulting to tonight.
func windowFromRequest(r *http.Request) (timewindow.Window, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return timewindow.TonightIn(time.Now()), nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return timewindow.Window{}, err
	}
	return timewindow.PickNight(parsed), nil
}

func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	window, err := windowFromRequest(r)
	if err != nil {
		http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	games, err := s.schedule.GamesInWindow(r.Context(), window.Start, window.End)
	if err != nil {
		log.Error().Err(err).Msg("failed to load games in window")
		http.Error(w, "failed to load games", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]interface{}{
		"date":   window.ParisDate(),
		"window": window,
		"games":  games,
	})
}

func (s *Server) handleInjuries(w http.ResponseWriter, r *http.Request) {
	window, err := windowFromRequest(r)
	if err != nil {
		http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	teamIDs, err := s.schedule.TeamsPlayingInWindow(r.Context(), window.Start, window.End)
	if err != nil {
		log.Error().Err(err).Msg("failed to load teams in window")
		http.Error(w, "failed to load teams", http.StatusInternalServerError)
		return
	}

	rows, err := s.injuries.CurrentForTeams(r.Context(), teamIDs)
	if err != nil {
		log.Error().Err(err).Msg("failed to load current injuries")
		http.Error(w, "failed to load injuries", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]interface{}{
		"date":     window.ParisDate(),
		"teams":    len(teamIDs),
		"injuries": rows,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	teamID, err := strconv.Atoi(query.Get("team_id"))
	if err != nil || teamID <= 0 {
		http.Error(w, "team_id is required", http.StatusBadRequest)
		return
	}
	player := query.Get("player")
	if player == "" {
		http.Error(w, "player is required", http.StatusBadRequest)
		return
	}

	limit, _ := strconv.Atoi(query.Get("limit"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	entries, err := s.injuries.History(r.Context(), teamID, player, limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to load injury history")
		http.Error(w, "failed to load history", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]interface{}{
		"team_id": teamID,
		"player":  player,
		"history": entries,
	})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := &Client{
		hub:  s.hub,
		conn: conn,
		send: make(chan []byte, 256),
	}
	if !s.hub.add(client) {
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
