package server

import (
	"encoding/json"
	"net/http"
	_ "net/http/pprof" // Profiling

	"gridnav/internal/network"
	"gridnav/internal/sim"
	"gridnav/internal/version"
	"gridnav/pkg/logger"
)

// Server отдает состояние симуляции наружу: websocket-поток снапшотов
// и отладочные JSON-эндпоинты. Рисует клиент, сервер только отдает данные.
type Server struct {
	Sim  *sim.Simulation
	Hub  *network.Broadcaster
	Port string
}

func New(s *sim.Simulation, hub *network.Broadcaster, port string) *Server {
	return &Server{
		Sim:  s,
		Hub:  hub,
		Port: port,
	}
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	mux := http.DefaultServeMux

	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	debugHandler := NewDebugHandler(s.Sim)
	debugHandler.RegisterRoutes(mux)

	logger.Log.Infof("🧭 gridnav debug server running on :%s", s.Port)
	return http.ListenAndServe(":"+s.Port, mux)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с локального просмотрщика
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(version.Info())
}
