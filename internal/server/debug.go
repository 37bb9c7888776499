package server

import (
	"encoding/json"
	"net/http"

	"gridnav/internal/sim"
)

// DebugHandler предоставляет доступ к внутреннему состоянию симуляции
type DebugHandler struct {
	Sim *sim.Simulation
}

func NewDebugHandler(s *sim.Simulation) *DebugHandler {
	return &DebugHandler{Sim: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/world", h.handleWorld)
	mux.HandleFunc("/debug/agents", h.handleAgents)
}

// /debug/world - сводка по миру: размеры, тик, проходимость, высоты
func (h *DebugHandler) handleWorld(w http.ResponseWriter, r *http.Request) {
	snap := h.Sim.Snapshot()

	walkableCells := 0
	for _, ok := range snap.Walkable {
		if ok {
			walkableCells++
		}
	}

	type WorldSummary struct {
		Tick          int    `json:"tick"`
		Dims          []int  `json:"dims"`
		Periodic      bool   `json:"periodic"`
		WalkableCells int    `json:"walkable_cells"`
		TotalCells    int    `json:"total_cells"`
		HasHeightmap  bool   `json:"has_heightmap"`
		AgentCount    int    `json:"agent_count"`
	}

	writeJSON(w, WorldSummary{
		Tick:          snap.Tick,
		Dims:          snap.Dims,
		Periodic:      snap.Periodic,
		WalkableCells: walkableCells,
		TotalCells:    len(snap.Walkable),
		HasHeightmap:  len(snap.Heights) > 0,
		AgentCount:    len(snap.Agents),
	})
}

// /debug/agents - позиции, цели и остатки маршрутов всех агентов
func (h *DebugHandler) handleAgents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Sim.Snapshot().Agents)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального просмотрщика)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Пустой срез отдаем как [], а не null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
