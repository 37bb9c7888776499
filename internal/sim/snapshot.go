package sim

import "gridnav/pkg/grid"

// AgentView - состояние агента в снапшоте.
type AgentView struct {
	Key       int        `json:"key"`
	Pos       grid.Point `json:"pos"`
	Target    grid.Point `json:"target"`
	Remaining int        `json:"remaining"`
}

// Snapshot - срез состояния симуляции для отладки и визуализации.
// Карты отдаются плоскими срезами в row-major порядке.
type Snapshot struct {
	Tick     int         `json:"tick"`
	Dims     []int       `json:"dims"`
	Periodic bool        `json:"periodic"`
	Walkable []bool      `json:"walkable"`
	Heights  []int       `json:"heights,omitempty"`
	Agents   []AgentView `json:"agents"`
}

// Snapshot снимает текущее состояние. Безопасен для вызова из других
// горутин: берёт читательскую блокировку.
func (s *Simulation) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	agents := make([]AgentView, 0, len(s.agents))
	for _, a := range s.agents {
		agents = append(agents, AgentView{
			Key:       a.Key,
			Pos:       a.Pos.Clone(),
			Target:    a.Target.Clone(),
			Remaining: s.pf.Remaining(a.Key),
		})
	}

	snap := Snapshot{
		Tick:     s.tick,
		Dims:     s.world.Topo.Dims,
		Periodic: s.cfg.Periodic,
		Walkable: append([]bool(nil), s.pf.Walkmap().Cells()...),
		Agents:   agents,
	}
	if heights := s.pf.Heightmap(); heights != nil {
		snap.Heights = append([]int(nil), heights.Cells()...)
	}
	return snap
}
