// Package debughttp serves a read-only JSON view of the demo state for
// inspection while the interactive host runs.
package debughttp

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gridsight/internal/fov"
	"gridsight/internal/grid"
)

// State is a point-in-time view of the demo published by the host.
type State struct {
	Grid         grid.Snapshot
	Radius       int
	Viewpoint    fov.Point
	HasViewpoint bool
}

// Provider returns the most recent published State.
type Provider func() State

type pointJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type stateResponse struct {
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	Radius       int        `json:"radius"`
	Viewpoint    *pointJSON `json:"viewpoint,omitempty"`
	OpaqueCount  int        `json:"opaqueCount"`
	VisibleCount int        `json:"visibleCount"`
}

type cellResponse struct {
	X        int  `json:"x"`
	Y        int  `json:"y"`
	InBounds bool `json:"inBounds"`
	Opaque   bool `json:"opaque"`
	Visible  bool `json:"visible"`
}

// Handler returns the debug API router backed by p.
func Handler(p Provider) http.Handler {
	r := chi.NewRouter()

	r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/api/state", func(w http.ResponseWriter, _ *http.Request) {
		st := p()
		resp := stateResponse{
			Width:  st.Grid.Width,
			Height: st.Grid.Height,
			Radius: st.Radius,
		}
		if st.HasViewpoint {
			resp.Viewpoint = &pointJSON{X: st.Viewpoint.X, Y: st.Viewpoint.Y}
		}
		for _, b := range st.Grid.Opaque {
			if b {
				resp.OpaqueCount++
			}
		}
		for _, b := range st.Grid.Visible {
			if b {
				resp.VisibleCount++
			}
		}
		respondJSON(w, http.StatusOK, resp)
	})

	r.Get("/api/grid", func(w http.ResponseWriter, _ *http.Request) {
		st := p()
		respondJSON(w, http.StatusOK, map[string]any{
			"width":  st.Grid.Width,
			"height": st.Grid.Height,
			"rows":   gridRows(st.Grid),
		})
	})

	r.Get("/api/cell/{x}/{y}", func(w http.ResponseWriter, req *http.Request) {
		x, errX := strconv.Atoi(chi.URLParam(req, "x"))
		y, errY := strconv.Atoi(chi.URLParam(req, "y"))
		if errX != nil || errY != nil {
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": "coordinates must be integers"})
			return
		}
		st := p()
		inBounds := x >= 0 && x < st.Grid.Width && y >= 0 && y < st.Grid.Height
		respondJSON(w, http.StatusOK, cellResponse{
			X:        x,
			Y:        y,
			InBounds: inBounds,
			Opaque:   st.Grid.IsOpaque(x, y),
			Visible:  st.Grid.IsVisible(x, y),
		})
	})

	return r
}

// gridRows renders the planes as strings, top row first (highest y):
// '#' opaque, '.' visible floor, ' ' hidden floor.
func gridRows(s grid.Snapshot) []string {
	rows := make([]string, 0, s.Height)
	for y := s.Height - 1; y >= 0; y-- {
		row := make([]byte, s.Width)
		for x := 0; x < s.Width; x++ {
			switch {
			case s.IsOpaque(x, y):
				row[x] = '#'
			case s.IsVisible(x, y):
				row[x] = '.'
			default:
				row[x] = ' '
			}
		}
		rows = append(rows, string(row))
	}
	return rows
}

// respondJSON writes a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
