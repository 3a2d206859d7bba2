package gateway

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dropclock/dropclock/internal/models"
	"github.com/dropclock/dropclock/internal/urlcodec"
)

// StateResponse is the full read surface for render layers.
type StateResponse struct {
	Active      models.TargetEvent   `json:"active"`
	ActiveIndex int                  `json:"active_index"`
	Remaining   models.TimeRemaining `json:"remaining"`
	Catalog     []models.TargetEvent `json:"catalog"`
	Settings    models.TimerSettings `json:"settings"`
	EditMode    bool                 `json:"edit_mode"`
	OverlayMode bool                 `json:"overlay_mode"`
	ReachedZero bool                 `json:"reached_zero"`
	Now         time.Time            `json:"now"`
}

// AddEventRequest creates a catalog entry.
type AddEventRequest struct {
	Title    string          `json:"title"`
	Deadline time.Time       `json:"deadline"`
	Timezone string          `json:"timezone"`
	Category models.Category `json:"category"`
	ID       string          `json:"id,omitempty"`
}

// UpdateActiveRequest edits the active event in place. Absent fields are
// left untouched.
type UpdateActiveRequest struct {
	Title    *string    `json:"title,omitempty"`
	Color    *string    `json:"color,omitempty"`
	Deadline *time.Time `json:"deadline,omitempty"`
	Timezone string     `json:"timezone,omitempty"`
}

// ModeRequest flips presentation flags.
type ModeRequest struct {
	ToggleEdit bool  `json:"toggle_edit,omitempty"`
	Overlay    *bool `json:"overlay,omitempty"`
}

// RegisterRoutes attaches all gateway routes to the mux.
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/ws", s.HandleWS)
	mux.HandleFunc("/api/timer/state", s.handleState)
	mux.HandleFunc("/api/timer/share", s.handleShare)
	mux.HandleFunc("/api/timer/events", s.handleEvents)
	mux.HandleFunc("/api/timer/events/", s.handleEventByIndex)
	mux.HandleFunc("/api/timer/select", s.handleSelect)
	mux.HandleFunc("/api/timer/active", s.handleUpdateActive)
	mux.HandleFunc("/api/timer/restart", s.handleRestart)
	mux.HandleFunc("/api/timer/reset", s.handleReset)
	mux.HandleFunc("/api/timer/settings", s.handleSettings)
	mux.HandleFunc("/api/timer/mode", s.handleMode)
	mux.HandleFunc("/api/timer/start", s.handleStart)
	mux.HandleFunc("/api/timer/stop", s.handleStop)
	mux.HandleFunc("/api/timer/params", s.handleParams)
	log.Info().Msg("gateway routes registered")
}

func (s *Service) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	snap := s.store.Snapshot()
	writeJSON(w, StateResponse{
		Active:      snap.Active(),
		ActiveIndex: snap.ActiveIndex,
		Remaining:   s.engine.Remaining(),
		Catalog:     snap.Catalog,
		Settings:    snap.Settings,
		EditMode:    snap.EditMode,
		OverlayMode: snap.OverlayMode,
		ReachedZero: snap.HasReachedZero,
		Now:         snap.Now,
	})
}

// handleShare returns the query string that reproduces the current
// configuration on another instance.
func (s *Service) handleShare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	query := urlcodec.Encode(s.store.Snapshot()).Encode()
	writeJSON(w, map[string]string{"query": query})
}

// handleParams applies shared-link parameters from the request's query
// string, mirroring what opening the link in a browser would do.
func (s *Service) handleParams(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	urlcodec.Decode(r.URL.Query(), s.store)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req AddEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Title == "" || req.Deadline.IsZero() {
		http.Error(w, "title and deadline are required", http.StatusBadRequest)
		return
	}
	if req.Category == "" {
		req.Category = models.CategoryGame
	}
	id := s.store.AddEvent(req.Title, req.Deadline, req.Timezone, req.Category, req.ID)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(map[string]string{"id": id}); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *Service) handleEventByIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	idxStr := strings.TrimPrefix(r.URL.Path, "/api/timer/events/")
	idx, err := strconv.Atoi(idxStr)
	if err != nil {
		http.Error(w, "Invalid event index", http.StatusBadRequest)
		return
	}
	// A rejected removal (out of range, or the catalog would empty) is a
	// silent no-op for state but a 409 for the caller.
	if !s.store.RemoveEvent(idx) {
		http.Error(w, "Event cannot be removed", http.StatusConflict)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleSelect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Index int `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	s.store.SetActiveIndex(req.Index)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleUpdateActive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch && r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req UpdateActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Title != nil {
		s.store.SetTitle(*req.Title)
	}
	if req.Color != nil {
		s.store.SetTitleColor(*req.Color)
	}
	if req.Deadline != nil {
		s.store.SetDeadline(*req.Deadline, req.Timezone)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleRestart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if !s.store.Restart(req.ID) {
		http.Error(w, "Event is not restartable", http.StatusConflict)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.store.ResetCatalog()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleSettings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodPatch {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var patch models.SettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	s.store.UpdateSettings(patch)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleMode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req ModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ToggleEdit {
		s.store.ToggleEditMode()
	}
	if req.Overlay != nil {
		s.store.SetOverlayMode(*req.Overlay)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleStart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.runCtx == nil {
		http.Error(w, "gateway not running", http.StatusServiceUnavailable)
		return
	}
	s.engine.Start(s.runCtx)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleStop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.engine.Stop()
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
