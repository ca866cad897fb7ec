package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"croupier/models"
)

const dashboardSize = 200

type gameRow struct {
	Key     models.GameKey
	Percent float64
}

type overrideRow struct {
	Key     models.GameKey
	Percent float64
}

type dashboardData struct {
	Username string
	Users    []*models.User
	Games    []gameRow

	// Overrides of the user being inspected, when ?user= is set
	InspectedUser string
	Overrides     []overrideRow
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := sessionFromContext(ctx)

	users, err := s.userService.GetLeaderboard(ctx, dashboardSize)
	if err != nil {
		log.Errorf("Error loading dashboard users: %v", err)
		http.Error(w, "failed to load users", http.StatusInternalServerError)
		return
	}

	games := make([]gameRow, 0, len(models.AllGameKeys()))
	for _, key := range models.AllGameKeys() {
		p, err := s.configService.GlobalProbability(ctx, key)
		if err != nil {
			log.Errorf("Error loading global odds for %s: %v", key, err)
			http.Error(w, "failed to load game configuration", http.StatusInternalServerError)
			return
		}
		games = append(games, gameRow{Key: key, Percent: p * 100})
	}

	data := dashboardData{
		Username: session.Username,
		Users:    users,
		Games:    games,
	}

	if inspected := r.URL.Query().Get("user"); inspected != "" {
		overrides, err := s.configService.UserOverrideProbabilities(ctx, inspected)
		if err != nil {
			log.Errorf("Error loading overrides for user %s: %v", inspected, err)
			http.Error(w, "failed to load user overrides", http.StatusInternalServerError)
			return
		}
		data.InspectedUser = inspected
		for _, key := range models.AllGameKeys() {
			if p, ok := overrides[key]; ok {
				data.Overrides = append(data.Overrides, overrideRow{Key: key, Percent: p * 100})
			}
		}
	}

	if err := s.templates.ExecuteTemplate(w, "dashboard.html", data); err != nil {
		log.Errorf("Error rendering dashboard: %v", err)
	}
}

// handleSetBalance overwrites a user's balance. Negative input is
// clamped to zero rather than rejected.
func (s *Server) handleSetBalance(w http.ResponseWriter, r *http.Request) {
	s.setBalance(w, r, chi.URLParam(r, "userID"))
}

// handleSetBalanceForm is the form-friendly variant carrying the user
// id in the body
func (s *Server) handleSetBalanceForm(w http.ResponseWriter, r *http.Request) {
	s.setBalance(w, r, r.FormValue("user_id"))
}

func (s *Server) setBalance(w http.ResponseWriter, r *http.Request, userID string) {
	if userID == "" {
		http.Error(w, "missing user id", http.StatusBadRequest)
		return
	}

	balance, err := strconv.ParseInt(r.FormValue("balance"), 10, 64)
	if err != nil {
		http.Error(w, "invalid balance", http.StatusBadRequest)
		return
	}
	if balance < 0 {
		balance = 0
	}

	session := sessionFromContext(r.Context())
	if _, err := s.userService.SetBalance(r.Context(), userID, balance); err != nil {
		log.Errorf("Error setting balance for user %s: %v", userID, err)
		http.Error(w, "failed to set balance", http.StatusInternalServerError)
		return
	}

	log.Infof("Admin %s set balance of user %s to %d", session.Username, userID, balance)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleSetGlobalConfig(w http.ResponseWriter, r *http.Request) {
	key := models.GameKey(chi.URLParam(r, "gameKey"))
	if !key.Valid() {
		http.Error(w, "unknown game", http.StatusBadRequest)
		return
	}

	percent, err := strconv.ParseFloat(r.FormValue("percent"), 64)
	if err != nil {
		http.Error(w, "invalid percent", http.StatusBadRequest)
		return
	}

	session := sessionFromContext(r.Context())
	if err := s.configService.SetGlobalPercent(r.Context(), key, percent); err != nil {
		log.Errorf("Error setting global odds for %s: %v", key, err)
		http.Error(w, "percent must be between 0 and 100", http.StatusBadRequest)
		return
	}

	log.Infof("Admin %s set global %s odds to %.1f%%", session.Username, key, percent)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleSetOverride(w http.ResponseWriter, r *http.Request) {
	s.setOverride(w, r, chi.URLParam(r, "userID"), models.GameKey(chi.URLParam(r, "gameKey")))
}

func (s *Server) handleClearOverride(w http.ResponseWriter, r *http.Request) {
	s.clearOverride(w, r, chi.URLParam(r, "userID"), models.GameKey(chi.URLParam(r, "gameKey")))
}

// handleOverrideForm is the form-friendly variant carrying user id and
// game in the body; action=clear removes the override
func (s *Server) handleOverrideForm(w http.ResponseWriter, r *http.Request) {
	userID := r.FormValue("user_id")
	key := models.GameKey(r.FormValue("game"))

	if r.FormValue("action") == "clear" {
		s.clearOverride(w, r, userID, key)
		return
	}
	s.setOverride(w, r, userID, key)
}

func (s *Server) setOverride(w http.ResponseWriter, r *http.Request, userID string, key models.GameKey) {
	if userID == "" {
		http.Error(w, "missing user id", http.StatusBadRequest)
		return
	}
	if !key.Valid() {
		http.Error(w, "unknown game", http.StatusBadRequest)
		return
	}

	percent, err := strconv.ParseFloat(r.FormValue("percent"), 64)
	if err != nil {
		http.Error(w, "invalid percent", http.StatusBadRequest)
		return
	}

	session := sessionFromContext(r.Context())
	if err := s.configService.SetUserOverridePercent(r.Context(), userID, key, percent); err != nil {
		log.Errorf("Error setting %s override for user %s: %v", key, userID, err)
		http.Error(w, "percent must be between 0 and 100", http.StatusBadRequest)
		return
	}

	log.Infof("Admin %s set %s odds override for user %s to %.1f%%", session.Username, key, userID, percent)
	http.Redirect(w, r, "/dashboard?user="+userID, http.StatusSeeOther)
}

func (s *Server) clearOverride(w http.ResponseWriter, r *http.Request, userID string, key models.GameKey) {
	if userID == "" {
		http.Error(w, "missing user id", http.StatusBadRequest)
		return
	}
	if !key.Valid() {
		http.Error(w, "unknown game", http.StatusBadRequest)
		return
	}

	session := sessionFromContext(r.Context())
	if err := s.configService.ClearUserOverride(r.Context(), userID, key); err != nil {
		log.Errorf("Error clearing %s override for user %s: %v", key, userID, err)
		http.Error(w, "failed to clear override", http.StatusInternalServerError)
		return
	}

	log.Infof("Admin %s cleared %s odds override for user %s", session.Username, key, userID)
	http.Redirect(w, r, "/dashboard?user="+userID, http.StatusSeeOther)
}
