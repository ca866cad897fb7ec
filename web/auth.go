package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const (
	sessionCookieName = "croupier_session"

	discordAuthorizeURL = "https://discord.com/api/oauth2/authorize"
	discordTokenURL     = "https://discord.com/api/oauth2/token"
)

var oauthClient = &http.Client{Timeout: 10 * time.Second}

// handleLogin redirects the browser to Discord's authorize endpoint
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	state := s.states.Issue()

	params := url.Values{}
	params.Set("client_id", s.cfg.DiscordClientID)
	params.Set("redirect_uri", s.cfg.OAuthRedirectURL)
	params.Set("response_type", "code")
	params.Set("scope", "identify")
	params.Set("state", state)

	http.Redirect(w, r, discordAuthorizeURL+"?"+params.Encode(), http.StatusFound)
}

// handleOAuthCallback exchanges the authorization code, resolves the
// Discord identity and opens a console session for allowlisted admins
func (s *Server) handleOAuthCallback(w http.ResponseWriter, r *http.Request) {
	if !s.states.Consume(r.URL.Query().Get("state")) {
		http.Error(w, "invalid oauth state", http.StatusBadRequest)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "missing authorization code", http.StatusBadRequest)
		return
	}

	accessToken, err := s.exchangeCode(r.Context(), code)
	if err != nil {
		log.Errorf("OAuth code exchange failed: %v", err)
		http.Error(w, "login failed", http.StatusBadGateway)
		return
	}

	identity, err := fetchIdentity(accessToken)
	if err != nil {
		log.Errorf("Failed to fetch Discord identity: %v", err)
		http.Error(w, "login failed", http.StatusBadGateway)
		return
	}

	if !s.cfg.IsAdmin(identity.ID) {
		log.Warnf("Console login rejected for non-admin %s (%s)", identity.Username, identity.ID)
		http.Error(w, "you are not on the admin allowlist", http.StatusForbidden)
		return
	}

	session := s.sessions.Create(identity.ID, identity.Username)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  session.ExpiresAt,
	})

	log.Infof("Admin %s logged into the console", identity.Username)
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		s.sessions.Delete(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:   sessionCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	http.Redirect(w, r, "/login", http.StatusFound)
}

// exchangeCode swaps an authorization code for a bearer token
func (s *Server) exchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("client_id", s.cfg.DiscordClientID)
	form.Set("client_secret", s.cfg.DiscordClientSecret)
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", s.cfg.OAuthRedirectURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, discordTokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := oauthClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("error decoding token response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("token response contained no access token")
	}
	return payload.AccessToken, nil
}

// fetchIdentity resolves the logged-in Discord user with the bearer token
func fetchIdentity(accessToken string) (*discordgo.User, error) {
	dg, err := discordgo.New("Bearer " + accessToken)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	user, err := dg.User("@me")
	if err != nil {
		return nil, fmt.Errorf("error fetching current user: %w", err)
	}
	return user, nil
}

// requireAdmin gates console routes behind a live admin session
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		session := s.sessions.Get(cookie.Value)
		if session == nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey{}, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type sessionContextKey struct{}

// sessionFromContext returns the console session attached by requireAdmin
func sessionFromContext(ctx context.Context) *Session {
	session, _ := ctx.Value(sessionContextKey{}).(*Session)
	return session
}
