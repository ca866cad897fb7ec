package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"croupier/config"
	"croupier/metrics"
	"croupier/service"
)

//go:embed templates/*.html
var templateFS embed.FS

const sessionTTL = 12 * time.Hour

// Server is the admin web console: balance administration and odds
// configuration behind a Discord OAuth login
type Server struct {
	httpServer *http.Server

	cfg           *config.Config
	sessions      *SessionStore
	states        *stateStore
	templates     *template.Template
	userService   service.UserService
	configService service.GameConfigService
}

func NewServer(cfg *config.Config, userService service.UserService, configService service.GameConfigService) (*Server, error) {
	templates, err := template.New("console").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("error parsing console templates: %w", err)
	}

	s := &Server{
		cfg:           cfg,
		sessions:      NewSessionStore(sessionTTL),
		states:        newStateStore(),
		templates:     templates,
		userService:   userService,
		configService: configService,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/login", s.handleLogin)
	r.Get("/auth/callback", s.handleOAuthCallback)
	r.Post("/logout", s.handleLogout)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAdmin)

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
		})
		r.Get("/dashboard", s.handleDashboard)

		r.Post("/balances", s.handleSetBalanceForm)
		r.Post("/balances/{userID}", s.handleSetBalance)
		r.Post("/config/{gameKey}", s.handleSetGlobalConfig)
		r.Post("/overrides", s.handleOverrideForm)
		r.Post("/overrides/{userID}/{gameKey}", s.handleSetOverride)
		r.Post("/overrides/{userID}/{gameKey}/clear", s.handleClearOverride)
	})

	s.httpServer = &http.Server{
		Addr:              cfg.WebAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s, nil
}

// Start starts the console server and blocks until it shuts down
func (s *Server) Start() error {
	log.Infof("Admin console listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop shuts the console down gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
