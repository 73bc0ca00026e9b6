package http

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	apphandlers "talenttrack/internal/http/handlers"
	"talenttrack/internal/http/metrics"
	httpmw "talenttrack/internal/http/middleware"
)

type RouterDependencies struct {
	AuthHandler      *apphandlers.AuthHandler
	TeamHandler      *apphandlers.TeamHandler
	UserHandler      *apphandlers.UserHandler
	CandidateHandler *apphandlers.CandidateHandler
	PositionHandler  *apphandlers.PositionHandler
	AuthMiddleware   *httpmw.AuthMiddleware
	Limiter          httpmw.Limiter
	Metrics          *metrics.Collector
	Logger           *log.Logger
	RequestTimeout   time.Duration
	CORSOrigin       string
}

func NewRouter(deps RouterDependencies) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	r.Handle("/metrics", metrics.NewHandler(deps.Metrics)).Methods(http.MethodGet)

	auth := r.PathPrefix("/auth").Subrouter()
	loginLimit := httpmw.RateLimit(deps.Limiter, httpmw.ClientIP, 10, time.Minute)
	auth.Handle("/dev-login", loginLimit(http.HandlerFunc(deps.AuthHandler.DevLogin))).Methods(http.MethodPost)
	auth.Handle("/login", loginLimit(http.HandlerFunc(deps.AuthHandler.Login))).Methods(http.MethodGet)
	auth.HandleFunc("/callback", deps.AuthHandler.Callback).Methods(http.MethodGet)
	auth.HandleFunc("/refresh", deps.AuthHandler.Refresh).Methods(http.MethodPost)
	auth.HandleFunc("/logout", deps.AuthHandler.Logout).Methods(http.MethodPost)
	auth.Handle("/me", deps.AuthMiddleware.Authenticate(http.HandlerFunc(deps.AuthHandler.Me))).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(deps.AuthMiddleware.Authenticate)

	api.HandleFunc("/teams", deps.TeamHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/teams", deps.TeamHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/teams/{teamID}", deps.TeamHandler.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/users", deps.UserHandler.List).Methods(http.MethodGet)

	api.HandleFunc("/candidates", deps.CandidateHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/candidates", deps.CandidateHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/candidates/{candidateID}", deps.CandidateHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/candidates/{candidateID}", deps.CandidateHandler.Update).Methods(http.MethodPatch)
	api.HandleFunc("/candidates/{candidateID}/archive", deps.CandidateHandler.Archive).Methods(http.MethodPost)
	api.HandleFunc("/candidates/{candidateID}/positions", deps.CandidateHandler.AttachPosition).Methods(http.MethodPost)
	api.HandleFunc("/candidates/{candidateID}/positions/{positionID}", deps.CandidateHandler.UpdateStage).Methods(http.MethodPatch)
	api.HandleFunc("/candidates/{candidateID}/positions/{positionID}", deps.CandidateHandler.DetachPosition).Methods(http.MethodDelete)

	api.HandleFunc("/positions", deps.PositionHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/positions", deps.PositionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/positions/{positionID}", deps.PositionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/positions/{positionID}", deps.PositionHandler.Update).Methods(http.MethodPatch)
	api.HandleFunc("/positions/{positionID}/archive", deps.PositionHandler.Archive).Methods(http.MethodPost)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{deps.CORSOrigin}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "X-Request-ID"}),
		handlers.AllowCredentials(),
	)

	// Chain wraps inside-out: RequestID must sit outside Logging so the
	// logged request already carries the ID in its context.
	return httpmw.Chain(cors(r),
		httpmw.Logging(deps.Logger),
		httpmw.RequestID,
		httpmw.Metrics(deps.Metrics),
		httpmw.Recover(deps.Logger),
		httpmw.Timeout(deps.RequestTimeout),
	)
}
