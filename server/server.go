package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/config"
)

const shutdownTimeout = 15 * time.Second

// Server plans routes for HTTP and WebSocket clients.
type Server struct {
	cfg      config.Config
	log      *logrus.Logger
	upgrader websocket.Upgrader
}

// New returns a Server using cfg's address and search limits.
// A nil log is replaced by logrus.New().
func New(cfg config.Config, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.New()
	}
	return &Server{
		cfg: cfg,
		log: log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Router registers every route without middleware.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()

	v1 := router.PathPrefix("/v1/").Subrouter()
	v1.Methods(http.MethodGet).Path("/path/stream").HandlerFunc(s.handleStream)
	v1.Methods(http.MethodGet).Path("/path").HandlerFunc(s.handleGetPath)
	v1.Methods(http.MethodPost).Path("/path").HandlerFunc(s.handlePostPath)

	router.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	router.Handle("/metrics", promhttp.Handler())

	return router
}

// Handler is Router wrapped in request id, logging and CORS middleware.
func (s *Server) Handler() http.Handler {
	router := s.Router()
	router.Use(mux.MiddlewareFunc(RequestID()), mux.MiddlewareFunc(Logging(s.log)))

	return Cors()(router)
}

// Run serves on cfg.Addr until ctx is done, then shuts down gracefully.
// It returns nil after a clean shutdown.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	s.log.Infof("ready to serve @ %s", s.cfg.Addr)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
