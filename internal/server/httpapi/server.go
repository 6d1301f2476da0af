package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/services"
)

// HTTPServer serves the public JSON API.
type HTTPServer struct {
	address   string
	logger    logging.Logger
	users     *services.UserService
	tasks     *services.TaskService
	genders   *services.GenderService
	jwtSecret []byte
}

// NewHTTPServer wires the services into an HTTP server bound to address.
func NewHTTPServer(address string, l logging.Logger, us *services.UserService, ts *services.TaskService, gs *services.GenderService, secretKey string) (*HTTPServer, error) {
	return &HTTPServer{
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		tasks:     ts,
		genders:   gs,
		jwtSecret: []byte(secretKey),
	}, nil
}

// Run starts serving and blocks until ctx is cancelled, then shuts the
// listener down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
