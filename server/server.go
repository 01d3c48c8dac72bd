// Package server exposes the explainer as an HTTP request/response endpoint.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ChainSafe/mips-explain/decoder"
	"github.com/ChainSafe/mips-explain/explainer"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// ExplainRequest is the body of POST /explain.
type ExplainRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode"` // hex or asm, defaults to the server mode
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server serves explanation requests.
type Server struct {
	echo        *echo.Echo
	explainer   *explainer.Explainer
	defaultMode explainer.Mode
	log         logrus.FieldLogger
}

// New creates a Server and registers its routes.
func New(exp *explainer.Explainer, defaultMode explainer.Mode, log logrus.FieldLogger) *Server {
	s := &Server{
		echo:        echo.New(),
		explainer:   exp,
		defaultMode: defaultMode,
		log:         log,
	}
	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Use(s.requestLogger)

	s.echo.GET("/healthz", s.health)
	s.echo.GET("/registers", s.registers)
	s.echo.POST("/explain", s.explain)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", addr).Info("starting explain server")
		errCh <- s.echo.Start(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) registers(c echo.Context) error {
	return c.JSON(http.StatusOK, decoder.Registers())
}

func (s *Server) explain(c echo.Context) error {
	var req ExplainRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	mode := s.defaultMode
	if req.Mode != "" {
		mode = explainer.Mode(req.Mode)
	}
	if mode != explainer.ModeHex && mode != explainer.ModeAsm {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid mode: " + req.Mode})
	}

	report, err := s.explainer.Explain(req.Text, mode == explainer.ModeHex)
	if err != nil {
		s.log.WithError(err).WithField("input", req.Text).Debug("explain request rejected")
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, report)
}

func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}
		s.log.WithFields(logrus.Fields{
			"method":  c.Request().Method,
			"path":    c.Request().URL.Path,
			"status":  c.Response().Status,
			"latency": time.Since(start),
		}).Info("request")
		return nil
	}
}
