package main

import (
	"fmt"
	"time"

	"github.com/JaimeStill/stylarch/internal/config"
	"github.com/JaimeStill/stylarch/internal/infrastructure"
)

// Server ties the infrastructure, mounted modules, and HTTP listener
// to one lifecycle.
type Server struct {
	cfg     *config.Config
	infra   *infrastructure.Infrastructure
	modules *Modules
	http    *httpServer
}

func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("infrastructure: %w", err)
	}

	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, fmt.Errorf("modules: %w", err)
	}

	router := buildRouter(infra, cfg)
	if err := modules.Mount(router); err != nil {
		return nil, fmt.Errorf("mount: %w", err)
	}

	s := &Server{
		cfg:     cfg,
		infra:   infra,
		modules: modules,
		http:    newHTTPServer(&cfg.Server, router, infra.Logger),
	}

	infra.Logger.Info("server initialized", "addr", cfg.Server.Addr(), "modules", router.Prefixes())
	return s, nil
}

// Start brings up the subsystems and the listener. Readiness is logged
// once every startup hook has returned.
func (s *Server) Start() error {
	began := time.Now()

	if err := s.infra.Start(); err != nil {
		return err
	}
	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("subsystems ready", "elapsed", time.Since(began).Round(time.Millisecond))
	}()
	return nil
}

func (s *Server) Shutdown() error {
	timeout := s.cfg.ShutdownTimeoutDuration()
	s.infra.Logger.Info("shutting down", "timeout", timeout)
	return s.infra.Lifecycle.Shutdown(timeout)
}
