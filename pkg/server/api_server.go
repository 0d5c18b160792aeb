package server

import (
	"errors"

	"github.com/NeuralTrust/toxicity-api/pkg/config"
	"github.com/NeuralTrust/toxicity-api/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	APIServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
	}
	APIServer struct {
		*BaseServer
	}
)

// NewAPIServer registers every route up front, so Run can be called without touching the
// route table.
func NewAPIServer(di APIServerDI) (*APIServer, error) {
	s := &APIServer{
		BaseServer: NewBaseServer(di.Config, di.Logger),
	}
	if err := s.WithRouters(di.Routers...); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *APIServer) Run() error {
	addr := s.Config.Address()
	s.Logger.WithField("addr", addr).Info("starting toxicity API server")
	return s.Router.Listen(addr)
}

func (s *APIServer) Shutdown() error {
	s.Logger.Info("shutting down toxicity API server")
	return errors.Join(
		s.Router.ShutdownWithTimeout(s.Config.Server.ShutdownTimeout),
		s.shutdownMetrics(),
	)
}
