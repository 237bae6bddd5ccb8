package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/bountyhub/internal/config"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
	s.app.cfg = &config.Config{
		Address:             "localhost:0",
		StoreDriver:         config.StoreMemory,
		LogLvl:              "info",
		GatewayAddress:      "http://localhost:8081",
		JWTSecret:           "secret",
		JWTIssuer:           "bountyhub",
		BatchSchedule:       "0 0 * * 0",
		GatewayTimeout:      time.Second,
		BatchGatewayTimeout: time.Second,
		PaymentWorkers:      1,
		SessionQueueSize:    8,
		SessionOverflow:     "drop_oldest",
		SessionIdleTimeout:  time.Minute,
		RateLimitRPS:        10,
		RateLimitBurst:      10,
	}
}

func (s *ApplicationSuite) TestWiringWithMemoryStore() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Require().NoError(s.app.initRepositories(ctx))
	s.Require().NoError(s.app.initServices())
	s.Require().NoError(s.app.startScheduler(ctx))
	defer s.app.stopBackground()

	s.NotNil(s.app.repo)
	s.NotNil(s.app.api)
	s.NotNil(s.app.srv.PayoutService)
	s.Nil(s.app.pool)
	s.Len(s.app.sched.Jobs(), 3)
}

func (s *ApplicationSuite) TestInitServicesRejectsUnknownOverflow() {
	s.app.cfg.SessionOverflow = "block"
	s.Require().NoError(s.app.initRepositories(context.Background()))

	err := s.app.initServices()

	s.Require().Error(err)
}

func (s *ApplicationSuite) TestStartSchedulerRejectsBadCron() {
	ctx := context.Background()
	s.app.cfg.BatchSchedule = "every sunday"
	s.Require().NoError(s.app.initRepositories(ctx))
	s.Require().NoError(s.app.initServices())
	defer s.app.srv.PayoutService.Close()

	err := s.app.startScheduler(ctx)

	s.Require().Error(err)
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}
