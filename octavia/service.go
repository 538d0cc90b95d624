// Package octavia wraps an OpenStack load-balancer service client with the
// same scenario conventions the neutron package carries: generated names,
// atomic action timing, and framework error translation. Load balancers are
// additionally polled until their provisioning settles.
package octavia

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gophercloud/gophercloud/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/perfstack/neutronbench/bench"
)

// Provisioning wait defaults. Load balancers are slow to build, so the
// timeout is far above the framework default.
const (
	DefaultActiveTimeout  = 500 * time.Second
	DefaultActiveInterval = 2 * time.Second
)

// Provisioning statuses the create wait keys on.
const (
	StatusActive = "ACTIVE"
	StatusError  = "ERROR"
)

// Service exposes the load-balancer API operations scenarios are built from.
// All methods are safe for concurrent use.
type Service struct {
	client         *gophercloud.ServiceClient
	names          *bench.NameGenerator
	actions        *bench.ActionLog
	log            *zap.Logger
	activeTimeout  time.Duration
	activeInterval time.Duration
}

// Option is a functional option for configuring a Service.
type Option func(*Service)

// WithNameGenerator sets the generator used for injected resource names.
func WithNameGenerator(gen *bench.NameGenerator) Option {
	return func(s *Service) {
		s.names = gen
	}
}

// WithActionLog directs atomic action timings into log.
func WithActionLog(log *bench.ActionLog) Option {
	return func(s *Service) {
		s.actions = log
	}
}

// WithLogger sets the service logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.log = logger
	}
}

// WithActiveWait overrides how long and how often CreateLoadBalancer polls
// for ACTIVE provisioning.
func WithActiveWait(timeout, interval time.Duration) Option {
	return func(s *Service) {
		s.activeTimeout = timeout
		s.activeInterval = interval
	}
}

// New creates a Service over client. The client is expected to be an
// authenticated load-balancer v2 endpoint.
func New(client *gophercloud.ServiceClient, opts ...Option) (*Service, error) {
	if client == nil {
		return nil, errors.New("nil service client")
	}

	s := &Service{
		client:         client,
		activeTimeout:  DefaultActiveTimeout,
		activeInterval: DefaultActiveInterval,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.names == nil {
		s.names = bench.NewRunNameGenerator(uuid.New())
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s, nil
}

// translateGetError maps lookup failures onto the framework error types:
// HTTP 404 becomes NotFoundError, anything else GetResourceError.
func translateGetError(err error, resource, id string) error {
	if err == nil {
		return nil
	}
	if gophercloud.ResponseCodeIs(err, http.StatusNotFound) {
		return &bench.NotFoundError{Resource: resource, ID: id}
	}
	return &bench.GetResourceError{Resource: resource, ID: id, Err: err}
}
