// Package neutron wraps an OpenStack networking service client with the
// conventions benchmark scenarios rely on: generated resource names, atomic
// action timing, extension discovery, and translation of lookup failures
// into the framework error types.
package neutron

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack/common/extensions"
	cache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/perfstack/neutronbench/bench"
)

// DefaultExtensionCacheTTL bounds how long a fetched extension list is
// reused before the API is asked again.
const DefaultExtensionCacheTTL = 5 * time.Minute

const extensionsCacheKey = "extensions"

// Service exposes the networking API operations scenarios are built from.
// All methods are safe for concurrent use.
type Service struct {
	client   *gophercloud.ServiceClient
	names    *bench.NameGenerator
	actions  *bench.ActionLog
	cidrs    *bench.CIDRPool
	log      *zap.Logger
	extCache *cache.Cache
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

// WithCIDRPool sets the pool subnet CIDRs are drawn from.
func WithCIDRPool(pool *bench.CIDRPool) Option {
	return func(s *Service) {
		s.cidrs = pool
	}
}

// WithExtensionCacheTTL overrides DefaultExtensionCacheTTL.
func WithExtensionCacheTTL(ttl time.Duration) Option {
	return func(s *Service) {
		s.extCache = cache.New(ttl, ttl)
	}
}

// New creates a Service over client. The client is expected to be an
// authenticated networking v2 endpoint.
func New(client *gophercloud.ServiceClient, opts ...Option) (*Service, error) {
	if client == nil {
		return nil, errors.New("nil service client")
	}

	s := &Service{
		client: client,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.names == nil {
		s.names = bench.NewRunNameGenerator(uuid.New())
	}
	if s.cidrs == nil {
		s.cidrs = bench.DefaultCIDRPool
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.extCache == nil {
		s.extCache = cache.New(DefaultExtensionCacheTTL, DefaultExtensionCacheTTL)
	}
	return s, nil
}

// SupportsExtension reports whether the networking service advertises the
// extension with the given alias, e.g. "ext-gw-mode". The extension list is
// cached.
func (s *Service) SupportsExtension(ctx context.Context, alias string) (bool, error) {
	exts, err := s.listExtensions(ctx)
	if err != nil {
		return false, err
	}
	for _, ext := range exts {
		if ext.Alias == alias {
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) listExtensions(ctx context.Context) ([]extensions.Extension, error) {
	if cached, ok := s.extCache.Get(extensionsCacheKey); ok {
		return cached.([]extensions.Extension), nil
	}

	stop := s.actions.Start("neutron.list_extensions")
	defer stop()

	pages, err := extensions.List(s.client).AllPages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing extensions")
	}
	exts, err := extensions.ExtractExtensions(pages)
	if err != nil {
		return nil, errors.Wrap(err, "extracting extensions")
	}

	s.log.Debug("cached extension list", zap.Int("extensions", len(exts)))
	s.extCache.SetDefault(extensionsCacheKey, exts)
	return exts, nil
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
