package registry

import (
	"context"
	"errors"
	"fmt"
	"petregistry/internal/auth"
	"petregistry/internal/validation"
	"petregistry/pkg/domain"
	"petregistry/pkg/metrics"
	"petregistry/pkg/serrors"
	"petregistry/pkg/storage"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultOperationTimeout bounds an operation when Options leaves it unset.
	DefaultOperationTimeout = 10 * time.Second
	// DefaultBcryptCost is the password hashing cost when Options leaves it unset.
	DefaultBcryptCost = 12

	instrumentationName = "petregistry/internal/registry"
)

// TokenIssuer signs bearer tokens for authenticated users.
type TokenIssuer interface {
	IssueToken(userID domain.UserID, email string) (auth.Token, error)
}

// Options tunes the registry.
type Options struct {
	OperationTimeout time.Duration
	BcryptCost       int
}

// Deps are the collaborators of the registry. Storage and Tokens are
// required; the rest default to no-op or fresh instances.
type Deps struct {
	Storage   storage.Storage
	Tokens    TokenIssuer
	Validator *validation.Validator
	Meter     metric.Meter
	Tracer    trace.Tracer
}

// Service implements Registry.
type Service struct {
	storage   storage.Storage
	tokens    TokenIssuer
	validator *validation.Validator
	tracer    trace.Tracer
	recorder  *metrics.OperationRecorder
	opts      Options
}

// Ensure Service implements Registry.
var _ Registry = (*Service)(nil)

var errMissingDeps = errors.New("registry requires storage and a token issuer")

// New creates a registry Service.
func New(deps Deps, opts Options) (*Service, error) {
	if deps.Storage == nil || deps.Tokens == nil {
		return nil, errMissingDeps
	}
	if deps.Validator == nil {
		deps.Validator = validation.New()
	}
	if deps.Meter == nil {
		deps.Meter = noop.NewMeterProvider().Meter(instrumentationName)
	}
	if deps.Tracer == nil {
		deps.Tracer = otel.Tracer(instrumentationName)
	}
	if opts.OperationTimeout <= 0 {
		opts.OperationTimeout = DefaultOperationTimeout
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = DefaultBcryptCost
	}

	recorder, err := metrics.NewOperationRecorder(deps.Meter)
	if err != nil {
		return nil, fmt.Errorf("could not create registry metrics: %w", err)
	}

	return &Service{
		storage:   deps.Storage,
		tokens:    deps.Tokens,
		validator: deps.Validator,
		tracer:    deps.Tracer,
		recorder:  recorder,
		opts:      opts,
	}, nil
}

// fault classifies a storage error as ErrStorage with msg as its public
// message, unless it already carries a kind.
func fault(err error, msg string) error {
	var se *serrors.Error
	if errors.As(err, &se) && se.Kind() != nil {
		return err
	}

	return serrors.Wrap(serrors.ErrStorage, err, "%s", msg)
}

// parseID parses an opaque identifier. Strings that are not UUIDs cannot
// name any entity, so the caller treats them as absent.
func parseID(s string) (uuid.UUID, bool) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// run executes fn under the operation deadline, inside a span, and records
// its outcome.
func run[T any](ctx context.Context, s *Service, operation string, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.OperationTimeout)
	defer cancel()

	ctx, span := s.tracer.Start(ctx, "registry."+operation)
	defer span.End()

	start := time.Now()
	out, err := fn(ctx)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		err = serrors.Wrap(serrors.ErrTimeout, err, "request timed out")
	}

	s.observe(ctx, span, operation, err, time.Since(start))

	return out, err
}
