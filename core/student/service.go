package student

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/escola/core"
)

type (
	// Repository is the data source students are read from.
	Repository interface {
		// QueryAllStudents returns every student in insertion order.
		QueryAllStudents(ctx context.Context) ([]Student, error)
	}

	// Service mediates between the views and a student data source.
	Service interface {
		// List returns the full student collection, in data source order.
		List(ctx context.Context) ([]Student, error)
	}

	service struct {
		repo    Repository
		latency time.Duration
	}
)

var _ Service = (*service)(nil)

// NewService returns a Service reading from repo after the configured mock latency,
// mimicking the round trip of a network-backed service.
func NewService(repo Repository, conf *core.Config) Service {
	return &service{
		repo:    repo,
		latency: conf.Mock.Latency,
	}
}

func (svc *service) List(ctx context.Context) ([]Student, error) {
	if err := core.Sleep(ctx, svc.latency); err != nil {
		return nil, errors.Wrap(err, "waiting for students")
	}
	return svc.repo.QueryAllStudents(ctx)
}
