package class

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/escola/core"
)

type (
	Repository interface {
		// QueryAllClasses returns every class in insertion order.
		QueryAllClasses(ctx context.Context) ([]Class, error)
	}

	Service interface {
		List(ctx context.Context) ([]Class, error)
	}

	service struct {
		repo    Repository
		latency time.Duration
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository, conf *core.Config) Service {
	return &service{
		repo:    repo,
		latency: conf.Mock.Latency,
	}
}

func (svc *service) List(ctx context.Context) ([]Class, error) {
	if err := core.Sleep(ctx, svc.latency); err != nil {
		return nil, errors.Wrap(err, "waiting for classes")
	}
	return svc.repo.QueryAllClasses(ctx)
}
