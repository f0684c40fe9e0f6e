package class

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/escola/core"
)

const classesPath = "/classes"

type remoteService struct {
	client core.APIClient
}

var _ Service = (*remoteService)(nil)

// NewRemoteService returns a Service backed by the backend API.
func NewRemoteService(client core.APIClient) Service {
	return &remoteService{client: client}
}

func (svc *remoteService) List(ctx context.Context) ([]Class, error) {
	var classes []Class
	if err := svc.client.GetJSON(ctx, classesPath, nil, &classes); err != nil {
		return nil, errors.Wrap(err, "fetching classes")
	}
	if classes == nil {
		classes = []Class{}
	}
	return classes, nil
}
