package student

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/escola/core"
)

const studentsPath = "/students"

type remoteService struct {
	client core.APIClient
}

var _ Service = (*remoteService)(nil)

// NewRemoteService returns a Service backed by the backend API.
func NewRemoteService(client core.APIClient) Service {
	return &remoteService{client: client}
}

func (svc *remoteService) List(ctx context.Context) ([]Student, error) {
	var students []Student
	if err := svc.client.GetJSON(ctx, studentsPath, nil, &students); err != nil {
		return nil, errors.Wrap(err, "fetching students")
	}
	if students == nil {
		students = []Student{}
	}
	return students, nil
}
