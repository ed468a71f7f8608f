package services

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/stretchr/testify/mock"
)

// MockAPI is a testify mock of APIGetter. The first return value of a Get
// expectation is marshalled into out when non-nil.
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) Get(ctx context.Context, path string, params url.Values, out any) error {
	args := m.Called(ctx, path, params)

	if payload := args.Get(0); payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return err
		}
	}

	return args.Error(1)
}
