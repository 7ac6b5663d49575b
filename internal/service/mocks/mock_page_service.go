package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mcpsite/internal/service"
)

type MockPageService struct {
	mock.Mock
}

func (m *MockPageService) Render(ctx context.Context, slug string) ([]byte, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockPageService) Pages(ctx context.Context) *service.PageListResult {
	args := m.Called(ctx)
	return args.Get(0).(*service.PageListResult)
}

func (m *MockPageService) Applications(ctx context.Context) *service.ApplicationListResult {
	args := m.Called(ctx)
	return args.Get(0).(*service.ApplicationListResult)
}

func (m *MockPageService) Check(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
