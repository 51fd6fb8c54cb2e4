package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockTestService struct {
	mock.Mock
}

func (m *MockTestService) Test(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockTestService) SecondTest(ctx context.Context) {
	m.Called(ctx)
}
