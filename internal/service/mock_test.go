package service

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockInvalidator records invalidated cache keys.
type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) Invalidate(ctx context.Context, keys ...string) {
	m.Called(ctx, keys)
}

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }
