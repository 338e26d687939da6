package mocks

import (
	"context"

	"github.com/pageza/calorielens/backend/internal/classifier"
	"github.com/stretchr/testify/mock"
)

// MockClassifier is a mock implementation of classifier.Classifier
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, image []byte) (*classifier.Result, error) {
	args := m.Called(ctx, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*classifier.Result), args.Error(1)
}

var _ classifier.Classifier = (*MockClassifier)(nil)
