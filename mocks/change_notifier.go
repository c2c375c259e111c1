package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/replyflow/replyflow-backend/models"
)

type ChangeNotifier struct {
	mock.Mock
}

func (_m *ChangeNotifier) Publish(ctx context.Context, event models.ChangeEvent) {
	_m.Called(ctx, event)
}
