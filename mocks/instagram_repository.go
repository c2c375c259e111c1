package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/replyflow/replyflow-backend/repositories"
)

type GraphSender struct {
	mock.Mock
}

func (_m *GraphSender) GetProfile(ctx context.Context, igUserId, accessToken string) (repositories.InstagramProfile, error) {
	args := _m.Called(ctx, igUserId, accessToken)
	return args.Get(0).(repositories.InstagramProfile), args.Error(1)
}

func (_m *GraphSender) SendMessage(ctx context.Context, igUserId, accessToken, recipientId, text string) error {
	args := _m.Called(ctx, igUserId, accessToken, recipientId, text)
	return args.Error(0)
}

func (_m *GraphSender) ReplyToComment(ctx context.Context, accessToken, commentId, text string) error {
	args := _m.Called(ctx, accessToken, commentId, text)
	return args.Error(0)
}
