package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/replyflow/replyflow-backend/repositories"
)

type ExecutorFactory struct {
	mock.Mock
}

func (f *ExecutorFactory) NewExecutor() repositories.Executor {
	args := f.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(repositories.Executor)
}

// TransactionFactory runs the transaction callback against TxMock, so tests
// assert repository calls on the same mock inside and outside transactions.
type TransactionFactory struct {
	mock.Mock
	TxMock *Transaction
}

func (t *TransactionFactory) Transaction(ctx context.Context,
	fn func(tx repositories.Transaction) error,
) error {
	args := t.Called(ctx, fn)
	if err := fn(t.TxMock); err != nil {
		return err
	}
	return args.Error(0)
}
