package executor_factory

import (
	"context"

	"github.com/replyflow/replyflow-backend/repositories"
)

type ExecutorFactory interface {
	NewExecutor() repositories.Executor
}

type TransactionFactory interface {
	Transaction(ctx context.Context, fn func(tx repositories.Transaction) error) error
}

// TransactionReturnValue runs fn in a transaction and carries its result out.
func TransactionReturnValue[T any](ctx context.Context, factory TransactionFactory,
	fn func(tx repositories.Transaction) (T, error),
) (T, error) {
	var value T
	err := factory.Transaction(ctx, func(tx repositories.Transaction) error {
		var err error
		value, err = fn(tx)
		return err
	})
	return value, err
}
