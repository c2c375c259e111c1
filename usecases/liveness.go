package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/replyflow/replyflow-backend/usecases/executor_factory"
)

type LivenessUsecase struct {
	executorFactory executor_factory.ExecutorFactory
}

// Liveness checks that the database answers.
func (uc LivenessUsecase) Liveness(ctx context.Context) error {
	row := uc.executorFactory.NewExecutor().QueryRow(ctx, "SELECT 1")
	var one int
	if err := row.Scan(&one); err != nil {
		return errors.Wrap(err, "database liveness check failed")
	}
	return nil
}
