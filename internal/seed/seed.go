package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/learntech/courseplanner/internal/app/models"
	"github.com/learntech/courseplanner/internal/app/repositories"
	"github.com/learntech/courseplanner/internal/db"
	"github.com/learntech/courseplanner/internal/pkg/logger"
)

// Transactor runs a function inside a database transaction
type Transactor interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// CreateDefaultRoles inserts the default roles that do not exist yet, in one
// transaction. It returns how many roles were created.
func CreateDefaultRoles(ctx context.Context, database Transactor) (int, error) {
	created := 0
	err := database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		roles := repositories.NewRoleRepository(tx)
		for _, name := range models.DefaultRoles {
			ok, err := roles.Ensure(ctx, name)
			if err != nil {
				return fmt.Errorf("failed to create role %q: %w", name, err)
			}
			if ok {
				created++
				logger.Info().Str("role", name).Msg("Created default role")
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info().Int("created", created).Msg("Default roles ensured")
	return created, nil
}
