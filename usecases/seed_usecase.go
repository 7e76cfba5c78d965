package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/pure_utils"
	"github.com/driveline/rental-backend/repositories"
	"github.com/driveline/rental-backend/utils"
)

type seedUserRepository interface {
	UserByEmail(ctx context.Context, exec repositories.Executor, email string) (*models.User, error)
	CreateUser(ctx context.Context, exec repositories.Executor, newUserId string,
		input models.CreateUserInput, passwordHash string) error
}

type seedMenuRepository interface {
	ListMenuItems(ctx context.Context, exec repositories.Executor, onlyActive bool) ([]models.MenuItem, error)
	CreateMenuItem(ctx context.Context, exec repositories.Executor, newMenuItemId string,
		input models.CreateMenuItemInput) error
}

type SeedUsecase struct {
	executorFactory repositories.TransactionFactory
	userRepository  seedUserRepository
	menuRepository  seedMenuRepository
}

// SeedAdminUser creates the initial admin account if the email is not taken.
// Called at startup with CREATE_ADMIN_EMAIL / CREATE_ADMIN_PASSWORD.
func (usecase SeedUsecase) SeedAdminUser(ctx context.Context, email, password string) error {
	logger := utils.LoggerFromContext(ctx)

	return usecase.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		existing, err := usecase.userRepository.UserByEmail(ctx, tx, email)
		if err != nil {
			return err
		}
		if existing != nil {
			logger.InfoContext(ctx, "admin user already exists, skipping seed", "email", email)
			return nil
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return errors.Wrap(err, "could not hash admin password")
		}

		err = usecase.userRepository.CreateUser(ctx, tx, uuid.NewString(), models.CreateUserInput{
			Email:    email,
			FullName: "Admin",
			Role:     models.ADMIN,
		}, string(hash))
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "seeded admin user", "email", email)
		return nil
	})
}

// SeedDefaultMenu installs the stock navigation tree on an empty menu table.
func (usecase SeedUsecase) SeedDefaultMenu(ctx context.Context) error {
	return usecase.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		items, err := usecase.menuRepository.ListMenuItems(ctx, tx, false)
		if err != nil {
			return err
		}
		if len(items) > 0 {
			return nil
		}

		defaults := []models.CreateMenuItemInput{
			{Title: "Dashboard", Icon: "dashboard", Route: pure_utils.Ptr("/dashboard"), Order: 1, IsActive: true},
			{Title: "Cars", Icon: "directions_car", Route: pure_utils.Ptr("/cars"), Order: 2, IsActive: true},
			{Title: "Customers", Icon: "people", Route: pure_utils.Ptr("/customers"), Order: 3, IsActive: true},
			{Title: "Bookings", Icon: "event", Route: pure_utils.Ptr("/bookings"), Order: 4, IsActive: true},
			{
				Title: "Users", Icon: "admin_panel_settings", Route: pure_utils.Ptr("/users"), Order: 5,
				Roles: []models.Role{models.ADMIN}, IsActive: true,
			},
		}
		for _, input := range defaults {
			if err := usecase.menuRepository.CreateMenuItem(ctx, tx, uuid.NewString(), input); err != nil {
				return err
			}
		}
		return nil
	})
}
