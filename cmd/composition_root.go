package cmd

import (
	"fmt"
	"log/slog"

	httpadapter "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/adapters/out/bcrypt"
	"parceltrack/internal/adapters/out/jwt"
	"parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot holds the shared infrastructure and builds every use case handler.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	hasher ports.PasswordHasher
	tokens ports.TokenService

	policy     services.AccessPolicy
	lifecycle  services.ParcelLifecycle
	calculator services.ShippingCalculator
}

// NewCompositionRoot prepares the unit of work factory, security adapters and domain services.
// It fails when the token service cannot be configured.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	tokens, err := jwt.NewTokenService(config.JWTSecret, config.JWTExpire)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("token service: %w", err)
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		hasher:     bcrypt.NewHasher(config.BcryptCost),
		tokens:     tokens,
		policy:     services.NewAccessPolicy(),
		lifecycle:  services.NewParcelLifecycle(),
		calculator: services.NewShippingCalculator(),
	}, nil
}

// NewServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) NewServer() *httpadapter.Server {
	return httpadapter.NewServer(c.handlers(), httpadapter.NewAuthenticator(c.tokens, c.repositoriesFactory()), c.logger)
}

func (c *CompositionRoot) handlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		RegisterUser:   commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.hasher, c.tokens),
		Login:          commands.NewLoginCommandHandler(c.userUoWFactory(), c.hasher, c.tokens),
		UpdateProfile:  commands.NewUpdateProfileCommandHandler(c.userUoWFactory()),
		UpdateUser:     commands.NewUpdateUserCommandHandler(c.userUoWFactory()),
		DeleteUser:     commands.NewDeleteUserCommandHandler(c.userUoWFactory()),
		CreateParcel:   commands.NewCreateParcelCommandHandler(c.parcelUoWFactory(), c.calculator),
		UpdateParcel:   commands.NewUpdateParcelCommandHandler(c.parcelUoWFactory(), c.policy, c.calculator),
		DeleteParcel:   commands.NewDeleteParcelCommandHandler(c.parcelUoWFactory(), c.policy),
		AssignAgent:    commands.NewAssignAgentCommandHandler(c.parcelUoWFactory(), c.policy),
		CreateDelivery: commands.NewCreateDeliveryCommandHandler(c.uowFactoryFunc(), c.policy, c.lifecycle),
		UpdateDelivery: commands.NewUpdateDeliveryCommandHandler(c.uowFactoryFunc(), c.policy),
		ReportDelivery: commands.NewUpdateDeliveryStatusCommandHandler(c.uowFactoryFunc(), c.policy, c.lifecycle),

		GetUser:         queries.NewGetUserQueryHandler(c.repositoriesFactory(), c.policy),
		ListUsers:       queries.NewListUsersQueryHandler(c.repositoriesFactory(), c.policy),
		GetParcel:       queries.NewGetParcelQueryHandler(c.repositoriesFactory(), c.policy),
		ListParcels:     queries.NewListParcelsQueryHandler(c.repositoriesFactory(), c.policy),
		TrackParcel:     queries.NewTrackParcelQueryHandler(c.repositoriesFactory()),
		GetDelivery:     queries.NewGetDeliveryQueryHandler(c.repositoriesFactory(), c.policy),
		ListDeliveries:  queries.NewListDeliveriesQueryHandler(c.repositoriesFactory(), c.policy),
		GetAllCouriers:  queries.NewGetAllCouriersQueryHandler(c.gormDB, c.policy),
		GetCourierStats: queries.NewGetCourierStatsQueryHandler(c.gormDB, c.policy),
	}
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uowFactoryFunc() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// Reads run on a unit of work that is never begun, so they go straight to the pool.
func (c *CompositionRoot) repositoriesFactory() queries.RepositoriesFactory {
	return FuncRepositoriesFactory(func() queries.Repositories {
		return c.uowFactory.Create()
	})
}

// FuncUserUoWFactory adapts a function to commands.UserUoWFactory.
type FuncUserUoWFactory func() commands.UserUoW

// Create calls f.
func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

// FuncParcelUoWFactory adapts a function to commands.ParcelUoWFactory.
type FuncParcelUoWFactory func() commands.ParcelUoW

// Create calls f.
func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

// FuncUoWFactory adapts a function to commands.UoWFactory.
type FuncUoWFactory func() commands.UoW

// Create calls f.
func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

// FuncRepositoriesFactory adapts a function to queries.RepositoriesFactory.
type FuncRepositoriesFactory func() queries.Repositories

// Create calls f.
func (f FuncRepositoriesFactory) Create() queries.Repositories {
	return f()
}
