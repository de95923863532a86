package http_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	httpadapter "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/listing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTokenService struct{ mock.Mock }

func (m *MockTokenService) Issue(userID kernel.UUID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Verify(token string) (kernel.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, q listing.Query) ([]*user.User, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*user.User), args.Get(1).(int64), args.Error(2)
}

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockParcelRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*parcel.Parcel, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) List(ctx context.Context, q listing.Query) ([]*parcel.Parcel, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*parcel.Parcel), args.Get(1).(int64), args.Error(2)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) List(ctx context.Context, q listing.Query) ([]*delivery.Delivery, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*delivery.Delivery), args.Get(1).(int64), args.Error(2)
}

// fakeRepositories hands the same mocks to every read.
type fakeRepositories struct {
	users      *MockUserRepository
	parcels    *MockParcelRepository
	deliveries *MockDeliveryRepository
}

func (f *fakeRepositories) Create() queries.Repositories {
	return f
}

func (f *fakeRepositories) UserRepository() ports.UserRepository {
	return f.users
}

func (f *fakeRepositories) ParcelRepository() ports.ParcelRepository {
	return f.parcels
}

func (f *fakeRepositories) DeliveryRepository() ports.DeliveryRepository {
	return f.deliveries
}

// harness is a router wired to read-side use cases over mocks. Write-side routes are
// covered by the command tests.
type harness struct {
	e      *echo.Echo
	tokens *MockTokenService
	repos  *fakeRepositories
}

func newHarness(t *testing.T) harness {
	t.Helper()
	repos := &fakeRepositories{
		users:      new(MockUserRepository),
		parcels:    new(MockParcelRepository),
		deliveries: new(MockDeliveryRepository),
	}
	tokens := new(MockTokenService)
	policy := services.NewAccessPolicy()

	server := httpadapter.NewServer(httpadapter.Handlers{
		GetUser:        queries.NewGetUserQueryHandler(repos, policy),
		ListUsers:      queries.NewListUsersQueryHandler(repos, policy),
		GetParcel:      queries.NewGetParcelQueryHandler(repos, policy),
		ListParcels:    queries.NewListParcelsQueryHandler(repos, policy),
		TrackParcel:    queries.NewTrackParcelQueryHandler(repos),
		GetDelivery:    queries.NewGetDeliveryQueryHandler(repos, policy),
		ListDeliveries: queries.NewListDeliveriesQueryHandler(repos, policy),
	}, httpadapter.NewAuthenticator(tokens, repos), slog.New(slog.NewTextHandler(io.Discard, nil)))

	return harness{e: httpadapter.NewRouter(server, nil), tokens: tokens, repos: repos}
}

// signIn makes token resolve to u.
func (h harness) signIn(u *user.User, token string) {
	h.tokens.On("Verify", token).Return(u.ID(), nil)
	h.repos.users.On("Get", mock.Anything, u.ID()).Return(u, nil)
}

func newTestUser(t *testing.T, role user.Role) *user.User {
	t.Helper()
	id := kernel.NewUUID()
	u, err := user.NewUser(id, user.Profile{
		Name:  "User " + string(role),
		Email: id.String() + "@example.com",
		Phone: "555-0100",
	}, "hash", role, time.Now())
	require.NoError(t, err)
	return u
}

func newTestParcel(t *testing.T, senderID kernel.UUID) *parcel.Parcel {
	t.Helper()
	now := time.Now()
	p, err := parcel.NewParcel(kernel.NewUUID(), parcel.NewTrackingNumber(now), senderID,
		parcel.Recipient{
			Name:    "Bo Chen",
			Email:   "bo@example.com",
			Phone:   "555-0101",
			Address: kernel.Address{Street: "2 Elm", City: "Austin", State: "TX", ZipCode: "73301"},
		},
		parcel.Details{Weight: 3, Dimensions: parcel.Dimensions{Length: 10, Width: 10, Height: 10}, Description: "books"},
		parcel.Shipping{Service: parcel.Express, Cost: 20.49, EstimatedDelivery: now.AddDate(0, 0, 2)},
		now)
	require.NoError(t, err)
	return p
}
