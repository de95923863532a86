package parcelrepo_test

import (
	"context"
	"fmt"
	"net/url"
	"testing"
	"time"

	postgres_adapter "parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/adapters/out/postgres/pgtest"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/listing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *parcelrepo.GormParcelRepository
	tracker    *MockAggregateTracker
	base       time.Time
}

func TestParcelRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pg, err := pgtest.Start(ctx)
	suite.Require().NoError(err)
	suite.pg = pg

	suite.Require().NoError(postgres_adapter.Migrate(ctx, pg.DB))
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Stop(context.Background()))
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate(postgres_adapter.Tables()...))

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = parcelrepo.NewGormParcelRepository(suite.pg.DB, suite.tracker)
	suite.base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (suite *ParcelRepositoryIntegrationTestSuite) newParcel(seq int, weight float64, city string) *parcel.Parcel {
	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		fmt.Sprintf("PKG%d", 1000+seq),
		kernel.NewUUID(),
		parcel.Recipient{
			Name:    fmt.Sprintf("Recipient %d", seq),
			Email:   fmt.Sprintf("r%d@example.com", seq),
			Phone:   "555-0100",
			Address: kernel.Address{Street: "1 Main", City: city, State: "TX", ZipCode: "73301"},
		},
		parcel.Details{
			Weight:      weight,
			Dimensions:  parcel.Dimensions{Length: 10, Width: 10, Height: 10},
			Description: "box",
			Value:       10,
			Category:    parcel.Electronics,
		},
		parcel.Shipping{Service: parcel.Standard, Cost: 9.49, EstimatedDelivery: suite.base.AddDate(0, 0, 5)},
		suite.base.Add(time.Duration(seq)*time.Minute),
	)
	suite.Require().NoError(err)
	return p
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	p := suite.newParcel(1, 3, "Austin")

	suite.Require().NoError(suite.repository.Add(ctx, p))

	got, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(p.TrackingNumber(), got.TrackingNumber())
	suite.Equal(p.Recipient(), got.Recipient())
	suite.Equal(p.Details(), got.Details())
	suite.Equal(p.Shipping(), got.Shipping())
	suite.Equal(p.StatusHistory(), got.StatusHistory())
	suite.Equal(parcel.Pending, got.Status())

	byNumber, err := suite.repository.GetByTrackingNumber(ctx, p.TrackingNumber())
	suite.Require().NoError(err)
	suite.True(byNumber.ID().IsEqual(p.ID()))

	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", p.ID(), p)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_AppendsHistory() {
	ctx := context.Background()
	p := suite.newParcel(1, 3, "Austin")
	suite.Require().NoError(suite.repository.Add(ctx, p))

	courierID := kernel.NewUUID()
	suite.Require().NoError(p.AssignCourier(courierID, suite.base))
	_, err := p.ChangeStatus(parcel.PickedUp, "Depot", "", suite.base.Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, p))

	// saving again without a status change adds nothing
	suite.Require().NoError(suite.repository.Update(ctx, p))

	got, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Len(got.StatusHistory(), 2)
	suite.Equal("Depot", got.StatusHistory()[1].Location)
	suite.True(got.IsAssignedTo(courierID))

	var rows int64
	suite.Require().NoError(suite.pg.DB.Model(&parcelrepo.StatusHistoryDTO{}).Count(&rows).Error)
	suite.Equal(int64(2), rows)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_DeletedParcelIsNotRecreated() {
	ctx := context.Background()
	p := suite.newParcel(1, 3, "Austin")
	suite.Require().NoError(suite.repository.Add(ctx, p))
	suite.Require().NoError(suite.repository.Delete(ctx, p.ID()))

	_, err := p.ChangeStatus(parcel.PickedUp, "Depot", "", suite.base.Add(time.Hour))
	suite.Require().NoError(err)
	err = suite.repository.Update(ctx, p)

	suite.ErrorIs(err, errs.ErrObjectNotFound)
	_, err = suite.repository.Get(ctx, p.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	var rows int64
	suite.Require().NoError(suite.pg.DB.Model(&parcelrepo.StatusHistoryDTO{}).Count(&rows).Error)
	suite.Zero(rows)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_DuplicateTrackingNumber() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newParcel(1, 3, "Austin")))

	err := suite.repository.Add(ctx, suite.newParcel(1, 4, "Dallas"))

	suite.ErrorIs(err, ports.ErrDuplicateTrackingNumber)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetByTrackingNumber(context.Background(), "PKG0")
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestDelete_RemovesHistory() {
	ctx := context.Background()
	p := suite.newParcel(1, 3, "Austin")
	suite.Require().NoError(suite.repository.Add(ctx, p))

	suite.Require().NoError(suite.repository.Delete(ctx, p.ID()))

	var rows int64
	suite.Require().NoError(suite.pg.DB.Model(&parcelrepo.StatusHistoryDTO{}).Count(&rows).Error)
	suite.Zero(rows)
	suite.ErrorIs(suite.repository.Delete(ctx, p.ID()), errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestList_WeightFilterSortAndLimit() {
	ctx := context.Background()
	weights := []float64{1, 5, 7, 9, 2}
	for i, w := range weights {
		suite.Require().NoError(suite.repository.Add(ctx, suite.newParcel(i, w, "Austin")))
	}

	q, err := listing.ParseQuery(url.Values{
		"weight[gte]": {"5"},
		"sort":        {"-createdAt"},
		"limit":       {"2"},
	}, ports.ParcelListing)
	suite.Require().NoError(err)

	parcels, total, err := suite.repository.List(ctx, q)

	suite.Require().NoError(err)
	suite.Equal(int64(3), total, "total uses the same filter as the page")
	suite.Require().Len(parcels, 2)
	suite.Equal(9.0, parcels[0].Details().Weight)
	suite.Equal(7.0, parcels[1].Details().Weight)
	suite.Len(parcels[0].StatusHistory(), 1)

	page := listing.Paginate(q.Page, total)
	suite.NotNil(page.Next)
	suite.Nil(page.Prev)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestList_NestedAndSearch() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newParcel(1, 1, "Austin")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newParcel(2, 1, "Dallas")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newParcel(3, 1, "Austin")))

	q, err := listing.ParseQuery(url.Values{"recipient.address.city": {"Austin"}}, ports.ParcelListing)
	suite.Require().NoError(err)
	parcels, total, err := suite.repository.List(ctx, q)
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(parcels, 2)

	q, err = listing.ParseQuery(url.Values{"search": {"R2@EXAMPLE"}}, ports.ParcelListing)
	suite.Require().NoError(err)
	parcels, total, err = suite.repository.List(ctx, q)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("PKG1002", parcels[0].TrackingNumber())

	q, err = listing.ParseQuery(url.Values{"status[in]": {"pending,cancelled"}, "page": {"2"}, "limit": {"2"}}, ports.ParcelListing)
	suite.Require().NoError(err)
	parcels, total, err = suite.repository.List(ctx, q)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(parcels, 1)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestList_EveryFieldHasAColumn() {
	for field, def := range ports.ParcelListing.Fields {
		var value string
		switch def.Kind {
		case listing.KindNumber:
			value = "1"
		case listing.KindTime:
			value = "2026-01-01"
		case listing.KindUUID:
			value = kernel.NewUUID().String()
		default:
			value = "x"
		}

		q, err := listing.ParseQuery(url.Values{field: {value}, "sort": {field}}, ports.ParcelListing)
		suite.Require().NoError(err, field)

		_, _, err = suite.repository.List(context.Background(), q)
		suite.NoError(err, field)
	}
}
