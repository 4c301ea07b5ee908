package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/adapters/out/postgres/shipmentrepo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ShipmentRepositoryIntegrationTestSuite exercises shipment persistence
// against a real PostgreSQL container, covering the optimistic-lock update
// path and tracking event round trips.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.TrackingEventDTO{},
	))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE tracking_events, shipments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) createTestShipment() *shipment.Shipment {
	return suite.createTestShipmentWithNumber(shipment.NewShipmentNumber(time.Now()))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) createTestShipmentWithNumber(number string) *shipment.Shipment {
	origin, err := shipment.NewAddressSnapshot(
		"1 Warehouse Way", "", "Newark", "NJ", "07105", "US", "")
	suite.Require().NoError(err)

	destination, err := shipment.NewAddressSnapshot(
		"42 Main St", "Apt 5", "Springfield", "IL", "62701", "US", "+13125550199")
	suite.Require().NoError(err)

	weight := 2.5
	aggregate, err := shipment.NewShipment(
		kernel.NewUUID(), number, kernel.NewUUID(),
		shipment.UPS, kernel.NewUUID(), 12.50,
		origin, destination,
		&weight, "30x20x10", map[string]string{"fragile": "true"},
		kernel.NewUUID(), time.Now().UTC().Truncate(time.Millisecond))
	suite.Require().NoError(err)

	return aggregate
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_ValidShipment_Success() {
	ctx := context.Background()

	aggregate := suite.createTestShipment()
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()

	err := suite.repository.Add(ctx, aggregate)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&shipmentrepo.ShipmentDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_ReturnsValueIsInvalid() {
	ctx := context.Background()

	number := shipment.NewShipmentNumber(time.Now())
	first := suite.createTestShipmentWithNumber(number)
	second := suite.createTestShipmentWithNumber(number)

	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_RoundTripsAllFields() {
	ctx := context.Background()

	original := suite.createTestShipment()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.Number(), retrieved.Number())
	suite.Equal(original.OrderID(), retrieved.OrderID())
	suite.Equal(shipment.Pending, retrieved.Status())
	suite.Equal(shipment.UPS, retrieved.Carrier())
	suite.Equal(original.Cost(), retrieved.Cost())
	suite.Equal(original.Origin(), retrieved.Origin())
	suite.Equal(original.Destination(), retrieved.Destination())
	suite.Equal(*original.WeightKG(), *retrieved.WeightKG())
	suite.Equal("30x20x10", retrieved.Dimensions())
	suite.Equal(map[string]string{"fragile": "true"}, retrieved.Metadata())
	suite.Equal(1, retrieved.Version())
	suite.Len(retrieved.TrackingHistory(), len(original.TrackingHistory()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetByNumber_FindsShipment() {
	ctx := context.Background()

	original := suite.createTestShipment()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.GetByNumber(ctx, original.Number())
	suite.Require().NoError(err)
	suite.Equal(original.ID(), retrieved.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_BumpsVersionAndAppendsHistory() {
	ctx := context.Background()

	aggregate := suite.createTestShipment()
	suite.tracker.On("TrackAggregate", aggregate.ID(), mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	changed, err := loaded.UpdateStatus(shipment.Shipped, shipment.StatusUpdate{
		TrackingNumber: "1Z999AA10123456784",
		Location:       "Newark, NJ",
		Description:    "Package picked up",
		UpdatedBy:      kernel.NewUUID(),
	}, time.Now().UTC())
	suite.Require().NoError(err)
	suite.True(changed)

	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Shipped, retrieved.Status())
	suite.Equal(2, retrieved.Version())
	suite.Equal("1Z999AA10123456784", retrieved.TrackingNumber())
	suite.NotNil(retrieved.ShippedAt())
	suite.Len(retrieved.TrackingHistory(), len(aggregate.TrackingHistory())+1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionIsInvalid() {
	ctx := context.Background()

	aggregate := suite.createTestShipment()
	suite.tracker.On("TrackAggregate", aggregate.ID(), mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	// Two copies loaded at version 1.
	first, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	updatedBy := kernel.NewUUID()
	_, err = first.UpdateStatus(shipment.Shipped, shipment.StatusUpdate{UpdatedBy: updatedBy}, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, first))

	_, err = second.UpdateStatus(shipment.Shipped, shipment.StatusUpdate{UpdatedBy: updatedBy}, time.Now().UTC())
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	// The stored row keeps the first writer's state.
	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(2, retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestRemove_DeletesShipmentAndHistory() {
	ctx := context.Background()

	aggregate := suite.createTestShipment()
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(suite.repository.Remove(ctx, aggregate.ID()))

	var shipmentCount, eventCount int64
	suite.Require().NoError(suite.db.Model(&shipmentrepo.ShipmentDTO{}).Count(&shipmentCount).Error)
	suite.Require().NoError(suite.db.Model(&shipmentrepo.TrackingEventDTO{}).Count(&eventCount).Error)
	suite.Zero(shipmentCount)
	suite.Zero(eventCount)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestRemove_NonExistent_ReturnsNotFoundError() {
	err := suite.repository.Remove(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
