package queries_test

import (
	"context"
	"testing"
	"time"

	"picante/internal/adapters/out/postgres/tablerepo"
	"picante/internal/core/application/usecases/queries"
	"picante/internal/core/domain/model/table"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for wiring repositories in tests.
type mockAggregateTracker struct{}

func (*mockAggregateTracker) TrackAggregate(_ uint, _ any) {}

type GetAllTablesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllTablesQueryHandler
	tableRepo *tablerepo.GormTableRepository
}

func (suite *GetAllTablesQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&tablerepo.TableDTO{}))

	suite.handler = queries.NewGetAllTablesQueryHandler(db)
	suite.tableRepo = tablerepo.NewGormTableRepository(db, &mockAggregateTracker{})
}

func (suite *GetAllTablesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetAllTablesQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE restaurant_tables").Error)
}

func (suite *GetAllTablesQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllTablesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllTablesQueryHandlerTestSuite) TestHandle_ReturnsTablesOrderedByID() {
	ctx := context.Background()

	names := []string{"Mesa 1 (Ventana)", "Mesa 2 (Centro)", "Mesa 3 (Barra)"}
	for _, name := range names {
		tbl, err := table.NewTable(name, 2)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.tableRepo.Add(ctx, tbl))
	}

	query := queries.NewGetAllTablesQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	for i, resp := range result {
		suite.Equal(names[i], resp.Name)
		suite.Equal("AVAILABLE", resp.Status)
		suite.Nil(resp.OccupiedAt)
	}
}

func (suite *GetAllTablesQueryHandlerTestSuite) TestHandle_MapsStatusAndClocks() {
	ctx := context.Background()
	now := time.Now().UTC()

	tbl, err := table.NewTable("Mesa 4 (Terraza)", 6)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.tableRepo.Add(ctx, tbl))

	tbl.Occupy()
	tbl.ConfirmOrder(now)
	suite.Require().NoError(suite.tableRepo.Update(ctx, tbl))

	query := queries.NewGetAllTablesQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("READY_TO_KITCHEN", result[0].Status)
	suite.Require().NotNil(result[0].OccupiedAt)
	suite.WithinDuration(now, *result[0].OccupiedAt, time.Second)
}

func (suite *GetAllTablesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAllTablesQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAllTablesQuery constructor")
}

func TestGetAllTablesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllTablesQueryHandlerTestSuite))
}
