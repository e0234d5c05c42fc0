package repositories

import (
	"context"
	"testing"
	"time"

	"rentmart/internal/models"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type OrderRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    OrderRepository
	context context.Context
}

func (suite *OrderRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock
	suite.repo = NewOrderRepo(mock)
	suite.context = context.Background()
}

func (suite *OrderRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestOrderRepoTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepoTestSuite))
}

func orderRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "customer_name", "customer_phone", "event_date", "event_time", "venue", "venue_detail", "comments", "total", "paid", "deposit", "status", "delivered_by", "delivered_at", "picked_up_by", "picked_up_at", "created_at", "updated_at"})
}

func addOrderRow(rows *pgxmock.Rows, id uuid.UUID, name string, eventDate time.Time, status string, now time.Time) *pgxmock.Rows {
	return rows.AddRow(id, name, (*string)(nil), eventDate, "18:00", "Main Hall", (*string)(nil), (*string)(nil), 150.0, false, 0.0, status, (*string)(nil), (*time.Time)(nil), (*string)(nil), (*time.Time)(nil), now, now)
}

func (suite *OrderRepoTestSuite) TestCreate() {
	order := &models.Order{
		ID:           uuid.New(),
		CustomerName: "Maria",
		EventDate:    time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		EventTime:    "18:00",
		Venue:        "Main Hall",
		Total:        150,
		Status:       models.OrderStatusUpcoming,
	}

	suite.mock.ExpectExec(`INSERT INTO orders`).
		WithArgs(order.ID, order.CustomerName, order.CustomerPhone, order.EventDate, order.EventTime, order.Venue, order.VenueDetail, order.Comments, order.Total, order.Paid, order.Deposit, order.Status).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.context, order)
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *OrderRepoTestSuite) TestGetByID() {
	id := uuid.New()
	now := time.Now()
	eventDate := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	suite.mock.ExpectQuery(`SELECT (.+) FROM orders WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(addOrderRow(orderRows(), id, "Maria", eventDate, models.OrderStatusUpcoming, now))

	order, err := suite.repo.GetByID(suite.context, id)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Maria", order.CustomerName)
	assert.Equal(suite.T(), models.OrderStatusUpcoming, order.Status)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *OrderRepoTestSuite) TestListByEventDate_FiltersByStatus() {
	now := time.Now()
	eventDate := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	statuses := models.ActiveOrderStatuses()

	rows := orderRows()
	addOrderRow(rows, uuid.New(), "Maria", eventDate, models.OrderStatusUpcoming, now)
	addOrderRow(rows, uuid.New(), "Carlos", eventDate, models.OrderStatusDelivered, now)

	suite.mock.ExpectQuery(`SELECT (.+) FROM orders WHERE event_date = \$1 AND status = ANY\(\$2\)`).
		WithArgs(eventDate, statuses).
		WillReturnRows(rows)

	orders, err := suite.repo.ListByEventDate(suite.context, eventDate, statuses)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), orders, 2)
	assert.Equal(suite.T(), "Maria", orders[0].CustomerName)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *OrderRepoTestSuite) TestUpdate() {
	order := &models.Order{
		ID:           uuid.New(),
		CustomerName: "Maria",
		EventDate:    time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		EventTime:    "18:00",
		Venue:        "Main Hall",
		Total:        150,
		Status:       models.OrderStatusDelivered,
	}

	suite.mock.ExpectExec(`UPDATE orders SET`).
		WithArgs(order.CustomerName, order.CustomerPhone, order.EventDate, order.EventTime, order.Venue, order.VenueDetail, order.Comments, order.Total, order.Paid, order.Deposit, order.Status, order.DeliveredBy, order.DeliveredAt, order.PickedUpBy, order.PickedUpAt, order.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.Update(suite.context, order)
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *OrderRepoTestSuite) TestCountByDateRange() {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

	suite.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM orders WHERE event_date >= \$1 AND event_date <= \$2`).
		WithArgs(start, end).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

	count, err := suite.repo.CountByDateRange(suite.context, start, end)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 7, count)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *OrderRepoTestSuite) TestDelete() {
	id := uuid.New()

	suite.mock.ExpectExec(`DELETE FROM orders WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := suite.repo.Delete(suite.context, id)
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}
