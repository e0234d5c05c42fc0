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

type ProductRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    ProductRepository
	context context.Context
}

func (suite *ProductRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock
	suite.repo = NewProductRepo(mock)
	suite.context = context.Background()
}

func (suite *ProductRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestProductRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepoTestSuite))
}

func productRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "is_bundle", "has_colors", "has_sizes", "color_slot", "rental_price", "stock_total", "created_at", "updated_at"})
}

func (suite *ProductRepoTestSuite) TestCreate() {
	product := &models.Product{
		ID:          uuid.New(),
		Name:        "Chair",
		RentalPrice: 5,
		StockTotal:  100,
	}

	suite.mock.ExpectExec(`INSERT INTO products`).
		WithArgs(product.ID, product.Name, product.IsBundle, product.HasColors, product.HasSizes, product.ColorSlot, product.RentalPrice, product.StockTotal).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.context, product)
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *ProductRepoTestSuite) TestGetByID() {
	id := uuid.New()
	now := time.Now()

	suite.mock.ExpectQuery(`SELECT (.+) FROM products WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(productRows().AddRow(id, "Chair", false, false, false, "", 5.0, 100, now, now))

	product, err := suite.repo.GetByID(suite.context, id)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Chair", product.Name)
	assert.Equal(suite.T(), 100, product.StockTotal)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *ProductRepoTestSuite) TestListPhysical_ExcludesBundles() {
	now := time.Now()

	suite.mock.ExpectQuery(`SELECT (.+) FROM products WHERE is_bundle = false ORDER BY name`).
		WillReturnRows(productRows().
			AddRow(uuid.New(), "Chair", false, false, false, "", 5.0, 100, now, now).
			AddRow(uuid.New(), "Tablecloth", false, true, false, "tablecloth", 8.0, 0, now, now))

	products, err := suite.repo.ListPhysical(suite.context)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), products, 2)
	assert.True(suite.T(), products[1].HasColors)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *ProductRepoTestSuite) TestUpdateStockTotal() {
	id := uuid.New()

	suite.mock.ExpectExec(`UPDATE products`).
		WithArgs(99, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.UpdateStockTotal(suite.context, id, 99)
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}
