package services

import (
	"context"
	"errors"
	"testing"

	"rentmart/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BundleServiceTestSuite struct {
	suite.Suite
	mockBundleRepo  *MockBundleRepository
	mockProductRepo *MockProductRepository
	service         BundleService

	chair      *models.Product
	tablecloth *models.Product
	bundle     *models.Product
}

func (suite *BundleServiceTestSuite) SetupTest() {
	suite.mockBundleRepo = &MockBundleRepository{}
	suite.mockProductRepo = &MockProductRepository{}
	suite.service = NewBundleService(suite.mockBundleRepo, suite.mockProductRepo, nil)

	suite.chair = &models.Product{ID: uuid.New(), Name: "Chair", StockTotal: 100}
	suite.tablecloth = &models.Product{
		ID:        uuid.New(),
		Name:      "Tablecloth",
		HasColors: true,
		ColorSlot: models.ColorSlotTablecloth,
	}
	suite.bundle = &models.Product{ID: uuid.New(), Name: "Table Package", IsBundle: true, RentalPrice: 150}
}

func (suite *BundleServiceTestSuite) TearDownTest() {
	suite.mockBundleRepo.AssertExpectations(suite.T())
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func TestBundleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BundleServiceTestSuite))
}

func (suite *BundleServiceTestSuite) TestDescribeBundle() {
	components := []*models.BundleComponent{
		{BundleID: suite.bundle.ID, ComponentProductID: suite.chair.ID, Quantity: 10, ComponentName: "Chair"},
		{BundleID: suite.bundle.ID, ComponentProductID: suite.tablecloth.ID, Quantity: 1, ComponentName: "Long Table"},
	}
	suite.mockBundleRepo.On("ListComponents", mock.Anything, suite.bundle.ID).Return(components, nil)

	description := suite.service.DescribeBundle(context.Background(), suite.bundle.ID)

	suite.Equal("10 Chair + 1 Long Table", description)
}

func (suite *BundleServiceTestSuite) TestDescribeBundle_NoComponents() {
	suite.mockBundleRepo.On("ListComponents", mock.Anything, suite.bundle.ID).Return([]*models.BundleComponent{}, nil)

	suite.Equal("", suite.service.DescribeBundle(context.Background(), suite.bundle.ID))
}

func (suite *BundleServiceTestSuite) TestDescribeBundle_LookupFailure() {
	suite.mockBundleRepo.On("ListComponents", mock.Anything, suite.bundle.ID).Return(nil, errors.New("connection refused"))

	suite.Equal("", suite.service.DescribeBundle(context.Background(), suite.bundle.ID))
}

func (suite *BundleServiceTestSuite) TestExpandOrderLines_BundleLine() {
	red := "Red"
	line := &models.OrderItem{
		ID:              uuid.New(),
		ProductID:       suite.bundle.ID,
		Quantity:        3,
		UnitPrice:       150,
		Subtotal:        450,
		TableclothColor: &red,
	}
	components := []*models.BundleComponent{
		{BundleID: suite.bundle.ID, ComponentProductID: suite.chair.ID, Quantity: 10, ComponentName: "Chair"},
		{BundleID: suite.bundle.ID, ComponentProductID: suite.tablecloth.ID, Quantity: 1, ComponentName: "Tablecloth"},
	}

	suite.mockProductRepo.On("GetByID", mock.Anything, suite.bundle.ID).Return(suite.bundle, nil)
	suite.mockProductRepo.On("GetByID", mock.Anything, suite.chair.ID).Return(suite.chair, nil)
	suite.mockProductRepo.On("GetByID", mock.Anything, suite.tablecloth.ID).Return(suite.tablecloth, nil)
	suite.mockBundleRepo.On("ListComponents", mock.Anything, suite.bundle.ID).Return(components, nil)

	expanded, err := suite.service.ExpandOrderLines(context.Background(), []*models.OrderItem{line})

	suite.NoError(err)
	suite.Len(expanded, 3)

	suite.Same(line, expanded[0], "the bundle line itself keeps its price")

	chairLine := expanded[1]
	suite.Equal(suite.chair.ID, chairLine.ProductID)
	suite.Equal(30, chairLine.Quantity)
	suite.Equal(0.0, chairLine.UnitPrice)
	suite.True(chairLine.IsBundleComponent)

	tableclothLine := expanded[2]
	suite.Equal(suite.tablecloth.ID, tableclothLine.ProductID)
	suite.Equal(3, tableclothLine.Quantity)
	suite.True(tableclothLine.IsBundleComponent)
	suite.NotNil(tableclothLine.Color)
	suite.Equal("Red", *tableclothLine.Color, "the slot color moves onto the component line")
}

func (suite *BundleServiceTestSuite) TestExpandOrderLines_TwoColorSlots() {
	bow := &models.Product{
		ID:        uuid.New(),
		Name:      "Chair Bow",
		HasColors: true,
		ColorSlot: models.ColorSlotBow,
	}
	red := "Red"
	gold := "Gold"
	line := &models.OrderItem{
		ID:              uuid.New(),
		ProductID:       suite.bundle.ID,
		Quantity:        2,
		TableclothColor: &red,
		BowColor:        &gold,
	}
	components := []*models.BundleComponent{
		{BundleID: suite.bundle.ID, ComponentProductID: suite.tablecloth.ID, Quantity: 1, ComponentName: "Tablecloth"},
		{BundleID: suite.bundle.ID, ComponentProductID: bow.ID, Quantity: 3, ComponentName: "Chair Bow"},
	}

	suite.mockProductRepo.On("GetByID", mock.Anything, suite.bundle.ID).Return(suite.bundle, nil)
	suite.mockProductRepo.On("GetByID", mock.Anything, suite.tablecloth.ID).Return(suite.tablecloth, nil)
	suite.mockProductRepo.On("GetByID", mock.Anything, bow.ID).Return(bow, nil)
	suite.mockBundleRepo.On("ListComponents", mock.Anything, suite.bundle.ID).Return(components, nil)

	expanded, err := suite.service.ExpandOrderLines(context.Background(), []*models.OrderItem{line})

	suite.NoError(err)
	suite.Len(expanded, 3)

	tableclothLine := expanded[1]
	suite.Equal(suite.tablecloth.ID, tableclothLine.ProductID)
	suite.Equal(2, tableclothLine.Quantity)
	suite.NotNil(tableclothLine.Color)
	suite.Equal("Red", *tableclothLine.Color)

	bowLine := expanded[2]
	suite.Equal(bow.ID, bowLine.ProductID)
	suite.Equal(6, bowLine.Quantity)
	suite.NotNil(bowLine.Color)
	suite.Equal("Gold", *bowLine.Color, "each slot color lands on its own component line")
}

func (suite *BundleServiceTestSuite) TestExpandOrderLines_PlainLinePassesThrough() {
	line := &models.OrderItem{ID: uuid.New(), ProductID: suite.chair.ID, Quantity: 20, UnitPrice: 5}

	suite.mockProductRepo.On("GetByID", mock.Anything, suite.chair.ID).Return(suite.chair, nil)

	expanded, err := suite.service.ExpandOrderLines(context.Background(), []*models.OrderItem{line})

	suite.NoError(err)
	suite.Len(expanded, 1)
	suite.Same(line, expanded[0])
}

func (suite *BundleServiceTestSuite) TestExpandOrderLines_MissingComponentSkipped() {
	goneID := uuid.New()
	line := &models.OrderItem{ID: uuid.New(), ProductID: suite.bundle.ID, Quantity: 1}
	components := []*models.BundleComponent{
		{BundleID: suite.bundle.ID, ComponentProductID: goneID, Quantity: 2, ComponentName: "Gone"},
		{BundleID: suite.bundle.ID, ComponentProductID: suite.chair.ID, Quantity: 10, ComponentName: "Chair"},
	}

	suite.mockProductRepo.On("GetByID", mock.Anything, suite.bundle.ID).Return(suite.bundle, nil)
	suite.mockProductRepo.On("GetByID", mock.Anything, goneID).Return(nil, errors.New("no rows in result set"))
	suite.mockProductRepo.On("GetByID", mock.Anything, suite.chair.ID).Return(suite.chair, nil)
	suite.mockBundleRepo.On("ListComponents", mock.Anything, suite.bundle.ID).Return(components, nil)

	expanded, err := suite.service.ExpandOrderLines(context.Background(), []*models.OrderItem{line})

	suite.NoError(err)
	suite.Len(expanded, 2, "the dangling component is dropped, the rest expand")
	suite.Equal(suite.chair.ID, expanded[1].ProductID)
}

func (suite *BundleServiceTestSuite) TestSetComponents_RejectsNonPositiveQuantity() {
	err := suite.service.SetComponents(context.Background(), suite.bundle.ID, []*models.BundleComponent{
		{ComponentProductID: suite.chair.ID, Quantity: 0},
	})
	suite.Error(err)
}
