package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/population-dashboard/internal/app/models"
)

type MockRemote struct {
	mock.Mock
}

func (m *MockRemote) ListItems(ctx context.Context) ([]models.Item, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]models.Item)
	return items, args.Error(1)
}

func (m *MockRemote) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*models.Item)
	return item, args.Error(1)
}

func (m *MockRemote) CreateItem(ctx context.Context, in models.ItemInput) (*models.Item, error) {
	args := m.Called(ctx, in)
	item, _ := args.Get(0).(*models.Item)
	return item, args.Error(1)
}

func (m *MockRemote) UpdateItem(ctx context.Context, id int64, in models.ItemInput) (*models.Item, error) {
	args := m.Called(ctx, id, in)
	item, _ := args.Get(0).(*models.Item)
	return item, args.Error(1)
}

func (m *MockRemote) DeleteItem(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRemote) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	args := m.Called(ctx)
	ings, _ := args.Get(0).([]models.Ingredient)
	return ings, args.Error(1)
}

func (m *MockRemote) GetIngredient(ctx context.Context, id int64) (*models.Ingredient, error) {
	args := m.Called(ctx, id)
	ing, _ := args.Get(0).(*models.Ingredient)
	return ing, args.Error(1)
}

func (m *MockRemote) CreateIngredient(ctx context.Context, in models.IngredientInput) (*models.Ingredient, error) {
	args := m.Called(ctx, in)
	ing, _ := args.Get(0).(*models.Ingredient)
	return ing, args.Error(1)
}

func (m *MockRemote) UpdateIngredient(ctx context.Context, id int64, in models.IngredientInput) (*models.Ingredient, error) {
	args := m.Called(ctx, id, in)
	ing, _ := args.Get(0).(*models.Ingredient)
	return ing, args.Error(1)
}

func (m *MockRemote) DeleteIngredient(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRemote) LowStockIngredients(ctx context.Context) ([]models.Ingredient, error) {
	args := m.Called(ctx)
	ings, _ := args.Get(0).([]models.Ingredient)
	return ings, args.Error(1)
}

func TestOverview(t *testing.T) {
	remote := new(MockRemote)
	remote.On("ListItems", mock.Anything).Return([]models.Item{{ID: 1, Name: "Latte"}}, nil)
	remote.On("ListIngredients", mock.Anything).Return(nil, nil)
	svc := NewService(zap.NewNop())

	overview, err := svc.Overview(context.Background(), remote)
	require.NoError(t, err)
	assert.Len(t, overview.Items, 1)
	assert.NotNil(t, overview.Ingredients)
	assert.Empty(t, overview.Ingredients)
	remote.AssertExpectations(t)
}

func TestOverviewFailsWhenEitherListFails(t *testing.T) {
	remote := new(MockRemote)
	remote.On("ListItems", mock.Anything).Return([]models.Item{}, nil)
	remote.On("ListIngredients", mock.Anything).Return(nil, models.ErrRemoteUnavailable)
	svc := NewService(zap.NewNop())

	overview, err := svc.Overview(context.Background(), remote)
	assert.Nil(t, overview)
	assert.ErrorIs(t, err, models.ErrRemoteUnavailable)
}

func TestSaveItemDispatch(t *testing.T) {
	in := models.ItemInput{Name: "Latte", Category: "beverage", Price: 4.5}
	remote := new(MockRemote)
	remote.On("CreateItem", mock.Anything, in).Return(&models.Item{ID: 9, Name: "Latte"}, nil).Once()
	remote.On("UpdateItem", mock.Anything, int64(9), in).Return(&models.Item{ID: 9, Name: "Latte"}, nil).Once()
	svc := NewService(zap.NewNop())

	created, err := svc.SaveItem(context.Background(), remote, 0, in)
	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)

	_, err = svc.SaveItem(context.Background(), remote, 9, in)
	require.NoError(t, err)
	remote.AssertExpectations(t)
}

func TestSaveIngredientError(t *testing.T) {
	boom := errors.New("boom")
	remote := new(MockRemote)
	remote.On("UpdateIngredient", mock.Anything, int64(2), mock.Anything).Return(nil, boom)
	svc := NewService(zap.NewNop())

	ing, err := svc.SaveIngredient(context.Background(), remote, 2, models.IngredientInput{Name: "Milk"})
	assert.Nil(t, ing)
	assert.ErrorIs(t, err, boom)
}

func TestDeletePassesThrough(t *testing.T) {
	remote := new(MockRemote)
	remote.On("DeleteItem", mock.Anything, int64(1)).Return(nil)
	remote.On("DeleteIngredient", mock.Anything, int64(2)).Return(models.ErrNotFound)
	svc := NewService(zap.NewNop())

	assert.NoError(t, svc.DeleteItem(context.Background(), remote, 1))
	assert.ErrorIs(t, svc.DeleteIngredient(context.Background(), remote, 2), models.ErrNotFound)
}
