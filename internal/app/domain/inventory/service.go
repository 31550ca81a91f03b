package inventory

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/population-dashboard/internal/app/api"
	"github.com/FACorreiaa/population-dashboard/internal/app/models"
)

var (
	_ Service = (*ServiceImpl)(nil)
	_ Remote  = (*api.Client)(nil)
)

// Remote is the inventory part of a session's remote client.
type Remote interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, id int64) (*models.Item, error)
	CreateItem(ctx context.Context, in models.ItemInput) (*models.Item, error)
	UpdateItem(ctx context.Context, id int64, in models.ItemInput) (*models.Item, error)
	DeleteItem(ctx context.Context, id int64) error
	ListIngredients(ctx context.Context) ([]models.Ingredient, error)
	GetIngredient(ctx context.Context, id int64) (*models.Ingredient, error)
	CreateIngredient(ctx context.Context, in models.IngredientInput) (*models.Ingredient, error)
	UpdateIngredient(ctx context.Context, id int64, in models.IngredientInput) (*models.Ingredient, error)
	DeleteIngredient(ctx context.Context, id int64) error
	LowStockIngredients(ctx context.Context) ([]models.Ingredient, error)
}

type Overview struct {
	Items       []models.Item
	Ingredients []models.Ingredient
}

type Service interface {
	Overview(ctx context.Context, remote Remote) (*Overview, error)
	LowStock(ctx context.Context, remote Remote) ([]models.Ingredient, error)
	Ingredients(ctx context.Context, remote Remote) ([]models.Ingredient, error)
	GetItem(ctx context.Context, remote Remote, id int64) (*models.Item, error)
	SaveItem(ctx context.Context, remote Remote, id int64, in models.ItemInput) (*models.Item, error)
	DeleteItem(ctx context.Context, remote Remote, id int64) error
	GetIngredient(ctx context.Context, remote Remote, id int64) (*models.Ingredient, error)
	SaveIngredient(ctx context.Context, remote Remote, id int64, in models.IngredientInput) (*models.Ingredient, error)
	DeleteIngredient(ctx context.Context, remote Remote, id int64) error
}

type ServiceImpl struct {
	logger *zap.Logger
}

func NewService(logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{logger: logger}
}

// Overview loads items and ingredients concurrently.
func (s *ServiceImpl) Overview(ctx context.Context, remote Remote) (*Overview, error) {
	l := s.logger.With(zap.String("method", "Overview"))
	out := &Overview{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := remote.ListItems(gctx)
		out.Items = items
		return err
	})
	g.Go(func() error {
		ingredients, err := remote.ListIngredients(gctx)
		out.Ingredients = ingredients
		return err
	})
	if err := g.Wait(); err != nil {
		l.Error("Failed to load inventory", zap.Error(err))
		return nil, err
	}

	if out.Items == nil {
		out.Items = []models.Item{}
	}
	if out.Ingredients == nil {
		out.Ingredients = []models.Ingredient{}
	}
	return out, nil
}

func (s *ServiceImpl) LowStock(ctx context.Context, remote Remote) ([]models.Ingredient, error) {
	low, err := remote.LowStockIngredients(ctx)
	if err != nil {
		s.logger.Warn("Failed to load low stock ingredients", zap.String("method", "LowStock"), zap.Error(err))
		return nil, err
	}
	return low, nil
}

func (s *ServiceImpl) Ingredients(ctx context.Context, remote Remote) ([]models.Ingredient, error) {
	ingredients, err := remote.ListIngredients(ctx)
	if err != nil {
		s.logger.Warn("Failed to load ingredients", zap.String("method", "Ingredients"), zap.Error(err))
		return nil, err
	}
	if ingredients == nil {
		ingredients = []models.Ingredient{}
	}
	return ingredients, nil
}

func (s *ServiceImpl) GetItem(ctx context.Context, remote Remote, id int64) (*models.Item, error) {
	return remote.GetItem(ctx, id)
}

// SaveItem creates when id is zero, updates otherwise.
func (s *ServiceImpl) SaveItem(ctx context.Context, remote Remote, id int64, in models.ItemInput) (*models.Item, error) {
	l := s.logger.With(zap.String("method", "SaveItem"), zap.Int64("id", id))
	var (
		item *models.Item
		err  error
	)
	if id == 0 {
		item, err = remote.CreateItem(ctx, in)
	} else {
		item, err = remote.UpdateItem(ctx, id, in)
	}
	if err != nil {
		l.Warn("Failed to save item", zap.Error(err))
		return nil, err
	}
	l.Info("Item saved", zap.Int64("item_id", item.ID))
	return item, nil
}

func (s *ServiceImpl) DeleteItem(ctx context.Context, remote Remote, id int64) error {
	if err := remote.DeleteItem(ctx, id); err != nil {
		s.logger.Warn("Failed to delete item", zap.String("method", "DeleteItem"), zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *ServiceImpl) GetIngredient(ctx context.Context, remote Remote, id int64) (*models.Ingredient, error) {
	return remote.GetIngredient(ctx, id)
}

func (s *ServiceImpl) SaveIngredient(ctx context.Context, remote Remote, id int64, in models.IngredientInput) (*models.Ingredient, error) {
	l := s.logger.With(zap.String("method", "SaveIngredient"), zap.Int64("id", id))
	var (
		ing *models.Ingredient
		err error
	)
	if id == 0 {
		ing, err = remote.CreateIngredient(ctx, in)
	} else {
		ing, err = remote.UpdateIngredient(ctx, id, in)
	}
	if err != nil {
		l.Warn("Failed to save ingredient", zap.Error(err))
		return nil, err
	}
	l.Info("Ingredient saved", zap.Int64("ingredient_id", ing.ID))
	return ing, nil
}

func (s *ServiceImpl) DeleteIngredient(ctx context.Context, remote Remote, id int64) error {
	if err := remote.DeleteIngredient(ctx, id); err != nil {
		s.logger.Warn("Failed to delete ingredient", zap.String("method", "DeleteIngredient"), zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}
