package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/FACorreiaa/population-dashboard/internal/app/models"
)

func itemPath(id int64) string       { return fmt.Sprintf("/inventory/items/%d/", id) }
func ingredientPath(id int64) string { return fmt.Sprintf("/inventory/ingredients/%d/", id) }

func (c *Client) ListItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := c.doJSON(ctx, http.MethodGet, "/inventory/items/", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	var item models.Item
	if err := c.doJSON(ctx, http.MethodGet, itemPath(id), nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) CreateItem(ctx context.Context, in models.ItemInput) (*models.Item, error) {
	var item models.Item
	if err := c.doJSON(ctx, http.MethodPost, "/inventory/items/", nil, in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateItem(ctx context.Context, id int64, in models.ItemInput) (*models.Item, error) {
	var item models.Item
	if err := c.doJSON(ctx, http.MethodPut, itemPath(id), nil, in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteItem(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, itemPath(id), nil, nil)
	return err
}

func (c *Client) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := c.doJSON(ctx, http.MethodGet, "/inventory/ingredients/", nil, nil, &ingredients); err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (c *Client) GetIngredient(ctx context.Context, id int64) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := c.doJSON(ctx, http.MethodGet, ingredientPath(id), nil, nil, &ingredient); err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (c *Client) CreateIngredient(ctx context.Context, in models.IngredientInput) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := c.doJSON(ctx, http.MethodPost, "/inventory/ingredients/", nil, in, &ingredient); err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (c *Client) UpdateIngredient(ctx context.Context, id int64, in models.IngredientInput) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := c.doJSON(ctx, http.MethodPut, ingredientPath(id), nil, in, &ingredient); err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (c *Client) DeleteIngredient(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, ingredientPath(id), nil, nil)
	return err
}

func (c *Client) LowStockIngredients(ctx context.Context) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := c.doJSON(ctx, http.MethodGet, "/inventory/ingredients/low-stock/", nil, nil, &ingredients); err != nil {
		return nil, err
	}
	return ingredients, nil
}
