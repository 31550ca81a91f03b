package models

import "time"

var (
	ItemCategories  = []string{"beverage", "food", "dessert", "other"}
	IngredientUnits = []string{"kg", "g", "l", "ml", "pcs"}
)

type Ingredient struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Quantity      Decimal   `json:"quantity"`
	Unit          string    `json:"unit"`
	MinStockLevel Decimal   `json:"min_stock_level"`
	CostPerUnit   Decimal   `json:"cost_per_unit"`
	IsLowStock    bool      `json:"is_low_stock"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ItemIngredient struct {
	ID               int64   `json:"id"`
	Ingredient       int64   `json:"ingredient"`
	IngredientName   string  `json:"ingredient_name"`
	IngredientUnit   string  `json:"ingredient_unit"`
	QuantityRequired Decimal `json:"quantity_required"`
}

type Item struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Category        string           `json:"category"`
	Price           Decimal          `json:"price"`
	IsAvailable     bool             `json:"is_available"`
	ItemIngredients []ItemIngredient `json:"item_ingredients"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// IngredientRequirement links an item to the quantity of an ingredient it
// consumes, in the shape the backend expects on create/update.
type IngredientRequirement struct {
	IngredientID     int64   `json:"ingredient_id"`
	QuantityRequired float64 `json:"quantity_required"`
}

// ItemInput is the create/update payload. A nil IngredientsData leaves the
// item's recipe untouched; a non-nil one replaces it, even when empty.
type ItemInput struct {
	Name            string                   `json:"name"`
	Description     string                   `json:"description"`
	Category        string                   `json:"category"`
	Price           float64                  `json:"price"`
	IsAvailable     bool                     `json:"is_available"`
	IngredientsData *[]IngredientRequirement `json:"ingredients_data,omitempty"`
}

type IngredientInput struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Quantity      float64 `json:"quantity"`
	Unit          string  `json:"unit"`
	MinStockLevel float64 `json:"min_stock_level"`
	CostPerUnit   float64 `json:"cost_per_unit"`
}
