package inventory

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/FACorreiaa/population-dashboard/internal/app/models"
	"github.com/FACorreiaa/population-dashboard/internal/app/views"
)

// FormValues is the subset of a request's form the parsers read.
type FormValues interface {
	PostForm(key string) string
	PostFormArray(key string) []string
}

func parseDecimal(raw, field string, errs models.FieldErrors) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		errs.Add(field, "This field is required.")
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		errs.Add(field, "Enter a valid number.")
		return 0
	}
	if v < 0 {
		errs.Add(field, "Must be zero or more.")
		return 0
	}
	return v
}

func requireName(name string, errs models.FieldErrors) {
	if name == "" {
		errs.Add("name", "This field is required.")
	}
}

// ParseItemForm validates an item form. The returned form data echoes what
// was submitted so it can be re-rendered with errors.
func ParseItemForm(f FormValues) (models.ItemInput, views.ItemFormData, models.FieldErrors) {
	errs := models.FieldErrors{}
	form := views.ItemFormData{
		Name:        strings.TrimSpace(f.PostForm("name")),
		Description: strings.TrimSpace(f.PostForm("description")),
		Category:    strings.TrimSpace(f.PostForm("category")),
		Price:       strings.TrimSpace(f.PostForm("price")),
		IsAvailable: f.PostForm("is_available") == "true" || f.PostForm("is_available") == "on",
	}

	requireName(form.Name, errs)
	if !slices.Contains(models.ItemCategories, form.Category) {
		errs.Add("category", "Select a valid choice.")
	}
	price := parseDecimal(form.Price, "price", errs)

	in := models.ItemInput{
		Name:        form.Name,
		Description: form.Description,
		Category:    form.Category,
		Price:       price,
		IsAvailable: form.IsAvailable,
	}
	if f.PostForm("recipe") != "" {
		reqs := parseRecipe(f, &form, errs)
		in.IngredientsData = &reqs
	}
	form.Errors = errs
	return in, form, errs
}

// parseRecipe pairs the submitted ingredient ids with their quantities.
// Rows left blank or at zero are not part of the recipe.
func parseRecipe(f FormValues, form *views.ItemFormData, errs models.FieldErrors) []models.IngredientRequirement {
	ids := f.PostFormArray("ingredient_id")
	qtys := f.PostFormArray("quantity_required")
	reqs := []models.IngredientRequirement{}
	form.Recipe = map[int64]string{}
	if len(ids) != len(qtys) {
		errs.Add("ingredients_data", "Recipe rows are incomplete.")
		return reqs
	}

	invalid := false
	for i, rawID := range ids {
		id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
		if err != nil || id <= 0 {
			invalid = true
			continue
		}
		raw := strings.TrimSpace(qtys[i])
		form.Recipe[id] = raw
		if raw == "" {
			continue
		}
		qty, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(qty) || math.IsInf(qty, 0) || qty < 0 {
			invalid = true
			continue
		}
		if qty == 0 {
			continue
		}
		reqs = append(reqs, models.IngredientRequirement{IngredientID: id, QuantityRequired: qty})
	}
	if invalid {
		errs.Add("ingredients_data", "Enter a valid quantity for every ingredient.")
	}
	return reqs
}

func ParseIngredientForm(f FormValues) (models.IngredientInput, views.IngredientFormData, models.FieldErrors) {
	errs := models.FieldErrors{}
	form := views.IngredientFormData{
		Name:          strings.TrimSpace(f.PostForm("name")),
		Description:   strings.TrimSpace(f.PostForm("description")),
		Quantity:      strings.TrimSpace(f.PostForm("quantity")),
		Unit:          strings.TrimSpace(f.PostForm("unit")),
		MinStockLevel: strings.TrimSpace(f.PostForm("min_stock_level")),
		CostPerUnit:   strings.TrimSpace(f.PostForm("cost_per_unit")),
	}

	requireName(form.Name, errs)
	if !slices.Contains(models.IngredientUnits, form.Unit) {
		errs.Add("unit", "Select a valid choice.")
	}
	in := models.IngredientInput{
		Name:          form.Name,
		Description:   form.Description,
		Quantity:      parseDecimal(form.Quantity, "quantity", errs),
		Unit:          form.Unit,
		MinStockLevel: parseDecimal(form.MinStockLevel, "min_stock_level", errs),
		CostPerUnit:   parseDecimal(form.CostPerUnit, "cost_per_unit", errs),
	}
	form.Errors = errs
	return in, form, errs
}

// ItemFormFrom prefills the edit form, including the item's recipe.
// Ingredients to offer are set by the caller.
func ItemFormFrom(item *models.Item) views.ItemFormData {
	recipe := make(map[int64]string, len(item.ItemIngredients))
	for _, ii := range item.ItemIngredients {
		recipe[ii.Ingredient] = ii.QuantityRequired.String()
	}
	return views.ItemFormData{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Category:    item.Category,
		Price:       item.Price.String(),
		IsAvailable: item.IsAvailable,
		Recipe:      recipe,
	}
}

func IngredientFormFrom(ing *models.Ingredient) views.IngredientFormData {
	return views.IngredientFormData{
		ID:            ing.ID,
		Name:          ing.Name,
		Description:   ing.Description,
		Quantity:      ing.Quantity.String(),
		Unit:          ing.Unit,
		MinStockLevel: ing.MinStockLevel.String(),
		CostPerUnit:   ing.CostPerUnit.String(),
	}
}
