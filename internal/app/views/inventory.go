package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/population-dashboard/internal/app/models"
)

const (
	TabItems       = "items"
	TabIngredients = "ingredients"
)

type ItemFormData struct {
	ID          int64
	Name        string
	Description string
	Category    string
	Price       string
	IsAvailable bool
	// Ingredients offered in the recipe section, with the required quantity
	// per ingredient id.
	Ingredients []models.Ingredient
	Recipe      map[int64]string
	Errors      models.FieldErrors
}

type IngredientFormData struct {
	ID            int64
	Name          string
	Description   string
	Quantity      string
	Unit          string
	MinStockLevel string
	CostPerUnit   string
	Errors        models.FieldErrors
}

type InventoryData struct {
	Tab            string
	Items          []models.Item
	Ingredients    []models.Ingredient
	Error          string
	Notice         string
	ItemForm       ItemFormData
	IngredientForm IngredientFormData
}

var categoryColors = map[string]string{
	"beverage": "bg-blue-100 text-blue-700",
	"food":     "bg-orange-100 text-orange-700",
	"dessert":  "bg-pink-100 text-pink-700",
	"other":    "bg-gray-100 text-gray-700",
}

const (
	tableClass = "min-w-full divide-y divide-gray-200 rounded-lg bg-white text-sm shadow-sm"
	thClass    = "px-4 py-3 text-left text-xs font-semibold uppercase text-gray-500"
	tdClass    = "px-4 py-3"
	pillClass  = "rounded-full px-2 py-0.5 text-xs font-medium"
)

func AdminInventory(data InventoryData) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<h1 class="mb-6 text-2xl font-bold">Inventory</h1>`)
		h.render(ctx, InventoryPanel(data))
	})
}

// InventoryPanel is the swap target of every admin inventory mutation.
func InventoryPanel(data InventoryData) templ.Component {
	return component(func(ctx context.Context, h *html) {
		tab := data.Tab
		if tab != TabIngredients {
			tab = TabItems
		}
		h.raw(`<div id="inventory-panel">`)
		h.render(ctx, Banner(BannerProps{ID: "inventory-error", Type: BannerError, Message: data.Error}))
		h.render(ctx, Banner(BannerProps{ID: "inventory-notice", Type: BannerSuccess, Message: data.Notice}))
		h.render(ctx, tabs(tab, len(data.Items), len(data.Ingredients)))
		h.raw(`<div class="grid grid-cols-1 gap-6 lg:grid-cols-3"><div class="lg:col-span-2">`)
		if tab == TabItems {
			h.render(ctx, ItemsTable(data.Items, true))
			h.raw(`</div><div>`)
			form := data.ItemForm
			if form.Ingredients == nil {
				form.Ingredients = data.Ingredients
			}
			h.render(ctx, ItemForm(form))
		} else {
			h.render(ctx, IngredientsTable(data.Ingredients, true))
			h.raw(`</div><div>`)
			h.render(ctx, IngredientForm(data.IngredientForm))
		}
		h.raw(`</div></div></div>`)
	})
}

func tabs(active string, items, ingredients int) templ.Component {
	return component(func(_ context.Context, h *html) {
		base := "rounded-md px-4 py-2 text-sm font-medium bg-white text-gray-600 hover:bg-gray-100"
		on := "bg-indigo-600 text-white hover:bg-indigo-600"
		h.raw(`<div class="mb-4 flex gap-2" role="tablist">`)
		for _, t := range []struct {
			key   string
			label string
			count int
		}{{TabItems, "Items", items}, {TabIngredients, "Ingredients", ingredients}} {
			cls := base
			if t.key == active {
				cls = classes(base, on)
			}
			h.raw(`<a role="tab"`)
			h.attr("href", "/admin/inventory?tab="+t.key)
			h.attr("class", cls)
			if t.key == active {
				h.raw(` aria-selected="true"`)
			}
			h.raw(`>`)
			h.text(t.label)
			h.raw(` (`)
			h.text(itoa(int64(t.count)))
			h.raw(`)</a>`)
		}
		h.raw(`</div>`)
	})
}

func ItemsTable(items []models.Item, editable bool) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<table id="items-table"`)
		h.attr("class", tableClass)
		h.raw(`><thead><tr>`)
		for _, col := range []string{"Name", "Category", "Price", "Status"} {
			h.raw(`<th`)
			h.attr("class", thClass)
			h.raw(`>`)
			h.text(col)
			h.raw(`</th>`)
		}
		if editable {
			h.raw(`<th class="px-4 py-3"></th>`)
		}
		h.raw(`</tr></thead><tbody class="divide-y divide-gray-100">`)
		if len(items) == 0 {
			h.raw(`<tr><td colspan="5" class="px-4 py-8 text-center text-gray-500">No items found. Add your first item!</td></tr>`)
		}
		for _, item := range items {
			h.raw(`<tr`)
			h.attr("id", "item-"+itoa(item.ID))
			h.raw(`><td`)
			h.attr("class", tdClass)
			h.raw(`><div class="font-medium">`)
			h.text(item.Name)
			h.raw(`</div><div class="text-xs text-gray-500">`)
			h.text(item.Description)
			h.raw(`</div></td><td`)
			h.attr("class", tdClass)
			h.raw(`><span`)
			h.attr("class", classes(pillClass, categoryColors[item.Category]))
			h.raw(`>`)
			h.text(Label(item.Category))
			h.raw(`</span></td><td`)
			h.attr("class", tdClass)
			h.raw(`>$`)
			h.text(item.Price.String())
			h.raw(`</td><td`)
			h.attr("class", tdClass)
			h.raw(`>`)
			if item.IsAvailable {
				h.raw(`<span class="rounded-full bg-green-100 px-2 py-0.5 text-xs text-green-700">Available</span>`)
			} else {
				h.raw(`<span class="rounded-full bg-red-100 px-2 py-0.5 text-xs text-red-700">Unavailable</span>`)
			}
			h.raw(`</td>`)
			if editable {
				path := "/admin/inventory/items/" + itoa(item.ID)
				h.raw(`<td class="px-4 py-3 text-right"><button type="button" class="mr-2 text-xs text-indigo-600" hx-target="#item-form" hx-swap="outerHTML"`)
				h.attr("hx-get", path+"/edit")
				h.raw(`>Edit</button><button type="button" hx-target="#inventory-panel" hx-swap="outerHTML" hx-confirm="Are you sure you want to delete this item?"`)
				h.attr("hx-delete", path)
				h.attr("class", dangerClass)
				h.raw(`>Delete</button></td>`)
			}
			h.raw(`</tr>`)
		}
		h.raw(`</tbody></table>`)
	})
}

func IngredientsTable(ingredients []models.Ingredient, editable bool) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<table id="ingredients-table"`)
		h.attr("class", tableClass)
		h.raw(`><thead><tr>`)
		for _, col := range []string{"Name", "Quantity", "Min stock", "Cost / unit", "Status"} {
			h.raw(`<th`)
			h.attr("class", thClass)
			h.raw(`>`)
			h.text(col)
			h.raw(`</th>`)
		}
		if editable {
			h.raw(`<th class="px-4 py-3"></th>`)
		}
		h.raw(`</tr></thead><tbody class="divide-y divide-gray-100">`)
		if len(ingredients) == 0 {
			h.raw(`<tr><td colspan="6" class="px-4 py-8 text-center text-gray-500">No ingredients found. Add your first ingredient!</td></tr>`)
		}
		for _, ing := range ingredients {
			h.raw(`<tr`)
			h.attr("id", "ingredient-"+itoa(ing.ID))
			if ing.IsLowStock {
				h.raw(` data-low-stock="true"`)
			}
			h.raw(`><td`)
			h.attr("class", tdClass)
			h.raw(`><div class="font-medium">`)
			h.text(ing.Name)
			h.raw(`</div></td><td`)
			h.attr("class", tdClass)
			h.raw(`>`)
			h.text(ing.Quantity.String() + " " + ing.Unit)
			h.raw(`</td><td`)
			h.attr("class", tdClass)
			h.raw(`>`)
			h.text(ing.MinStockLevel.String() + " " + ing.Unit)
			h.raw(`</td><td`)
			h.attr("class", tdClass)
			h.raw(`>$`)
			h.text(ing.CostPerUnit.String())
			h.raw(`</td><td`)
			h.attr("class", tdClass)
			h.raw(`>`)
			if ing.IsLowStock {
				h.raw(`<span class="rounded-full bg-red-100 px-2 py-0.5 text-xs text-red-700">Low Stock</span>`)
			} else {
				h.raw(`<span class="rounded-full bg-green-100 px-2 py-0.5 text-xs text-green-700">In Stock</span>`)
			}
			h.raw(`</td>`)
			if editable {
				path := "/admin/inventory/ingredients/" + itoa(ing.ID)
				h.raw(`<td class="px-4 py-3 text-right"><button type="button" class="mr-2 text-xs text-indigo-600" hx-target="#ingredient-form" hx-swap="outerHTML"`)
				h.attr("hx-get", path+"/edit")
				h.raw(`>Edit</button><button type="button" hx-target="#inventory-panel" hx-swap="outerHTML" hx-confirm="Are you sure you want to delete this ingredient?"`)
				h.attr("hx-delete", path)
				h.attr("class", dangerClass)
				h.raw(`>Delete</button></td>`)
			}
			h.raw(`</tr>`)
		}
		h.raw(`</tbody></table>`)
	})
}

// ItemForm creates an item, or edits one when ID is set.
func ItemForm(form ItemFormData) templ.Component {
	return component(func(ctx context.Context, h *html) {
		errs := form.Errors
		if errs == nil {
			errs = models.FieldErrors{}
		}
		category := form.Category
		if category == "" {
			category = models.ItemCategories[0]
		}
		h.raw(`<form id="item-form" class="rounded-lg bg-white p-6 shadow-sm" hx-target="#inventory-panel" hx-swap="outerHTML"`)
		if form.ID > 0 {
			h.attr("hx-put", "/admin/inventory/items/"+itoa(form.ID))
			h.raw(`><h2 class="mb-4 text-lg font-semibold">Edit item</h2>`)
		} else {
			h.attr("hx-post", "/admin/inventory/items")
			h.raw(`><h2 class="mb-4 text-lg font-semibold">Add item</h2>`)
		}
		h.render(ctx, Banner(BannerProps{Type: BannerError, Message: errs.First(models.GeneralField)}))
		h.render(ctx, field(fieldProps{Label: "Name", Name: "name", Value: form.Name, Error: errs.First("name"), Required: true}))
		h.render(ctx, field(fieldProps{Label: "Description", Name: "description", Value: form.Description, Error: errs.First("description")}))
		h.render(ctx, selectField("Category", "category", category, errs.First("category"), labelledOptions(models.ItemCategories)))
		h.render(ctx, field(fieldProps{Label: "Price", Name: "price", Type: "number", Value: form.Price, Error: errs.First("price"), Required: true,
			Extra: map[string]string{"step": "0.01", "min": "0"}}))
		h.raw(`<label class="mb-4 flex items-center gap-2 text-sm"><input type="checkbox" name="is_available" value="true"`)
		if form.IsAvailable {
			h.raw(` checked`)
		}
		h.raw(`> Available</label>`)
		h.render(ctx, recipeFields(form.Ingredients, form.Recipe, errs.First("ingredients_data")))
		h.raw(`<button type="submit"`)
		h.attr("class", buttonClass)
		h.raw(`>Save</button></form>`)
	})
}

// recipeFields renders one quantity input per ingredient. Blank or zero
// quantities leave the ingredient out of the recipe.
func recipeFields(ingredients []models.Ingredient, recipe map[int64]string, errMsg string) templ.Component {
	return component(func(_ context.Context, h *html) {
		if len(ingredients) == 0 {
			return
		}
		h.raw(`<fieldset id="item-recipe" class="mb-4"><legend class="mb-2 text-sm font-medium text-gray-700">Recipe</legend>`)
		h.raw(`<input type="hidden" name="recipe" value="1">`)
		for _, ing := range ingredients {
			h.raw(`<div class="mb-2 flex items-center gap-2" data-recipe-row`)
			h.attr("data-ingredient", itoa(ing.ID))
			h.raw(`><input type="hidden" name="ingredient_id"`)
			h.attr("value", itoa(ing.ID))
			h.raw(`><label class="w-1/2 text-sm text-gray-600">`)
			h.text(ing.Name + " (" + ing.Unit + ")")
			h.raw(`</label><input type="number" name="quantity_required" step="0.01" min="0"`)
			h.attr("value", recipe[ing.ID])
			h.attr("class", classes(inputClass, "mt-0 w-1/2"))
			h.raw(`></div>`)
		}
		if errMsg != "" {
			h.raw(`<p class="mt-1 text-xs text-red-600" data-field-error data-field="ingredients_data">`)
			h.text(errMsg)
			h.raw(`</p>`)
		}
		h.raw(`</fieldset>`)
	})
}

func IngredientForm(form IngredientFormData) templ.Component {
	return component(func(ctx context.Context, h *html) {
		errs := form.Errors
		if errs == nil {
			errs = models.FieldErrors{}
		}
		unit := form.Unit
		if unit == "" {
			unit = "pcs"
		}
		h.raw(`<form id="ingredient-form" class="rounded-lg bg-white p-6 shadow-sm" hx-target="#inventory-panel" hx-swap="outerHTML"`)
		if form.ID > 0 {
			h.attr("hx-put", "/admin/inventory/ingredients/"+itoa(form.ID))
			h.raw(`><h2 class="mb-4 text-lg font-semibold">Edit ingredient</h2>`)
		} else {
			h.attr("hx-post", "/admin/inventory/ingredients")
			h.raw(`><h2 class="mb-4 text-lg font-semibold">Add ingredient</h2>`)
		}
		h.render(ctx, Banner(BannerProps{Type: BannerError, Message: errs.First(models.GeneralField)}))
		decimal := map[string]string{"step": "0.01", "min": "0"}
		h.render(ctx, field(fieldProps{Label: "Name", Name: "name", Value: form.Name, Error: errs.First("name"), Required: true}))
		h.render(ctx, field(fieldProps{Label: "Description", Name: "description", Value: form.Description, Error: errs.First("description")}))
		h.render(ctx, field(fieldProps{Label: "Quantity", Name: "quantity", Type: "number", Value: form.Quantity, Error: errs.First("quantity"), Required: true, Extra: decimal}))
		h.render(ctx, selectField("Unit", "unit", unit, errs.First("unit"), labelledOptions(models.IngredientUnits)))
		h.render(ctx, field(fieldProps{Label: "Minimum stock", Name: "min_stock_level", Type: "number", Value: form.MinStockLevel, Error: errs.First("min_stock_level"), Required: true, Extra: decimal}))
		h.render(ctx, field(fieldProps{Label: "Cost per unit", Name: "cost_per_unit", Type: "number", Value: form.CostPerUnit, Error: errs.First("cost_per_unit"), Required: true, Extra: decimal}))
		h.raw(`<button type="submit"`)
		h.attr("class", buttonClass)
		h.raw(`>Save</button></form>`)
	})
}

// ManagerInventory is the read-only view with low-stock markers.
func ManagerInventory(data InventoryData) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<h1 class="mb-6 text-2xl font-bold">Inventory</h1>`)
		h.render(ctx, Banner(BannerProps{ID: "inventory-error", Type: BannerError, Message: data.Error}))
		low := 0
		for _, ing := range data.Ingredients {
			if ing.IsLowStock {
				low++
			}
		}
		if low > 0 {
			h.render(ctx, Banner(BannerProps{ID: "low-stock-warning", Type: BannerInfo,
				Message: itoa(int64(low)) + " ingredient(s) are running low"}))
		}
		h.raw(`<h2 class="mb-3 text-lg font-semibold">Items</h2>`)
		h.render(ctx, ItemsTable(data.Items, false))
		h.raw(`<h2 class="mb-3 mt-8 text-lg font-semibold">Ingredients</h2>`)
		h.render(ctx, IngredientsTable(data.Ingredients, false))
	})
}
