// Package catalog holds the static product list. Nothing here mutates:
// the storefront sells a fixed range and the documents persisted for
// carts and favorites carry full product snapshots, so the catalog is
// plain in-memory data.
package catalog

import (
	"strings"

	"bakeshop/models"
)

// AllProducts is the category filter value that matches everything.
const AllProducts = "All Products"

var products = []models.Product{
	{
		ID: 1, Name: "Sourdough Loaf", Category: "Breads", Price: 249,
		OriginalPrice: 299, Discount: 17, Rating: 4.8, Reviews: 214,
		Image:       "/images/sourdough.jpg",
		Description: "Slow-fermented sourdough with a crisp crust.",
		FullDescription: "A 24-hour fermented sourdough baked on stone. " +
			"Open crumb, mild tang, keeps well for days.",
		Features: []string{"24h fermentation", "No commercial yeast", "Stone baked"},
		Specs:    map[string]string{"Weight": "750g", "Shelf life": "4 days"},
	},
	{
		ID: 2, Name: "French Baguette", Category: "Breads", Price: 99,
		Rating: 4.6, Reviews: 178,
		Image:       "/images/baguette.jpg",
		Description: "Classic baguette with an airy crumb.",
		Specs:       map[string]string{"Weight": "250g", "Shelf life": "1 day"},
	},
	{
		ID: 3, Name: "Multigrain Sandwich Bread", Category: "Breads", Price: 149,
		Rating: 4.4, Reviews: 96,
		Image:       "/images/multigrain.jpg",
		Description: "Soft sandwich loaf packed with seven grains.",
		Features:    []string{"Seven grains", "No preservatives"},
		Specs:       map[string]string{"Weight": "500g", "Shelf life": "5 days"},
	},
	{
		ID: 4, Name: "Chocolate Truffle Cake", Category: "Cakes", Price: 899,
		OriginalPrice: 1099, Discount: 18, Rating: 4.9, Reviews: 342,
		Image:       "/images/truffle-cake.jpg",
		Description: "Dark chocolate sponge layered with silky ganache.",
		FullDescription: "Three layers of 55% dark chocolate sponge with " +
			"whipped ganache, finished with a mirror glaze.",
		Features: []string{"55% dark chocolate", "Eggless option", "Serves 8"},
		Specs:    map[string]string{"Weight": "1kg", "Serves": "8"},
	},
	{
		ID: 5, Name: "Fresh Fruit Gateau", Category: "Cakes", Price: 749,
		Rating: 4.5, Reviews: 157,
		Image:       "/images/fruit-gateau.jpg",
		Description: "Vanilla sponge topped with seasonal fruit.",
		Specs:       map[string]string{"Weight": "1kg", "Serves": "8"},
	},
	{
		ID: 6, Name: "Red Velvet Pastry", Category: "Pastries", Price: 129,
		Rating: 4.3, Reviews: 88,
		Image:       "/images/red-velvet.jpg",
		Description: "Single-serve red velvet with cream cheese frosting.",
	},
	{
		ID: 7, Name: "Butter Croissant", Category: "Pastries", Price: 119,
		OriginalPrice: 139, Discount: 14, Rating: 4.7, Reviews: 265,
		Image:       "/images/croissant.jpg",
		Description: "Laminated with cultured butter, 27 layers.",
		Features:    []string{"Cultured butter", "Baked twice daily"},
	},
	{
		ID: 8, Name: "Almond Danish", Category: "Pastries", Price: 139,
		Rating: 4.4, Reviews: 73,
		Image:       "/images/almond-danish.jpg",
		Description: "Flaky danish filled with frangipane.",
	},
	{
		ID: 9, Name: "Chocolate Chip Cookies", Category: "Cookies", Price: 199,
		Rating: 4.6, Reviews: 301,
		Image:       "/images/choc-chip.jpg",
		Description: "Box of six chewy chocolate chip cookies.",
		Specs:       map[string]string{"Count": "6", "Shelf life": "10 days"},
	},
	{
		ID: 10, Name: "Oat Raisin Cookies", Category: "Cookies", Price: 179,
		Rating: 4.2, Reviews: 64,
		Image:       "/images/oat-raisin.jpg",
		Description: "Box of six oat and raisin cookies.",
		Specs:       map[string]string{"Count": "6", "Shelf life": "10 days"},
	},
	{
		ID: 11, Name: "Cold Brew Coffee", Category: "Beverages", Price: 159,
		Rating: 4.5, Reviews: 112,
		Image:       "/images/cold-brew.jpg",
		Description: "Slow-steeped cold brew, 300ml bottle.",
	},
	{
		ID: 12, Name: "Masala Chai", Category: "Beverages", Price: 89,
		Rating: 4.4, Reviews: 140,
		Image:       "/images/masala-chai.jpg",
		Description: "Spiced chai brewed with whole milk.",
	},
}

// All returns the full catalog.
func All() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// ByID returns the product with the given id, or false when no such
// product exists.
func ByID(id int) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Categories lists the distinct product categories in catalog order.
func Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// Filter returns products matching a category and a free-text query.
// A product matches when its category equals the filter (or the filter
// is AllProducts or empty) and the query appears case-insensitively in
// its name or category.
func Filter(category, query string) []models.Product {
	q := strings.ToLower(query)
	var out []models.Product
	for _, p := range products {
		if category != "" && category != AllProducts && p.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}
