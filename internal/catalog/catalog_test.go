package catalog

import (
	"math"
	"testing"

	"github.com/velas-starlight/storefront/internal/domain"
)

func TestGet(t *testing.T) {
	cat := New()

	p, ok := cat.Get(1)
	if !ok {
		t.Fatal("expected product 1 to exist")
	}
	if p.Title != "Flor Escondida" {
		t.Errorf("expected Flor Escondida, got %q", p.Title)
	}

	if _, ok := cat.Get(99); ok {
		t.Error("expected unknown id to report not found")
	}
}

func TestFind_Category(t *testing.T) {
	cat := New()

	belleza := cat.Find(Filter{Category: "belleza"})
	if len(belleza) != 2 {
		t.Errorf("expected 2 belleza products, got %d", len(belleza))
	}

	all := cat.Find(Filter{Category: "all"})
	if len(all) != len(cat.All()) {
		t.Error("category 'all' should match everything")
	}
}

func TestFind_Query(t *testing.T) {
	cat := New()

	hits := cat.Find(Filter{Query: "pino"})
	if len(hits) != 1 || hits[0].ID != 3 {
		t.Errorf("expected only the pine candle, got %d hits", len(hits))
	}

	// Description text matches too.
	if hits := cat.Find(Filter{Query: "altares"}); len(hits) != 1 || hits[0].ID != 5 {
		t.Errorf("expected the cempasúchil candle via description, got %d hits", len(hits))
	}
}

func TestFind_Featured(t *testing.T) {
	cat := New()

	for _, p := range cat.Find(Filter{Featured: true}) {
		if !p.Featured {
			t.Errorf("product %d is not featured", p.ID)
		}
	}
}

func TestBuildCartItem_UsesSelectedOptions(t *testing.T) {
	cat := New()
	p, _ := cat.Get(1)

	item := cat.BuildCartItem(p, SelectedOptions{
		Type:      "Parafina",
		Size:      "100 gr",
		Price:     120,
		Fragrance: "Lavanda",
		Quantity:  2,
	})

	if item.Type != "Parafina" || item.Size != "100 gr" || item.Fragrance != "Lavanda" {
		t.Errorf("expected selected options kept, got %+v", item)
	}
	if item.Price != 120 || item.Quantity != 2 {
		t.Errorf("expected price 120 qty 2, got %v / %d", item.Price, item.Quantity)
	}
	if item.Title != p.Title || item.Image != p.Image || item.Description != p.Description {
		t.Error("expected display fields copied from the product")
	}
}

func TestBuildCartItem_DefaultsMissingOptions(t *testing.T) {
	cat := New()
	p, _ := cat.Get(1)

	item := cat.BuildCartItem(p, SelectedOptions{})

	if item.Type != "Soya" {
		t.Errorf("expected first type, got %q", item.Type)
	}
	if item.Size != "50 gr" {
		t.Errorf("expected first size label, got %q", item.Size)
	}
	if item.Fragrance != "Rosas Especiales" {
		t.Errorf("expected first fragrance, got %q", item.Fragrance)
	}
	if item.Quantity != 1 {
		t.Errorf("expected quantity 1, got %d", item.Quantity)
	}
	if item.Price != 75 {
		t.Errorf("expected first size price 75, got %v", item.Price)
	}
}

func TestBuildCartItem_InvalidPriceFallsBack(t *testing.T) {
	cat := New()
	p, _ := cat.Get(3) // first size is 120

	for _, price := range []float64{0, -1, math.NaN()} {
		item := cat.BuildCartItem(p, SelectedOptions{Price: price})
		if item.Price != 120 {
			t.Errorf("price %v: expected first size price 120, got %v", price, item.Price)
		}
	}
}

func TestBuildCartItem_NoSizesUsesDefaultPrice(t *testing.T) {
	cat := New()
	bare := domain.Product{Title: "Vela Artesanal"}

	item := cat.BuildCartItem(bare, SelectedOptions{})
	if item.Price != DefaultUnitPrice {
		t.Errorf("expected default price %v, got %v", float64(DefaultUnitPrice), item.Price)
	}
	if item.Size != "50 gr" {
		t.Errorf("expected default size label, got %q", item.Size)
	}
}
