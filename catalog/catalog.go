package catalog

import "github.com/shopspring/decimal"

type Court struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Kind      string          `json:"kind"`
	BasePrice decimal.Decimal `json:"basePrice"`
}

// Extra is a sellable add-on from the price list (rackets, balls, grips...).
type Extra struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

var Courts = []Court{
	{ID: "futbol-5-1", Name: "Fútbol 5", Kind: "futbol-5", BasePrice: decimal.NewFromInt(8000)},
	{ID: "futbol-8-1", Name: "Fútbol 8", Kind: "futbol-8", BasePrice: decimal.NewFromInt(12000)},
	{ID: "futbol-2-1", Name: "Fútbol 2", Kind: "futbol-2", BasePrice: decimal.NewFromInt(5000)},
	{ID: "padel-1", Name: "Pádel 1", Kind: "padel", BasePrice: decimal.NewFromInt(10000)},
	{ID: "padel-2", Name: "Pádel 2", Kind: "padel", BasePrice: decimal.NewFromInt(10000)},
}

var DefaultExtras = []Extra{
	{ID: "extra-1", Name: "Alquiler de paletas", Price: decimal.NewFromInt(2000)},
	{ID: "extra-2", Name: "Tubo de pelotas", Price: decimal.NewFromInt(3000)},
	{ID: "extra-3", Name: "Cubre grips", Price: decimal.NewFromInt(1000)},
	{ID: "extra-4", Name: "Protectores", Price: decimal.NewFromInt(1500)},
}
