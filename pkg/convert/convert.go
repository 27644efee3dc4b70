package convert

import (
	"go.openly.dev/pointy"

	"droscher.com/BeerCatalog/pkg/api"
	"droscher.com/BeerCatalog/pkg/model"
)

func BeersFromModel(beers []*model.Beer) []*api.Beer {
	apiBeers := make([]*api.Beer, 0, len(beers))

	for _, beer := range beers {
		apiBeers = append(apiBeers, BeerFromModel(beer))
	}

	return apiBeers
}

// BeerFromModel flattens attached references into their ids and nested summaries.
func BeerFromModel(beer *model.Beer) *api.Beer {
	apiBeer := api.Beer{
		ID:          beer.ID,
		Name:        pointy.String(beer.Name),
		Description: clone(beer.Description),
		ABV:         clone(beer.ABV),
		IBU:         clone(beer.IBU),
		BreweryID:   clone(beer.BreweryID),
		StyleID:     clone(beer.StyleID),
		CategoryID:  clone(beer.CategoryID),
	}

	if beer.Brewery != nil && beer.Brewery.ID != 0 {
		apiBeer.Brewery = BreweryFromModel(beer.Brewery)
		apiBeer.BreweryID = pointy.Uint(beer.Brewery.ID)
	}

	if beer.Style != nil && beer.Style.ID != 0 {
		apiBeer.Style = StyleFromModel(beer.Style)
		apiBeer.StyleID = pointy.Uint(beer.Style.ID)
	}

	if beer.Category != nil && beer.Category.ID != 0 {
		apiBeer.Category = CategoryFromModel(beer.Category)
		apiBeer.CategoryID = pointy.Uint(beer.Category.ID)
	}

	return &apiBeer
}

// BeerToModel copies scalar fields and reference ids. The id and nested
// references of the wire record are ignored.
func BeerToModel(apiBeer *api.Beer) *model.Beer {
	beer := model.Beer{
		BreweryID:  clone(apiBeer.BreweryID),
		StyleID:    clone(apiBeer.StyleID),
		CategoryID: clone(apiBeer.CategoryID),
	}

	ReplaceBeer(apiBeer, &beer)

	return &beer
}

// ReplaceBeer overwrites every scalar field of beer, clearing those absent
// from apiBeer.
func ReplaceBeer(apiBeer *api.Beer, beer *model.Beer) {
	beer.Name = pointy.StringValue(apiBeer.Name, "")
	beer.Description = clone(apiBeer.Description)
	beer.ABV = clone(apiBeer.ABV)
	beer.IBU = clone(apiBeer.IBU)
}

// MergeBeer overwrites only the scalar fields present in apiBeer.
func MergeBeer(apiBeer *api.Beer, beer *model.Beer) {
	if apiBeer.Name != nil {
		beer.Name = *apiBeer.Name
	}

	if apiBeer.Description != nil {
		beer.Description = clone(apiBeer.Description)
	}

	if apiBeer.ABV != nil {
		beer.ABV = clone(apiBeer.ABV)
	}

	if apiBeer.IBU != nil {
		beer.IBU = clone(apiBeer.IBU)
	}
}

func BreweriesFromModel(breweries []*model.Brewery) []*api.Brewery {
	apiBreweries := make([]*api.Brewery, 0, len(breweries))

	for _, brewery := range breweries {
		apiBreweries = append(apiBreweries, BreweryFromModel(brewery))
	}

	return apiBreweries
}

func BreweryFromModel(brewery *model.Brewery) *api.Brewery {
	return &api.Brewery{
		ID:          brewery.ID,
		Name:        brewery.Name,
		Address:     brewery.Address,
		City:        brewery.City,
		Country:     brewery.Country,
		Phone:       brewery.Phone,
		Website:     brewery.Website,
		Description: brewery.Description,
	}
}

// BreweryToModel keeps the wire id; breweries are only written by seeding,
// which upserts by id.
func BreweryToModel(apiBrewery *api.Brewery) model.Brewery {
	brewery := model.Brewery{
		Name:        apiBrewery.Name,
		Address:     apiBrewery.Address,
		City:        apiBrewery.City,
		Country:     apiBrewery.Country,
		Phone:       apiBrewery.Phone,
		Website:     apiBrewery.Website,
		Description: apiBrewery.Description,
	}
	brewery.ID = apiBrewery.ID

	return brewery
}

func CategoriesFromModel(categories []*model.Category) []*api.Category {
	apiCategories := make([]*api.Category, 0, len(categories))

	for _, category := range categories {
		apiCategories = append(apiCategories, CategoryFromModel(category))
	}

	return apiCategories
}

func CategoryFromModel(category *model.Category) *api.Category {
	return &api.Category{ID: category.ID, Name: category.Name}
}

func CategoryToModel(apiCategory *api.Category) model.Category {
	category := model.Category{Name: apiCategory.Name}
	category.ID = apiCategory.ID

	return category
}

func StylesFromModel(styles []*model.Style) []*api.Style {
	apiStyles := make([]*api.Style, 0, len(styles))

	for _, style := range styles {
		apiStyles = append(apiStyles, StyleFromModel(style))
	}

	return apiStyles
}

func StyleFromModel(style *model.Style) *api.Style {
	apiStyle := api.Style{ID: style.ID, Name: style.Name, CategoryID: style.CategoryID}

	if style.Category.ID != 0 {
		apiStyle.Category = CategoryFromModel(&style.Category)
	}

	return &apiStyle
}

func StyleToModel(apiStyle *api.Style) model.Style {
	style := model.Style{Name: apiStyle.Name, CategoryID: apiStyle.CategoryID}
	style.ID = apiStyle.ID

	return style
}

func clone[T any](value *T) *T {
	if value == nil {
		return nil
	}

	return pointy.Pointer(*value)
}
