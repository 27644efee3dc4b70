package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.openly.dev/pointy"
	"gorm.io/gorm"

	"droscher.com/BeerCatalog/pkg/api"
	"droscher.com/BeerCatalog/pkg/convert"
	"droscher.com/BeerCatalog/pkg/model"
)

func TestBeerFromModel_FlattensReferences(t *testing.T) {
	beer := model.Beer{
		Model:      gorm.Model{ID: 4},
		Name:       "Pilsen",
		ABV:        pointy.Float64(5.0),
		BreweryID:  pointy.Uint(1),
		Brewery:    &model.Brewery{Model: gorm.Model{ID: 1}, Name: "Cervecería del Norte"},
		StyleID:    pointy.Uint(2),
		Style:      &model.Style{Model: gorm.Model{ID: 2}, Name: "Pilsner", CategoryID: 3},
		CategoryID: pointy.Uint(3),
		Category:   &model.Category{Model: gorm.Model{ID: 3}, Name: "Lager"},
	}

	apiBeer := convert.BeerFromModel(&beer)

	assert.Equal(t, uint(4), apiBeer.ID)
	assert.Equal(t, "Pilsen", *apiBeer.Name)
	assert.Nil(t, apiBeer.Description)
	assert.Nil(t, apiBeer.IBU)
	require.NotNil(t, apiBeer.Brewery)
	assert.Equal(t, "Cervecería del Norte", apiBeer.Brewery.Name)
	assert.Equal(t, uint(1), *apiBeer.BreweryID)
	require.NotNil(t, apiBeer.Style)
	assert.Equal(t, uint(3), apiBeer.Style.CategoryID)
	assert.Nil(t, apiBeer.Style.Category)
	require.NotNil(t, apiBeer.Category)
	assert.Equal(t, "Lager", apiBeer.Category.Name)

	*apiBeer.ABV = 7
	assert.InDelta(t, 5.0, *beer.ABV, 0.0001, "wire record must not alias the entity")
}

func TestBeerFromModel_SkipsEmptyJoinedReferences(t *testing.T) {
	beer := model.Beer{Model: gorm.Model{ID: 4}, Name: "Pilsen", Brewery: &model.Brewery{}}

	apiBeer := convert.BeerFromModel(&beer)

	assert.Nil(t, apiBeer.Brewery)
	assert.Nil(t, apiBeer.BreweryID)
}

func TestBeerRoundTrip_PreservesScalarsAndReferenceIDs(t *testing.T) {
	beer := model.Beer{
		Model:       gorm.Model{ID: 9},
		Name:        "Negra",
		Description: pointy.String("Tostada"),
		ABV:         pointy.Float64(6.5),
		IBU:         pointy.Float64(40),
		BreweryID:   pointy.Uint(1),
		StyleID:     pointy.Uint(2),
		CategoryID:  pointy.Uint(3),
	}

	roundTripped := convert.BeerToModel(convert.BeerFromModel(&beer))

	assert.Equal(t, beer.Name, roundTripped.Name)
	assert.Equal(t, beer.Description, roundTripped.Description)
	assert.Equal(t, beer.ABV, roundTripped.ABV)
	assert.Equal(t, beer.IBU, roundTripped.IBU)
	assert.Equal(t, beer.BreweryID, roundTripped.BreweryID)
	assert.Equal(t, beer.StyleID, roundTripped.StyleID)
	assert.Equal(t, beer.CategoryID, roundTripped.CategoryID)
	assert.Zero(t, roundTripped.ID)
}

func TestReplaceBeer_ClearsAbsentScalars(t *testing.T) {
	beer := model.Beer{Name: "Pilsen", Description: pointy.String("Rubia"), ABV: pointy.Float64(5), IBU: pointy.Float64(20)}

	convert.ReplaceBeer(&api.Beer{Name: pointy.String("Pilsen Premium"), IBU: pointy.Float64(30)}, &beer)

	assert.Equal(t, "Pilsen Premium", beer.Name)
	assert.Nil(t, beer.Description)
	assert.Nil(t, beer.ABV)
	assert.InDelta(t, 30.0, *beer.IBU, 0.0001)
}

func TestMergeBeer_KeepsAbsentScalars(t *testing.T) {
	beer := model.Beer{Name: "Pilsen", Description: pointy.String("Rubia"), ABV: pointy.Float64(5), IBU: pointy.Float64(20)}

	convert.MergeBeer(&api.Beer{ABV: pointy.Float64(6), Description: pointy.String("")}, &beer)

	assert.Equal(t, "Pilsen", beer.Name)
	assert.Equal(t, "", *beer.Description)
	assert.InDelta(t, 6.0, *beer.ABV, 0.0001)
	assert.InDelta(t, 20.0, *beer.IBU, 0.0001)
}

func TestReferenceConverters(t *testing.T) {
	category := model.Category{Model: gorm.Model{ID: 1}, Name: "Lager"}
	style := model.Style{Model: gorm.Model{ID: 2}, Name: "Pilsner", CategoryID: 1, Category: category}
	brewery := model.Brewery{Model: gorm.Model{ID: 3}, Name: "Bodega Sur", City: "Mendoza"}

	styles := convert.StylesFromModel([]*model.Style{&style})
	require.Len(t, styles, 1)
	assert.Equal(t, &api.Style{ID: 2, Name: "Pilsner", CategoryID: 1, Category: &api.Category{ID: 1, Name: "Lager"}}, styles[0])

	assert.Equal(t, []*api.Category{{ID: 1, Name: "Lager"}}, convert.CategoriesFromModel([]*model.Category{&category}))
	assert.Empty(t, convert.BreweriesFromModel(nil))

	apiBrewery := convert.BreweryFromModel(&brewery)
	assert.Equal(t, brewery, convert.BreweryToModel(apiBrewery))
	assert.Equal(t, category, convert.CategoryToModel(convert.CategoryFromModel(&category)))
	assert.Equal(t, model.Style{Model: gorm.Model{ID: 2}, Name: "Pilsner", CategoryID: 1}, convert.StyleToModel(convert.StyleFromModel(&style)))
}
