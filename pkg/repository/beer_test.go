package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"gorm.io/gorm"

	"droscher.com/BeerCatalog/pkg/model"
	"droscher.com/BeerCatalog/pkg/repository"
)

type BeerTestSuite struct {
	RepositorySuite
}

func TestBeerTestSuite(t *testing.T) {
	suite.Run(t, new(BeerTestSuite))
}

func (suite *BeerTestSuite) TestGetBeers_GetsBeersWithReferences() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "beers" LEFT JOIN "breweries" "Brewery" ON "beers"\."brewery_id" = "Brewery"\."id" (.+) LEFT JOIN "styles" "Style" ON (.+) LEFT JOIN "categories" "Category" ON (.+) WHERE "beers"\."deleted_at" IS NULL ORDER BY beers\.id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "abv", "ibu", "brewery_id", "Brewery__id", "Brewery__name"}).
			AddRow(1, "Pilsen", 5.0, 25.0, 3, 3, "Cervecería del Norte").
			AddRow(2, "Negra", 6.5, nil, nil, nil, nil))

	beers, err := suite.repository.GetBeers(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(beers, 2)
	suite.Equal(uint(1), beers[0].ID)
	suite.Equal("Pilsen", beers[0].Name)
	suite.InDelta(5.0, *beers[0].ABV, 0.001)
	suite.Equal(uint(3), *beers[0].BreweryID)
	suite.Require().NotNil(beers[0].Brewery)
	suite.Equal("Cervecería del Norte", beers[0].Brewery.Name)
	suite.Equal("Negra", beers[1].Name)
	suite.Nil(beers[1].IBU)
	suite.Nil(beers[1].BreweryID)
}

func (suite *BeerTestSuite) TestGetBeers_ReturnsError() {
	suite.mock.ExpectQuery("^SELECT (.+)").WillReturnError(gorm.ErrInvalidDB)

	beers, err := suite.repository.GetBeers(context.Background())
	suite.Require().ErrorIs(err, gorm.ErrInvalidDB)
	suite.Nil(beers)
}

func (suite *BeerTestSuite) TestGetBeerByID_GetsBeer() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "beers" LEFT JOIN (.+) WHERE "beers"\."id" = \$1 AND "beers"\."deleted_at" IS NULL ORDER BY "beers"\."id" LIMIT \$2`).
		WithArgs(7, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "style_id", "Style__id", "Style__name"}).
			AddRow(7, "Pilsen", "Rubia y ligera", 2, 2, "Pilsner"))

	beer, err := suite.repository.GetBeerByID(context.Background(), 7)
	suite.Require().NoError(err)
	suite.Equal(uint(7), beer.ID)
	suite.Equal("Pilsen", beer.Name)
	suite.Equal("Rubia y ligera", *beer.Description)
	suite.Equal(uint(2), *beer.StyleID)
	suite.Require().NotNil(beer.Style)
	suite.Equal("Pilsner", beer.Style.Name)
}

func (suite *BeerTestSuite) TestGetBeerByID_ReturnsNotFound() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "beers" (.+)`).
		WithArgs(42, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	beer, err := suite.repository.GetBeerByID(context.Background(), 42)
	suite.Require().ErrorIs(err, repository.ErrNotFound)
	suite.EqualError(err, "record not found: beer 42")
	suite.Nil(beer)
}

func (suite *BeerTestSuite) TestGetBeerForUpdate_LocksRowAndPreloads() {
	suite.mock.ExpectQuery(`^SELECT \* FROM "beers" WHERE "beers"\."id" = \$1 AND "beers"\."deleted_at" IS NULL ORDER BY "beers"\."id" LIMIT \$2 FOR UPDATE`).
		WithArgs(7, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "brewery_id", "style_id", "category_id"}).
			AddRow(7, "Pilsen", 3, nil, nil))
	suite.mock.ExpectQuery(`^SELECT \* FROM "breweries" WHERE "breweries"\."id" = \$1 AND "breweries"\."deleted_at" IS NULL`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "Cervecería del Norte"))

	beer, err := suite.repository.GetBeerForUpdate(context.Background(), 7)
	suite.Require().NoError(err)
	suite.Equal("Pilsen", beer.Name)
	suite.Require().NotNil(beer.Brewery)
	suite.Equal("Cervecería del Norte", beer.Brewery.Name)
	suite.Nil(beer.Style)
	suite.Nil(beer.Category)
}

func (suite *BeerTestSuite) TestGetBeerForUpdate_ReturnsNotFound() {
	suite.mock.ExpectQuery(`^SELECT \* FROM "beers" (.+) FOR UPDATE`).
		WithArgs(42, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	beer, err := suite.repository.GetBeerForUpdate(context.Background(), 42)
	suite.Require().ErrorIs(err, repository.ErrNotFound)
	suite.Nil(beer)
}

func (suite *BeerTestSuite) TestAddBeer_AddsBeer() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "beers" ("created_at","updated_at","deleted_at","name","description","abv","ibu","brewery_id","style_id","category_id") VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) RETURNING "id"`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), nil, "Pilsen", "Rubia y ligera", 5.0, 25.0, 1, 1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(10)))
	suite.mock.ExpectCommit()

	beer := model.Beer{
		Name:        "Pilsen",
		Description: pointy.String("Rubia y ligera"),
		ABV:         pointy.Float64(5.0),
		IBU:         pointy.Float64(25.0),
		BreweryID:   pointy.Uint(1),
		StyleID:     pointy.Uint(1),
		CategoryID:  pointy.Uint(1),
		Brewery:     &model.Brewery{Model: gorm.Model{ID: 1}, Name: "Cervecería del Norte"},
	}

	result, err := suite.repository.AddBeer(context.Background(), &beer)
	suite.Require().NoError(err)
	suite.Equal(uint(10), result.ID)
	suite.Equal("Cervecería del Norte", result.Brewery.Name)
}

func (suite *BeerTestSuite) TestAddBeer_IgnoresSuppliedID() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "beers" \("created_at","updated_at","deleted_at","name",(.+)\) VALUES (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(11)))
	suite.mock.ExpectCommit()

	beer := model.Beer{Model: gorm.Model{ID: 99}, Name: "Pilsen"}

	result, err := suite.repository.AddBeer(context.Background(), &beer)
	suite.Require().NoError(err)
	suite.Equal(uint(11), result.ID)
}

func (suite *BeerTestSuite) TestAddBeer_ReturnsError() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery("^INSERT INTO (.+)").WillReturnError(gorm.ErrInvalidData)
	suite.mock.ExpectRollback()

	result, err := suite.repository.AddBeer(context.Background(), &model.Beer{Name: "Pilsen"})
	suite.Nil(result)
	suite.EqualError(err, "unsupported data")
}

func (suite *BeerTestSuite) TestSaveBeer_UpdatesAllColumns() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^UPDATE "beers" SET "created_at"=\$1,"updated_at"=\$2,"deleted_at"=\$3,"name"=\$4,"description"=\$5,"abv"=\$6,"ibu"=\$7,"brewery_id"=\$8,"style_id"=\$9,"category_id"=\$10 WHERE (.+)"id" = \$11`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), nil, "Pilsen Premium", nil, 5.2, nil, nil, 2, nil, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	beer := model.Beer{
		Model:   gorm.Model{ID: 7},
		Name:    "Pilsen Premium",
		ABV:     pointy.Float64(5.2),
		StyleID: pointy.Uint(2),
		Style:   &model.Style{Model: gorm.Model{ID: 2}, Name: "Pilsner"},
	}

	result, err := suite.repository.SaveBeer(context.Background(), &beer)
	suite.Require().NoError(err)
	suite.Equal(uint(7), result.ID)
	suite.Equal("Pilsner", result.Style.Name)
}

func (suite *BeerTestSuite) TestDeleteBeer_DeletesPermanently() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "beers" WHERE "beers"."id" = $1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	err := suite.repository.DeleteBeer(context.Background(), 7)
	suite.Require().NoError(err)
}

func (suite *BeerTestSuite) TestDeleteBeer_ReturnsNotFoundWhenNothingDeleted() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "beers" WHERE "beers"."id" = $1`)).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectCommit()

	err := suite.repository.DeleteBeer(context.Background(), 42)
	suite.Require().ErrorIs(err, repository.ErrNotFound)
}

func (suite *BeerTestSuite) TestTransaction_SharesTransaction() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^SELECT \* FROM "beers" (.+) FOR UPDATE`).
		WithArgs(7, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(7, "Pilsen"))
	suite.mock.ExpectExec(`^DELETE FROM "beers"`).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	err := suite.repository.Transaction(context.Background(), func(ctx context.Context) error {
		if _, err := suite.repository.GetBeerForUpdate(ctx, 7); err != nil {
			return err
		}

		return suite.repository.DeleteBeer(ctx, 7)
	})
	suite.Require().NoError(err)
}

func (suite *BeerTestSuite) TestTransaction_RollsBackOnError() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^SELECT \* FROM "beers" (.+) FOR UPDATE`).
		WithArgs(42, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
	suite.mock.ExpectRollback()

	err := suite.repository.Transaction(context.Background(), func(ctx context.Context) error {
		if _, err := suite.repository.GetBeerForUpdate(ctx, 42); err != nil {
			return err
		}

		return suite.repository.DeleteBeer(ctx, 42)
	})
	suite.Require().ErrorIs(err, repository.ErrNotFound)
}

func (suite *BeerTestSuite) TestTransaction_NestedCallJoinsOuterTransaction() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectRollback()

	errInner := errors.New("inner failure")

	err := suite.repository.Transaction(context.Background(), func(ctx context.Context) error {
		return suite.repository.Transaction(ctx, func(context.Context) error {
			return errInner
		})
	})
	suite.Require().ErrorIs(err, errInner)
}
