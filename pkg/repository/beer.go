package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/BeerCatalog/pkg/model"
)

type BeerRepository interface {
	Transactor
	AddBeer(ctx context.Context, beer *model.Beer) (*model.Beer, error)
	DeleteBeer(ctx context.Context, beerID uint) error
	GetBeerByID(ctx context.Context, beerID uint) (*model.Beer, error)
	GetBeerForUpdate(ctx context.Context, beerID uint) (*model.Beer, error)
	GetBeers(ctx context.Context) ([]*model.Beer, error)
	SaveBeer(ctx context.Context, beer *model.Beer) (*model.Beer, error)
}

func (r *Repository) GetBeers(ctx context.Context) ([]*model.Beer, error) {
	var beers []*model.Beer

	result := r.conn(ctx).
		Joins("Brewery").
		Joins("Style").
		Joins("Category").
		Order("beers.id").
		Find(&beers)
	if result.Error != nil {
		r.Logger.Error("error getting beers", zap.Error(result.Error))

		return nil, result.Error
	}

	return beers, nil
}

func (r *Repository) GetBeerByID(ctx context.Context, beerID uint) (*model.Beer, error) {
	var beer model.Beer

	result := r.conn(ctx).
		Joins("Brewery").
		Joins("Style").
		Joins("Category").
		First(&beer, beerID)
	if result.Error != nil {
		return nil, notFound(result.Error, "beer", beerID)
	}

	return &beer, nil
}

// GetBeerForUpdate locks the beer row until the surrounding transaction ends.
// References are preloaded rather than joined: postgres refuses FOR UPDATE on
// the nullable side of an outer join.
func (r *Repository) GetBeerForUpdate(ctx context.Context, beerID uint) (*model.Beer, error) {
	var beer model.Beer

	result := r.conn(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Preload("Brewery").
		Preload("Style").
		Preload("Category").
		First(&beer, beerID)
	if result.Error != nil {
		return nil, notFound(result.Error, "beer", beerID)
	}

	return &beer, nil
}

func (r *Repository) AddBeer(ctx context.Context, beer *model.Beer) (*model.Beer, error) {
	beer.ID = 0

	if result := r.conn(ctx).Omit(clause.Associations).Create(beer); result.Error != nil {
		return nil, result.Error
	}

	return beer, nil
}

func (r *Repository) SaveBeer(ctx context.Context, beer *model.Beer) (*model.Beer, error) {
	if result := r.conn(ctx).Omit(clause.Associations).Save(beer); result.Error != nil {
		return nil, result.Error
	}

	return beer, nil
}

func (r *Repository) DeleteBeer(ctx context.Context, beerID uint) error {
	result := r.conn(ctx).Unscoped().Delete(&model.Beer{}, beerID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound, "beer", beerID)
	}

	return nil
}
