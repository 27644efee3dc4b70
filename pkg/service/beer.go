package service

import (
	"context"

	"go.openly.dev/pointy"
	"go.uber.org/zap"

	"droscher.com/BeerCatalog/pkg/api"
	"droscher.com/BeerCatalog/pkg/convert"
	"droscher.com/BeerCatalog/pkg/model"
	"droscher.com/BeerCatalog/pkg/repository"
)

type BeerService struct {
	beers      repository.BeerRepository
	breweries  repository.BreweryRepository
	styles     repository.StyleRepository
	categories repository.CategoryRepository
	logger     *zap.Logger
}

func NewBeerService(
	beers repository.BeerRepository,
	breweries repository.BreweryRepository,
	styles repository.StyleRepository,
	categories repository.CategoryRepository,
	logger *zap.Logger,
) *BeerService {
	return &BeerService{
		beers:      beers,
		breweries:  breweries,
		styles:     styles,
		categories: categories,
		logger:     logger,
	}
}

func (s *BeerService) GetBeers(ctx context.Context) ([]*api.Beer, error) {
	s.logger.Info("getting all beers")

	beers, err := s.beers.GetBeers(ctx)
	if err != nil {
		return nil, err
	}

	return convert.BeersFromModel(beers), nil
}

func (s *BeerService) GetBeer(ctx context.Context, beerID uint) (*api.Beer, error) {
	s.logger.Info("getting beer", zap.Uint("id", beerID))

	beer, err := s.beers.GetBeerByID(ctx, beerID)
	if err != nil {
		return nil, translate(err, "Beer", beerID)
	}

	return convert.BeerFromModel(beer), nil
}

// CreateBeer stores a new beer. Any id on the input is ignored.
func (s *BeerService) CreateBeer(ctx context.Context, input *api.Beer) (*api.Beer, error) {
	s.logger.Info("creating beer")

	var created *model.Beer

	err := s.beers.Transaction(ctx, func(ctx context.Context) error {
		beer := convert.BeerToModel(input)

		if err := s.resolveReferences(ctx, beer, input, true); err != nil {
			return err
		}

		var err error

		created, err = s.beers.AddBeer(ctx, beer)

		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("beer created", zap.Uint("id", created.ID))

	return convert.BeerFromModel(created), nil
}

// UpdateBeer replaces the beer: omitted fields and references are cleared.
func (s *BeerService) UpdateBeer(ctx context.Context, beerID uint, input *api.Beer) (*api.Beer, error) {
	s.logger.Info("updating beer", zap.Uint("id", beerID))

	return s.modifyBeer(ctx, beerID, func(ctx context.Context, beer *model.Beer) error {
		convert.ReplaceBeer(input, beer)

		return s.resolveReferences(ctx, beer, input, true)
	})
}

// PatchBeer merges the provided fields into the beer: omitted fields and
// references keep their stored values.
func (s *BeerService) PatchBeer(ctx context.Context, beerID uint, input *api.Beer) (*api.Beer, error) {
	s.logger.Info("patching beer", zap.Uint("id", beerID))

	return s.modifyBeer(ctx, beerID, func(ctx context.Context, beer *model.Beer) error {
		convert.MergeBeer(input, beer)

		return s.resolveReferences(ctx, beer, input, false)
	})
}

func (s *BeerService) DeleteBeer(ctx context.Context, beerID uint) error {
	s.logger.Info("deleting beer", zap.Uint("id", beerID))

	return s.beers.Transaction(ctx, func(ctx context.Context) error {
		if _, err := s.beers.GetBeerForUpdate(ctx, beerID); err != nil {
			return translate(err, "Beer", beerID)
		}

		return translate(s.beers.DeleteBeer(ctx, beerID), "Beer", beerID)
	})
}

func (s *BeerService) modifyBeer(ctx context.Context, beerID uint, apply func(context.Context, *model.Beer) error) (*api.Beer, error) {
	var saved *model.Beer

	err := s.beers.Transaction(ctx, func(ctx context.Context) error {
		beer, err := s.beers.GetBeerForUpdate(ctx, beerID)
		if err != nil {
			return translate(err, "Beer", beerID)
		}

		if err = apply(ctx, beer); err != nil {
			return err
		}

		saved, err = s.beers.SaveBeer(ctx, beer)

		return err
	})
	if err != nil {
		return nil, err
	}

	return convert.BeerFromModel(saved), nil
}

// resolveReferences attaches the brewery, style and category named by input.
// A reference whose id is absent is cleared when clearMissing is set and left
// alone otherwise.
func (s *BeerService) resolveReferences(ctx context.Context, beer *model.Beer, input *api.Beer, clearMissing bool) error {
	switch {
	case input.BreweryID != nil:
		brewery, err := s.breweries.GetBreweryByID(ctx, *input.BreweryID)
		if err != nil {
			return translate(err, "Brewery", *input.BreweryID)
		}

		beer.Brewery, beer.BreweryID = brewery, pointy.Uint(brewery.ID)
	case clearMissing:
		beer.Brewery, beer.BreweryID = nil, nil
	}

	switch {
	case input.StyleID != nil:
		style, err := s.styles.GetStyleByID(ctx, *input.StyleID)
		if err != nil {
			return translate(err, "Style", *input.StyleID)
		}

		beer.Style, beer.StyleID = style, pointy.Uint(style.ID)
	case clearMissing:
		beer.Style, beer.StyleID = nil, nil
	}

	switch {
	case input.CategoryID != nil:
		category, err := s.categories.GetCategoryByID(ctx, *input.CategoryID)
		if err != nil {
			return translate(err, "Category", *input.CategoryID)
		}

		beer.Category, beer.CategoryID = category, pointy.Uint(category.ID)
	case clearMissing:
		beer.Category, beer.CategoryID = nil, nil
	}

	return nil
}
