package service

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/BeerCatalog/pkg/api"
	"droscher.com/BeerCatalog/pkg/convert"
	"droscher.com/BeerCatalog/pkg/repository"
)

type BreweryService struct {
	repo   repository.BreweryRepository
	logger *zap.Logger
}

func NewBreweryService(repo repository.BreweryRepository, logger *zap.Logger) *BreweryService {
	return &BreweryService{repo: repo, logger: logger}
}

func (s *BreweryService) GetBreweries(ctx context.Context) ([]*api.Brewery, error) {
	s.logger.Info("getting all breweries")

	breweries, err := s.repo.GetBreweries(ctx)
	if err != nil {
		return nil, err
	}

	return convert.BreweriesFromModel(breweries), nil
}

func (s *BreweryService) GetBrewery(ctx context.Context, breweryID uint) (*api.Brewery, error) {
	s.logger.Info("getting brewery", zap.Uint("id", breweryID))

	brewery, err := s.repo.GetBreweryByID(ctx, breweryID)
	if err != nil {
		return nil, translate(err, "Brewery", breweryID)
	}

	return convert.BreweryFromModel(brewery), nil
}

type CategoryService struct {
	repo   repository.CategoryRepository
	logger *zap.Logger
}

func NewCategoryService(repo repository.CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{repo: repo, logger: logger}
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]*api.Category, error) {
	s.logger.Info("getting all categories")

	categories, err := s.repo.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	return convert.CategoriesFromModel(categories), nil
}

func (s *CategoryService) GetCategory(ctx context.Context, categoryID uint) (*api.Category, error) {
	s.logger.Info("getting category", zap.Uint("id", categoryID))

	category, err := s.repo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, translate(err, "Category", categoryID)
	}

	return convert.CategoryFromModel(category), nil
}

type StyleService struct {
	repo   repository.StyleRepository
	logger *zap.Logger
}

func NewStyleService(repo repository.StyleRepository, logger *zap.Logger) *StyleService {
	return &StyleService{repo: repo, logger: logger}
}

func (s *StyleService) GetStyles(ctx context.Context) ([]*api.Style, error) {
	s.logger.Info("getting all styles")

	styles, err := s.repo.GetStyles(ctx)
	if err != nil {
		return nil, err
	}

	return convert.StylesFromModel(styles), nil
}

func (s *StyleService) GetStyle(ctx context.Context, styleID uint) (*api.Style, error) {
	s.logger.Info("getting style", zap.Uint("id", styleID))

	style, err := s.repo.GetStyleByID(ctx, styleID)
	if err != nil {
		return nil, translate(err, "Style", styleID)
	}

	return convert.StyleFromModel(style), nil
}
