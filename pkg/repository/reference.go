package repository

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/BeerCatalog/pkg/model"
)

type BreweryRepository interface {
	GetBreweries(ctx context.Context) ([]*model.Brewery, error)
	GetBreweryByID(ctx context.Context, breweryID uint) (*model.Brewery, error)
}

type CategoryRepository interface {
	GetCategories(ctx context.Context) ([]*model.Category, error)
	GetCategoryByID(ctx context.Context, categoryID uint) (*model.Category, error)
}

type StyleRepository interface {
	GetStyles(ctx context.Context) ([]*model.Style, error)
	GetStyleByID(ctx context.Context, styleID uint) (*model.Style, error)
}

func (r *Repository) GetBreweries(ctx context.Context) ([]*model.Brewery, error) {
	var breweries []*model.Brewery

	if result := r.conn(ctx).Order("id").Find(&breweries); result.Error != nil {
		r.Logger.Error("error getting breweries", zap.Error(result.Error))

		return nil, result.Error
	}

	return breweries, nil
}

func (r *Repository) GetBreweryByID(ctx context.Context, breweryID uint) (*model.Brewery, error) {
	var brewery model.Brewery

	if result := r.conn(ctx).First(&brewery, breweryID); result.Error != nil {
		return nil, notFound(result.Error, "brewery", breweryID)
	}

	return &brewery, nil
}

func (r *Repository) GetCategories(ctx context.Context) ([]*model.Category, error) {
	var categories []*model.Category

	if result := r.conn(ctx).Order("id").Find(&categories); result.Error != nil {
		r.Logger.Error("error getting categories", zap.Error(result.Error))

		return nil, result.Error
	}

	return categories, nil
}

func (r *Repository) GetCategoryByID(ctx context.Context, categoryID uint) (*model.Category, error) {
	var category model.Category

	if result := r.conn(ctx).First(&category, categoryID); result.Error != nil {
		return nil, notFound(result.Error, "category", categoryID)
	}

	return &category, nil
}

func (r *Repository) GetStyles(ctx context.Context) ([]*model.Style, error) {
	var styles []*model.Style

	if result := r.conn(ctx).Joins("Category").Order("styles.id").Find(&styles); result.Error != nil {
		r.Logger.Error("error getting styles", zap.Error(result.Error))

		return nil, result.Error
	}

	return styles, nil
}

func (r *Repository) GetStyleByID(ctx context.Context, styleID uint) (*model.Style, error) {
	var style model.Style

	if result := r.conn(ctx).Joins("Category").First(&style, styleID); result.Error != nil {
		return nil, notFound(result.Error, "style", styleID)
	}

	return &style, nil
}
