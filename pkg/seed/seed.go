// Package seed loads reference data (categories, styles and breweries) from a
// file and hands it to the store in one batch.
package seed

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/kkyr/fig"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BeerCatalog/pkg/api"
	"droscher.com/BeerCatalog/pkg/convert"
	"droscher.com/BeerCatalog/pkg/model"
)

var ErrInvalidSeed = errors.New("invalid seed data")

type Store interface {
	SeedReferenceData(ctx context.Context, categories []model.Category, styles []model.Style, breweries []model.Brewery) error
}

type Category struct {
	ID   uint
	Name string
}

type Style struct {
	ID         uint
	Name       string
	CategoryID uint `fig:"categoryId"`
}

type Brewery struct {
	ID          uint
	Name        string
	Address     string
	City        string
	Country     string
	Phone       string
	Website     string
	Description string
}

// File is the decoded seed file. Every record carries an explicit id so that
// seeding the same file twice is harmless.
type File struct {
	Categories []Category
	Styles     []Style
	Breweries  []Brewery
}

// Load decodes a TOML, YAML or JSON seed file.
func Load(path string) (*File, error) {
	var file File

	if err := fig.Load(&file, fig.File(filepath.Base(path)), fig.Dirs(filepath.Dir(path))); err != nil {
		return nil, err
	}

	return &file, nil
}

// Validate reports every problem in the file, not just the first.
func (f *File) Validate() error {
	var err error

	categoryIDs := make(map[uint]bool, len(f.Categories))

	for i, category := range f.Categories {
		err = multierr.Append(err, checkRecord("category", i, category.ID, category.Name, categoryIDs))
	}

	styleIDs := make(map[uint]bool, len(f.Styles))

	for i, style := range f.Styles {
		err = multierr.Append(err, checkRecord("style", i, style.ID, style.Name, styleIDs))

		if style.CategoryID == 0 {
			err = multierr.Append(err, fmt.Errorf("%w: style %d has no categoryId", ErrInvalidSeed, style.ID))
		}
	}

	breweryIDs := make(map[uint]bool, len(f.Breweries))

	for i, brewery := range f.Breweries {
		err = multierr.Append(err, checkRecord("brewery", i, brewery.ID, brewery.Name, breweryIDs))

		if validationErr := breweryRecord(brewery).Validate(); validationErr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: brewery %d: %w", ErrInvalidSeed, brewery.ID, validationErr))
		}
	}

	return err
}

// Models converts the file into storage records.
func (f *File) Models() ([]model.Category, []model.Style, []model.Brewery) {
	categories := make([]model.Category, 0, len(f.Categories))
	for _, category := range f.Categories {
		categories = append(categories, convert.CategoryToModel(&api.Category{ID: category.ID, Name: category.Name}))
	}

	styles := make([]model.Style, 0, len(f.Styles))
	for _, style := range f.Styles {
		styles = append(styles, convert.StyleToModel(&api.Style{ID: style.ID, Name: style.Name, CategoryID: style.CategoryID}))
	}

	breweries := make([]model.Brewery, 0, len(f.Breweries))
	for _, brewery := range f.Breweries {
		breweries = append(breweries, convert.BreweryToModel(breweryRecord(brewery)))
	}

	return categories, styles, breweries
}

// Run loads, validates and stores the seed file at path. Nothing is written
// unless the whole file is valid.
func Run(ctx context.Context, path string, store Store, logger *zap.Logger) error {
	logger.Info("loading seed file", zap.String("file", path))

	file, err := Load(path)
	if err != nil {
		logger.Error("error loading seed file", zap.String("file", path), zap.Error(err))

		return err
	}

	if err = file.Validate(); err != nil {
		for _, problem := range multierr.Errors(err) {
			logger.Error("invalid seed record", zap.Error(problem))
		}

		return err
	}

	categories, styles, breweries := file.Models()

	if err = store.SeedReferenceData(ctx, categories, styles, breweries); err != nil {
		return err
	}

	logger.Info("reference data seeded",
		zap.Int("categories", len(categories)),
		zap.Int("styles", len(styles)),
		zap.Int("breweries", len(breweries)))

	return nil
}

func checkRecord(kind string, index int, id uint, name string, seen map[uint]bool) error {
	var err error

	switch {
	case id == 0:
		err = multierr.Append(err, fmt.Errorf("%w: %s at position %d has no id", ErrInvalidSeed, kind, index+1))
	case seen[id]:
		err = multierr.Append(err, fmt.Errorf("%w: duplicate %s id %d", ErrInvalidSeed, kind, id))
	default:
		seen[id] = true
	}

	if name == "" {
		err = multierr.Append(err, fmt.Errorf("%w: %s at position %d has no name", ErrInvalidSeed, kind, index+1))
	}

	return err
}

func breweryRecord(brewery Brewery) *api.Brewery {
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
