package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm/clause"

	"droscher.com/BeerCatalog/pkg/model"
)

// SeedReferenceData upserts categories, styles and breweries by id in one
// transaction. Records are written in dependency order.
func (r *Repository) SeedReferenceData(ctx context.Context, categories []model.Category, styles []model.Style, breweries []model.Brewery) error {
	return r.Transaction(ctx, func(ctx context.Context) error {
		if err := r.upsertByID(ctx, "categories", &categories, len(categories)); err != nil {
			return err
		}

		if err := r.upsertByID(ctx, "styles", &styles, len(styles)); err != nil {
			return err
		}

		return r.upsertByID(ctx, "breweries", &breweries, len(breweries))
	})
}

func (r *Repository) upsertByID(ctx context.Context, table string, records any, count int) error {
	if count == 0 {
		return nil
	}

	result := r.conn(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(records)
	if result.Error != nil {
		r.Logger.Error("error seeding reference data", zap.String("table", table), zap.Error(result.Error))

		return result.Error
	}

	r.Logger.Info("seeded reference data", zap.String("table", table), zap.Int64("rows", result.RowsAffected))

	return nil
}
