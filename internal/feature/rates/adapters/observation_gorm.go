// Package adapters provides persistence implementations for the rates feature.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"econ_backend/internal/feature/rates/domain/entity"
	"econ_backend/internal/feature/rates/usecase"
)

type observationGorm struct {
	db *gorm.DB
}

var _ usecase.ObservationRepository = (*observationGorm)(nil)

func NewObservationRepository(db *gorm.DB) *observationGorm {
	return &observationGorm{db: db}
}

type ObservationModel struct {
	ID       uint      `gorm:"primaryKey"`
	SeriesID string    `gorm:"size:32;not null;uniqueIndex:obs_series_date,priority:1"`
	Date     time.Time `gorm:"not null;uniqueIndex:obs_series_date,priority:2"`

	Value *float64
}

func (ObservationModel) TableName() string {
	return "observations"
}

func toModel(e entity.Observation) ObservationModel {
	return ObservationModel{
		SeriesID: e.SeriesID,
		Date:     e.Date,
		Value:    e.Value,
	}
}

func (r *observationGorm) UpsertBatch(ctx context.Context, obs []entity.Observation) error {
	if len(obs) == 0 {
		return nil
	}
	ms := make([]ObservationModel, 0, len(obs))
	for _, e := range obs {
		ms = append(ms, toModel(e))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "series_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&ms).Error
}

func (r *observationGorm) Find(ctx context.Context, seriesID string, limit int) ([]entity.Observation, error) {
	var rows []ObservationModel
	q := r.db.WithContext(ctx).
		Where("series_id = ?", seriesID).
		Order("date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	// Rows come back newest first so the limit keeps the most recent
	// observations; callers get them oldest first.
	out := make([]entity.Observation, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		m := rows[i]
		out = append(out, entity.Observation{
			SeriesID: m.SeriesID,
			Date:     m.Date,
			Value:    m.Value,
		})
	}
	return out, nil
}
