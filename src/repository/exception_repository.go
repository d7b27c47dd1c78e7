package repository

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"apitemplate/src/model"
)

// ExceptionRepository handles persistence of captured exceptions.
type ExceptionRepository struct {
	db *gorm.DB
}

type ExceptionSearchOptions struct {
	Level  *string
	Limit  int
	Offset int
}

func NewExceptionRepository(db *gorm.DB) *ExceptionRepository {
	return &ExceptionRepository{db: db}
}

// Create persists a new exception.
func (r *ExceptionRepository) Create(
	ctx context.Context,
	exc *model.Exception,
) error {

	logger.WithFields(map[string]interface{}{
		"service":         exc.Service,
		"module":          exc.Module,
		"method":          exc.Method,
		"exception_level": exc.Level,
		"request_id":      exc.RequestID,
	}).Debug("Persisting exception")

	return r.db.WithContext(ctx).Create(exc).Error
}

// Search lists exceptions newest first.
func (r *ExceptionRepository) Search(ctx context.Context, options ExceptionSearchOptions) ([]model.Exception, error) {
	query := r.db.WithContext(ctx).Model(&model.Exception{})

	if options.Level != nil {
		query = query.Where("level = ?", *options.Level)
	}

	query = query.Order("created_at DESC, id DESC")

	if options.Limit > 0 {
		query = query.Limit(options.Limit)
	}
	if options.Offset > 0 {
		query = query.Offset(options.Offset)
	}

	var exceptions []model.Exception
	if err := query.Find(&exceptions).Error; err != nil {
		return nil, err
	}

	return exceptions, nil
}
