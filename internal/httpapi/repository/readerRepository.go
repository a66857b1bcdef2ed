package repository

import (
	"context"
	"fmt"

	"booklibrary/internal/httpapi/models"

	"gorm.io/gorm"
)

type ReaderRepository interface {
	FindAll(ctx context.Context) ([]models.Reader, error)
	FindByID(ctx context.Context, id int64) (*models.Reader, error)
	Create(ctx context.Context, reader *models.Reader) error
	FindAllWithBooks(ctx context.Context) ([]models.Reader, error)
}

type readerRepository struct {
	db *gorm.DB
}

func NewReaderRepository(db *gorm.DB) ReaderRepository {
	return &readerRepository{db: db}
}

func (r *readerRepository) FindAll(ctx context.Context) ([]models.Reader, error) {
	var readers []models.Reader
	if err := r.db.WithContext(ctx).Order("id").Find(&readers).Error; err != nil {
		return nil, fmt.Errorf("find all readers: %w", err)
	}
	return readers, nil
}

func (r *readerRepository) FindByID(ctx context.Context, id int64) (*models.Reader, error) {
	var rd models.Reader
	if err := r.db.WithContext(ctx).First(&rd, id).Error; err != nil {
		return nil, err
	}
	return &rd, nil
}

func (r *readerRepository) Create(ctx context.Context, reader *models.Reader) error {
	if err := r.db.WithContext(ctx).Create(reader).Error; err != nil {
		return fmt.Errorf("create reader: %w", err)
	}
	return nil
}

func (r *readerRepository) FindAllWithBooks(ctx context.Context) ([]models.Reader, error) {
	var readers []models.Reader
	if err := r.db.WithContext(ctx).
		Preload("Books").
		Order("id").
		Find(&readers).Error; err != nil {
		return nil, fmt.Errorf("find readers with books: %w", err)
	}
	return readers, nil
}
