package repository

import (
	"context"
	"fmt"

	"booklibrary/internal/httpapi/models"

	"gorm.io/gorm"
)

type BookRepository interface {
	FindAll(ctx context.Context) ([]models.Book, error)
	FindByID(ctx context.Context, id int64) (*models.Book, error)
	Create(ctx context.Context, book *models.Book) error
	FindByReaderID(ctx context.Context, readerID int64) ([]models.Book, error)
	FindAllBorrowed(ctx context.Context) ([]models.Book, error)
	Borrow(ctx context.Context, bookID, readerID int64) (int64, error)
	Return(ctx context.Context, bookID int64) (int64, error)
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) FindAll(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	if err := r.db.WithContext(ctx).Order("id").Find(&books).Error; err != nil {
		return nil, fmt.Errorf("find all books: %w", err)
	}
	return books, nil
}

func (r *bookRepository) FindByID(ctx context.Context, id int64) (*models.Book, error) {
	var b models.Book
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookRepository) Create(ctx context.Context, book *models.Book) error {
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	// GORM populates book.ID
	return nil
}

func (r *bookRepository) FindByReaderID(ctx context.Context, readerID int64) ([]models.Book, error) {
	var books []models.Book
	if err := r.db.WithContext(ctx).
		Where("reader_id = ?", readerID).
		Order("id").
		Find(&books).Error; err != nil {
		return nil, fmt.Errorf("find books by reader: %w", err)
	}
	return books, nil
}

func (r *bookRepository) FindAllBorrowed(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	if err := r.db.WithContext(ctx).
		Preload("Reader").
		Where("reader_id IS NOT NULL").
		Order("id").
		Find(&books).Error; err != nil {
		return nil, fmt.Errorf("find borrowed books: %w", err)
	}
	return books, nil
}

// Borrow links the book to the reader only if no link exists yet. The returned
// count is 0 when the book was already borrowed, so concurrent borrow attempts
// cannot both succeed.
func (r *bookRepository) Borrow(ctx context.Context, bookID, readerID int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Where("id = ? AND reader_id IS NULL", bookID).
		Update("reader_id", readerID)
	if result.Error != nil {
		return 0, fmt.Errorf("borrow book: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Return clears the reader link only if one exists. The returned count is 0
// when the book was already in the library.
func (r *bookRepository) Return(ctx context.Context, bookID int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Where("id = ? AND reader_id IS NOT NULL", bookID).
		Update("reader_id", nil)
	if result.Error != nil {
		return 0, fmt.Errorf("return book: %w", result.Error)
	}
	return result.RowsAffected, nil
}
