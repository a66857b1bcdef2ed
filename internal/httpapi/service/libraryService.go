package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"booklibrary/internal/httpapi/models"
	"booklibrary/internal/httpapi/repository"

	"gorm.io/gorm"
)

const (
	bookNotFound   = "this book id doesn't exist"
	readerNotFound = "this reader id doesn't exist"
)

type LibraryService interface {
	FindAllBooks(ctx context.Context) ([]models.Book, error)
	FindAllReaders(ctx context.Context) ([]models.Reader, error)
	CurrentReaderOfBook(ctx context.Context, bookID string) (*models.Reader, error)
	BorrowedBooksOfReader(ctx context.Context, readerID string) ([]models.Book, error)
	AddReader(ctx context.Context, name string) (*models.Reader, error)
	AddBook(ctx context.Context, titleAndAuthor string) (*models.Book, error)
	BorrowBook(ctx context.Context, bookAndReaderID string) error
	ReturnBook(ctx context.Context, bookID string) error
	BooksWithReaders(ctx context.Context) ([]models.Book, error)
	ReadersWithBooks(ctx context.Context) ([]models.Reader, error)
}

type libraryService struct {
	bookRepo   repository.BookRepository
	readerRepo repository.ReaderRepository
	logger     *slog.Logger
}

func NewLibraryService(bookRepo repository.BookRepository, readerRepo repository.ReaderRepository, logger *slog.Logger) LibraryService {
	return &libraryService{
		bookRepo:   bookRepo,
		readerRepo: readerRepo,
		logger:     logger,
	}
}

func (s *libraryService) FindAllBooks(ctx context.Context) ([]models.Book, error) {
	return s.bookRepo.FindAll(ctx)
}

func (s *libraryService) FindAllReaders(ctx context.Context) ([]models.Reader, error) {
	return s.readerRepo.FindAll(ctx)
}

// CurrentReaderOfBook returns the reader holding the book, or nil when the
// book is in the library. A link pointing at a missing reader row means the
// store is corrupt; it is logged and surfaced as an invalid-id failure rather
// than masked.
func (s *libraryService) CurrentReaderOfBook(ctx context.Context, bookID string) (*models.Reader, error) {
	if err := ValidateSingleID(bookID); err != nil {
		return nil, err
	}
	id, _ := strconv.ParseInt(strings.TrimSpace(bookID), 10, 64)

	book, err := s.bookRepo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapBookLookupErr(err)
	}
	if !book.Borrowed() {
		return nil, nil
	}

	reader, err := s.readerRepo.FindByID(ctx, *book.ReaderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("book references a missing reader",
				"book_id", book.ID,
				"reader_id", *book.ReaderID)
			return nil, fmt.Errorf("%w: %s", ErrInvalidID, readerNotFound)
		}
		return nil, err
	}
	return reader, nil
}

func (s *libraryService) BorrowedBooksOfReader(ctx context.Context, readerID string) ([]models.Book, error) {
	if err := ValidateSingleID(readerID); err != nil {
		return nil, err
	}
	id, _ := strconv.ParseInt(strings.TrimSpace(readerID), 10, 64)

	if _, err := s.readerRepo.FindByID(ctx, id); err != nil {
		return nil, s.mapReaderLookupErr(err)
	}
	return s.bookRepo.FindByReaderID(ctx, id)
}

func (s *libraryService) AddReader(ctx context.Context, name string) (*models.Reader, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	reader := &models.Reader{Name: strings.TrimSpace(name)}
	if err := s.readerRepo.Create(ctx, reader); err != nil {
		return nil, err
	}
	return reader, nil
}

// AddBook persists a new book from a combined "title/author" input. The book
// starts with no reader link.
func (s *libraryService) AddBook(ctx context.Context, titleAndAuthor string) (*models.Book, error) {
	if err := ValidateNewBookInput(titleAndAuthor); err != nil {
		return nil, err
	}
	parts := strings.SplitN(titleAndAuthor, inputSeparator, 2)
	title, author := parts[0], parts[1]

	if err := ValidateBookTitle(title); err != nil {
		return nil, err
	}
	if err := ValidateName(author); err != nil {
		return nil, err
	}

	book := &models.Book{
		Name:   strings.TrimSpace(title),
		Author: strings.TrimSpace(author),
	}
	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// BorrowBook links a book to a reader from a combined "bookId/readerId" input.
// The link is claimed with a single conditional update, so two concurrent
// borrowers cannot both win; the existence checks before it only produce the
// more specific error messages.
func (s *libraryService) BorrowBook(ctx context.Context, bookAndReaderID string) error {
	if err := ValidateBorrowInput(bookAndReaderID); err != nil {
		return err
	}
	parts := strings.SplitN(bookAndReaderID, inputSeparator, 2)
	bookID, _ := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	readerID, _ := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)

	if _, err := s.bookRepo.FindByID(ctx, bookID); err != nil {
		return s.mapBookLookupErr(err)
	}
	if _, err := s.readerRepo.FindByID(ctx, readerID); err != nil {
		return s.mapReaderLookupErr(err)
	}

	claimed, err := s.bookRepo.Borrow(ctx, bookID, readerID)
	if err != nil {
		return err
	}
	if claimed == 0 {
		return fmt.Errorf("%w: cannot borrow already borrowed book", ErrInvalidID)
	}
	return nil
}

// ReturnBook clears the reader link, failing when the book is already in the
// library. Same conditional-update scheme as BorrowBook.
func (s *libraryService) ReturnBook(ctx context.Context, bookID string) error {
	if err := ValidateSingleID(bookID); err != nil {
		return err
	}
	id, _ := strconv.ParseInt(strings.TrimSpace(bookID), 10, 64)

	if _, err := s.bookRepo.FindByID(ctx, id); err != nil {
		return s.mapBookLookupErr(err)
	}

	cleared, err := s.bookRepo.Return(ctx, id)
	if err != nil {
		return err
	}
	if cleared == 0 {
		return fmt.Errorf("%w: cannot return book, book is already in the library", ErrInvalidID)
	}
	return nil
}

func (s *libraryService) BooksWithReaders(ctx context.Context) ([]models.Book, error) {
	return s.bookRepo.FindAllBorrowed(ctx)
}

func (s *libraryService) ReadersWithBooks(ctx context.Context) ([]models.Reader, error) {
	return s.readerRepo.FindAllWithBooks(ctx)
}

func (s *libraryService) mapBookLookupErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrInvalidID, bookNotFound)
	}
	return err
}

func (s *libraryService) mapReaderLookupErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrInvalidID, readerNotFound)
	}
	return err
}
