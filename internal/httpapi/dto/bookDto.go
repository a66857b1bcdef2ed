package dto

import "booklibrary/internal/httpapi/models"

// CreateBookRequest used for POST /api/v1/books. The id must be absent, the
// store assigns it.
type CreateBookRequest struct {
	ID     *int64 `json:"id,omitempty"`
	Name   string `json:"name" binding:"required"`
	Author string `json:"author" binding:"required"`
}

// BookResponse DTO for responses
type BookResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Author   string `json:"author"`
	ReaderID *int64 `json:"reader_id,omitempty"`
}

// BookWithReaderResponse pairs a borrowed book with the reader holding it.
type BookWithReaderResponse struct {
	Book   BookResponse   `json:"book"`
	Reader ReaderResponse `json:"reader"`
}

func FromBookModel(b models.Book) BookResponse {
	return BookResponse{
		ID:       b.ID,
		Name:     b.Name,
		Author:   b.Author,
		ReaderID: b.ReaderID,
	}
}

func FromBookModels(books []models.Book) []BookResponse {
	resp := make([]BookResponse, 0, len(books))
	for _, b := range books {
		resp = append(resp, FromBookModel(b))
	}
	return resp
}
