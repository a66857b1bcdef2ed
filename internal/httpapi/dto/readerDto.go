package dto

import "booklibrary/internal/httpapi/models"

// CreateReaderRequest used for POST /api/v1/readers. The id must be absent.
type CreateReaderRequest struct {
	ID   *int64 `json:"id,omitempty"`
	Name string `json:"name" binding:"required"`
}

// ReaderResponse DTO for responses
type ReaderResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ReaderWithBooksResponse lists a reader together with the books they hold.
type ReaderWithBooksResponse struct {
	Reader ReaderResponse `json:"reader"`
	Books  []BookResponse `json:"books"`
}

func FromReaderModel(r models.Reader) ReaderResponse {
	return ReaderResponse{
		ID:   r.ID,
		Name: r.Name,
	}
}

func FromReaderModels(readers []models.Reader) []ReaderResponse {
	resp := make([]ReaderResponse, 0, len(readers))
	for _, r := range readers {
		resp = append(resp, FromReaderModel(r))
	}
	return resp
}
