package handler

import (
	"context"
	"net/http"

	"booklibrary/internal/httpapi/dto"
	"booklibrary/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type ReaderHandler struct {
	svc service.LibraryService
}

func NewReaderHandler(svc service.LibraryService) *ReaderHandler {
	return &ReaderHandler{svc: svc}
}

func (h *ReaderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/books", h.ListWithBooks)
	rg.GET("/:reader_id/books", h.BorrowedBooks)
}

func (h *ReaderHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	readers, err := h.svc.FindAllReaders(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromReaderModels(readers))
}

func (h *ReaderHandler) Create(c *gin.Context) {
	var req dto.CreateReaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body should not contain reader id value"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	reader, err := h.svc.AddReader(ctx, req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromReaderModel(*reader))
}

func (h *ReaderHandler) BorrowedBooks(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	books, err := h.svc.BorrowedBooksOfReader(ctx, c.Param("reader_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromBookModels(books))
}

func (h *ReaderHandler) ListWithBooks(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	readers, err := h.svc.ReadersWithBooks(ctx)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]dto.ReaderWithBooksResponse, 0, len(readers))
	for _, r := range readers {
		resp = append(resp, dto.ReaderWithBooksResponse{
			Reader: dto.FromReaderModel(r),
			Books:  dto.FromBookModels(r.Books),
		})
	}
	c.JSON(http.StatusOK, resp)
}
