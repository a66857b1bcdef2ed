package handler

import (
	"context"
	"net/http"
	"time"

	"booklibrary/internal/httpapi/dto"
	"booklibrary/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

const requestTimeout = 5 * time.Second

type BookHandler struct {
	svc service.LibraryService
}

func NewBookHandler(svc service.LibraryService) *BookHandler {
	return &BookHandler{svc: svc}
}

func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/readers", h.ListWithReaders)
	rg.GET("/:book_id/reader", h.CurrentReader)
	rg.POST("/:book_id/readers/:reader_id", h.Borrow)
	rg.DELETE("/:book_id", h.Return)
}

func (h *BookHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	books, err := h.svc.FindAllBooks(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromBookModels(books))
}

func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body should not contain book id value"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	book, err := h.svc.AddBook(ctx, req.Name+"/"+req.Author)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromBookModel(*book))
}

// CurrentReader answers who holds the book; an available book yields an empty
// 200 response.
func (h *BookHandler) CurrentReader(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	reader, err := h.svc.CurrentReaderOfBook(ctx, c.Param("book_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if reader == nil {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, dto.FromReaderModel(*reader))
}

func (h *BookHandler) ListWithReaders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	books, err := h.svc.BooksWithReaders(ctx)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]dto.BookWithReaderResponse, 0, len(books))
	for _, b := range books {
		pair := dto.BookWithReaderResponse{Book: dto.FromBookModel(b)}
		if b.Reader != nil {
			pair.Reader = dto.FromReaderModel(*b.Reader)
		}
		resp = append(resp, pair)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookHandler) Borrow(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.svc.BorrowBook(ctx, c.Param("book_id")+"/"+c.Param("reader_id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *BookHandler) Return(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.svc.ReturnBook(ctx, c.Param("book_id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// writeError maps validation failures to 400 and everything else to 500.
func writeError(c *gin.Context, err error) {
	if service.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
