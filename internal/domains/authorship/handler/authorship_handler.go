package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"userbook-backend/internal/domains/authorship"
	"userbook-backend/internal/shared/response"
	"userbook-backend/pkg/logger"
)

type AuthorshipHandler struct {
	service authorship.Service
}

func NewAuthorshipHandler(service authorship.Service) *AuthorshipHandler {
	return &AuthorshipHandler{service: service}
}

// AuthorsOfBook handles GET /rest/authors/:bookId. An unknown book id is an
// empty list, never a 404.
func (h *AuthorshipHandler) AuthorsOfBook(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid book id")
		return
	}

	ids, err := h.service.AuthorsOfBook(c.Request.Context(), bookID)
	if err != nil {
		logger.Error("authors lookup failed", err)
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, ids)
}

// BooksOfUser handles GET /rest/books/:userId. Symmetric to AuthorsOfBook.
func (h *AuthorshipHandler) BooksOfUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	ids, err := h.service.BooksOfUser(c.Request.Context(), userID)
	if err != nil {
		logger.Error("books lookup failed", err)
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, ids)
}
