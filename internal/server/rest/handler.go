package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/bookshop/internal/common"
)

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type reviewRequest struct {
	Review string `json:"review" binding:"required"`
}

func (s *Server) registerUser(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	s.logger.Info(c.Request.Context(), "Registration request")

	user, err := s.users.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "Registered", "username", user.UserName)
	c.JSON(http.StatusCreated, gin.H{"message": "user registered"})
}

func (s *Server) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	token, err := s.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *Server) listBooks(c *gin.Context) {
	found, err := s.books.List(c.Request.Context(), c.Query("author"), c.Query("title"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, found)
}

func (s *Server) getBookByISBN(c *gin.Context) {
	book, err := s.books.GetByISBN(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

func (s *Server) bookReviews(c *gin.Context) {
	book, reviews, err := s.books.Reviews(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"isbn":    book.ISBN,
		"title":   book.Title,
		"reviews": reviews,
	})
}

func (s *Server) upsertReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "review text required"})
		return
	}

	isbn := c.Param("isbn")
	username := c.GetString(usernameKey)

	if err := s.books.UpsertReview(c.Request.Context(), isbn, username, req.Review); err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "review added/updated", "isbn": isbn, "reviewer": username})
}

func (s *Server) deleteReview(c *gin.Context) {
	isbn := c.Param("isbn")
	username := c.GetString(usernameKey)

	if err := s.books.DeleteReview(c.Request.Context(), isbn, username); err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "review deleted", "isbn": isbn, "reviewer": username})
}

// writeError translates the service sentinels into the caller-visible
// classification. Internal failures are logged here and surfaced as a
// generic 500; the underlying cause never reaches the client.
func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
	case errors.Is(err, common.ErrorUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, common.ErrorAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "username already exists"})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		s.logger.Error(c.Request.Context(), "internal error", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
