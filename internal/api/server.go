package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vbonduro/shoptime/internal/domain"
	"github.com/vbonduro/shoptime/internal/service"
)

const (
	errServer   = "server error"
	errNotFound = "item not found"
)

// Server is the JSON API. It implements http.Handler and is mounted by the
// web server under /api/.
type Server struct {
	router  *gin.Engine
	service *service.CatalogService
	logger  *slog.Logger
}

func NewServer(svc *service.CatalogService, logger *slog.Logger) *Server {
	router := gin.New()
	router.Use(recovery(logger))

	s := &Server{
		router:  router,
		service: svc,
		logger:  logger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/health", s.handleHealth())
		v1.GET("/items", s.handleListItems())
		v1.GET("/items/:id", s.handleGetItem())
		v1.GET("/about", s.handleAbout())
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// itemResponse is the wire form of domain.Item. Price is a decimal string
// with two fractional digits.
type itemResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       string    `json:"price"`
	Category    *string   `json:"category"`
	ImageURL    *string   `json:"imageUrl"`
	Size        *string   `json:"size"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toItemResponse(item *domain.Item) itemResponse {
	return itemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price.StringFixed(2),
		Category:    item.Category,
		ImageURL:    item.ImageURL,
		Size:        item.Size,
		CreatedAt:   item.CreatedAt,
	}
}

func toItemResponses(items []*domain.Item) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}
	return out
}

func (s *Server) handleHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func (s *Server) handleListItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := s.service.GetListing(c.Request.Context())
		if err != nil {
			s.serverError(c, "list items", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": toItemResponses(view.Items)})
	}
}

func (s *Server) handleGetItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": errNotFound})
			return
		}

		view, err := s.service.GetDetail(c.Request.Context(), id)
		if err != nil {
			s.serverError(c, "get item", err)
			return
		}
		if view == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": errNotFound})
			return
		}
		c.JSON(http.StatusOK, gin.H{"item": toItemResponse(view.Item)})
	}
}

func (s *Server) handleAbout() gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := s.service.GetAboutAggregate(c.Request.Context())
		if err != nil {
			s.serverError(c, "about aggregate", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"topItems": toItemResponses(view.TopItems)})
	}
}

// serverError logs err and answers with a generic 500 that carries no detail.
func (s *Server) serverError(c *gin.Context, op string, err error) {
	s.logger.Error("api request failed", "op", op, "path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": errServer})
}
