package web

import (
	"net/http"
	"strconv"

	"github.com/vbonduro/shoptime/internal/domain"
)

const (
	titleProducts = "All products"
	titleAbout    = "About us | ShopTime"
	titleNotFound = "Product not found"
)

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	view, err := s.service.GetListing(r.Context())
	if err != nil {
		s.serverError(w, r, "list products", err)
		return
	}

	if err := s.renderPage(w, http.StatusOK,
		map[string]any{"PageTitle": titleProducts, "Items": view.Items, "Path": "/"},
		"pages/products.html", "partials/item_card.html",
	); err != nil {
		s.logger.Error("render page failed", "page", "products", "error", err)
	}
}

func (s *Server) handleGetProductDetail(w http.ResponseWriter, r *http.Request) {
	// An id that is not a number cannot match any item.
	id, err := parseID(r)
	if err != nil {
		s.renderNotFound(w)
		return
	}

	view, err := s.service.GetDetail(r.Context(), id)
	if err != nil {
		s.serverError(w, r, "get product", err)
		return
	}
	if view == nil {
		s.renderNotFound(w)
		return
	}

	if err := s.renderPage(w, http.StatusOK,
		map[string]any{
			"PageTitle":    view.Item.Name,
			"Item":         view.Item,
			"Path":         productPath(view.Item),
			"PreviousPage": previousPage(r),
		},
		"pages/product_detail.html",
	); err != nil {
		s.logger.Error("render page failed", "page", "product_detail", "error", err)
	}
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	view, err := s.service.GetAboutAggregate(r.Context())
	if err != nil {
		s.serverError(w, r, "about aggregate", err)
		return
	}

	if err := s.renderPage(w, http.StatusOK,
		map[string]any{"PageTitle": titleAbout, "TopItems": view.TopItems, "Path": "/about"},
		"pages/about.html", "partials/item_card.html",
	); err != nil {
		s.logger.Error("render page failed", "page", "about", "error", err)
	}
}

func (s *Server) renderNotFound(w http.ResponseWriter) {
	if err := s.renderPage(w, http.StatusNotFound,
		map[string]any{"PageTitle": titleNotFound, "Path": ""},
		"pages/not_found.html",
	); err != nil {
		s.logger.Error("render page failed", "page", "not_found", "error", err)
	}
}

// parseID extracts the {id} path variable and returns it as int64.
func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func productPath(item *domain.Item) string {
	return "/products/" + strconv.FormatInt(item.ID, 10)
}

// previousPage is the page the visitor came from, or the catalog root.
func previousPage(r *http.Request) string {
	if ref := r.Referer(); ref != "" {
		return ref
	}
	return "/"
}
