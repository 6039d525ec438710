package web

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/vbonduro/shoptime/internal/imagestore"
)

func (s *Server) handleGetImage(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	reader, mimeType, err := s.images.Get(r.Context(), name)
	if errors.Is(err, imagestore.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.serverError(w, r, "get image", err)
		return
	}
	defer closeWithLog(reader, "image reader", s.logger)

	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := io.Copy(w, reader); err != nil {
		s.logger.Error("write image failed", "name", name, "error", err)
	}
}

// closeWithLog closes c and logs any error, using label to identify the resource.
func closeWithLog(c io.Closer, label string, logger *slog.Logger) {
	if err := c.Close(); err != nil {
		logger.Error("failed to close resource", "label", label, "error", err)
	}
}
