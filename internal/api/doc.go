// Package api serves the catalog's read-only JSON API under /api/v1.
// It exposes the same listing, detail and about view models as the HTML pages.
package api
