// Package pages serves the static admin and public HTML pages embedded in
// the binary. No templating: pages are returned byte-for-byte.
package pages

import (
	"embed"
	"io/fs"
	"log"
	"net/http"
)

//go:embed web
var webFS embed.FS

// Handler serves the embedded pages.
type Handler struct {
	fs fs.FS
}

// NewHandler creates a Handler backed by the embedded page tree.
func NewHandler() *Handler {
	sub, err := fs.Sub(webFS, "web")
	if err != nil {
		// The embed is part of the binary; a missing subtree is a build defect.
		panic(err)
	}
	return newHandler(sub)
}

func newHandler(fsys fs.FS) *Handler {
	return &Handler{fs: fsys}
}

// Main serves the public main page.
func (h *Handler) Main(w http.ResponseWriter, r *http.Request) {
	h.serve(w, "mainpage.html", http.StatusInternalServerError, "Could not load main page")
}

// Login serves the admin login page.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	h.serve(w, "admin.html", http.StatusInternalServerError, "Could not load login page")
}

// Fallback is the catch-all for unmatched routes. GET requests receive the
// admin page with a 200, matching the SPA-style routing of the admin UI;
// other methods get a plain 404.
func (h *Handler) Fallback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	h.serve(w, "admin.html", http.StatusNotFound, "Page not found")
}

// Assets returns a file server over the embedded tree for scripts, styles
// and images referenced by the pages.
func (h *Handler) Assets() http.Handler {
	return http.FileServer(http.FS(h.fs))
}

func (h *Handler) serve(w http.ResponseWriter, name string, failStatus int, failMsg string) {
	content, err := fs.ReadFile(h.fs, name)
	if err != nil {
		log.Printf("pages: read %s failed: %v", name, err)
		http.Error(w, failMsg, failStatus)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(content)
}
