package handler

import (
	"log"
	"net/http"
	"path"
)

// StaticHandler serves files from a directory and falls back to a single
// document for any path that is not a file, so client-side routes resolve.
type StaticHandler struct {
	root         http.FileSystem
	fallback     string
	ErrorHandler *ErrorHandler
}

// NewStaticHandler serves dir with fallback as the catch-all document
func NewStaticHandler(dir, fallback string, logger *log.Logger) *StaticHandler {
	return &StaticHandler{
		root:         http.Dir(dir),
		fallback:     path.Clean("/" + fallback),
		ErrorHandler: NewErrorHandler(logger),
	}
}

func (s *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + r.URL.Path)
	if name != "/" && s.serveFile(w, r, name) {
		return
	}
	if s.serveFile(w, r, s.fallback) {
		return
	}

	s.ErrorHandler.Logger.Printf("Fallback document %s is missing", s.fallback)
	s.ErrorHandler.SendErrorResponse(w, http.StatusNotFound, "Not found", "NOT_FOUND")
}

// serveFile writes name if it is a regular file. Directories are skipped.
func (s *StaticHandler) serveFile(w http.ResponseWriter, r *http.Request, name string) bool {
	f, err := s.root.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	return true
}
