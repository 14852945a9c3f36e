package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/outliner"
	"github.com/tsawler/outliner/model"
)

// formatFlat and formatHierarchical select the response shape.
const (
	formatFlat         = "flat"
	formatHierarchical = "hierarchical"
)

// handleOutline accepts a multipart document upload and returns its
// outline. The "format" form value selects flat (default) or
// hierarchical output.
func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	format, err := outputFormat(r.FormValue("format"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".pdf", ".html", ".htm":
	default:
		jsonError(w, fmt.Sprintf("unsupported file type: %s", ext), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	// The extractors work on files, so spill the upload to disk.
	tmp, err := os.CreateTemp("", "outline-*"+ext)
	if err != nil {
		jsonError(w, "failed to store upload", http.StatusInternalServerError)
		return
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		jsonError(w, "failed to store upload", http.StatusInternalServerError)
		return
	}
	tmp.Close()

	s.respondOutline(w, r, outliner.Open(tmp.Name()), format)
}

// fragmentsRequest is the body for POST /v1/outline/fragments.
type fragmentsRequest struct {
	Fragments []model.TextFragment `json:"fragments"`
	Format    string               `json:"format,omitempty"`
}

// handleOutlineFragments builds an outline from pre-extracted fragments
// supplied as JSON, for callers with their own extraction front end.
func (s *Server) handleOutlineFragments(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	var req fragmentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	format, err := outputFormat(req.Format)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.respondOutline(w, r, outliner.FromFragments(req.Fragments), format)
}

// respondOutline runs the shared pipeline tail and writes the response.
func (s *Server) respondOutline(w http.ResponseWriter, r *http.Request, o *outliner.Outliner, format string) {
	o = o.
		LineTolerance(s.cfg.LineTolerance).
		Zones(s.cfg.MinRight, s.cfg.MaxBottom).
		WithContext(r.Context())
	if s.predictor != nil {
		o = o.WithPredictor(s.predictor)
	}

	var result any
	var err error
	if format == formatHierarchical {
		result, err = o.Hierarchy()
	} else {
		result, err = o.Flat()
	}
	if err != nil {
		s.log.Error("outline failed", "error", err)
		jsonError(w, "outline extraction failed: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// outputFormat validates the requested format, defaulting to flat.
func outputFormat(v string) (string, error) {
	switch v {
	case "", formatFlat:
		return formatFlat, nil
	case formatHierarchical:
		return formatHierarchical, nil
	default:
		return "", fmt.Errorf("unknown format %q (want %q or %q)", v, formatFlat, formatHierarchical)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}
