package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tsawler/outliner/config"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/outline"
)

func testServer() *Server {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(config.Default(), log, nil)
}

func testFragments() []model.TextFragment {
	frag := func(text string, size float64, bold bool, page int, y float64) model.TextFragment {
		return model.TextFragment{
			Text:     text,
			Box:      model.NewRect(72, y, 400, y+size),
			FontSize: size,
			Bold:     bold,
			Page:     page,
		}
	}
	return []model.TextFragment{
		frag("Operations Manual", 28, true, 0, 100),
		frag("1. Safety", 18, true, 0, 200),
		frag("Ordinary body text about safety procedures.", 12, false, 0, 230),
		frag("2. Maintenance", 18, true, 0, 300),
		frag("More ordinary body text.", 12, false, 0, 330),
	}
}

func postFragments(t *testing.T, s *Server, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/v1/outline/fragments", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/healthz", nil)
	rec := httptest.NewRecorder()
	testServer().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestOutlineFragmentsFlat(t *testing.T) {
	rec := postFragments(t, testServer(), fragmentsRequest{Fragments: testFragments()})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var flat outline.FlatOutline
	if err := json.Unmarshal(rec.Body.Bytes(), &flat); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if flat.Title != "Operations Manual" {
		t.Errorf("title = %q", flat.Title)
	}
	if len(flat.Outline) != 3 {
		t.Errorf("got %d entries, want 3: %+v", len(flat.Outline), flat.Outline)
	}
}

func TestOutlineFragmentsHierarchical(t *testing.T) {
	rec := postFragments(t, testServer(), fragmentsRequest{
		Fragments: testFragments(),
		Format:    "hierarchical",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var root outline.Root
	if err := json.Unmarshal(rec.Body.Bytes(), &root); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	// The title heading is excluded from the tree.
	if len(root.Children) != 2 {
		t.Errorf("got %d top-level nodes, want 2", len(root.Children))
	}
}

func TestOutlineFragmentsBadFormat(t *testing.T) {
	rec := postFragments(t, testServer(), fragmentsRequest{
		Fragments: testFragments(),
		Format:    "xml",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestOutlineFragmentsBadBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/outline/fragments", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()
	testServer().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestOutlineUploadHTML(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "doc.html")
	if err != nil {
		t.Fatal(err)
	}
	io.WriteString(fw, `<html><body>
<h1>Style Guide</h1>
<h1>1. Voice</h1>
<p>Write the way people actually speak, in plain sentences.</p>
<h1>2. Grammar</h1>
</body></html>`)
	mw.WriteField("format", "flat")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/outline", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	testServer().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var flat outline.FlatOutline
	if err := json.Unmarshal(rec.Body.Bytes(), &flat); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if flat.Title != "Style Guide" {
		t.Errorf("title = %q", flat.Title)
	}
}

func TestOutlineUploadUnsupportedType(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("file", "doc.exe")
	io.WriteString(fw, "binary junk")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/outline", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	testServer().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
