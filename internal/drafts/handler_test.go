package drafts_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Tpupu/resume-builder/internal/drafts"
	"github.com/Tpupu/resume-builder/resume/model"
)

func newDraftsRouter() (*gin.Engine, *drafts.MemoryRepo) {
	gin.SetMode(gin.TestMode)
	repo := drafts.NewMemoryRepo()
	r := gin.New()
	api := r.Group("/api/v1")
	drafts.NewHandler(repo).RegisterRoutes(api)
	return r, repo
}

func seedDraft(t *testing.T, repo *drafts.MemoryRepo, id string) drafts.Draft {
	t.Helper()
	res := model.Resume{FullName: "Dana Fox", Email: "dana@example.com", PageLimit: 1}
	res.Normalize()
	d := drafts.Draft{
		ID:        id,
		FullName:  res.FullName,
		Email:     res.Email,
		Template:  res.Template,
		Resume:    res,
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), d); err != nil {
		t.Fatalf("seed draft: %v", err)
	}
	return d
}

func TestCreateDraft(t *testing.T) {
	router, _ := newDraftsRouter()

	body, _ := json.Marshal(model.Resume{FullName: "Dana Fox", Email: "dana@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/drafts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created struct {
		ID       string `json:"id"`
		Template string `json:"template"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated draft id")
	}
	if created.Template != model.TemplateClassic {
		t.Fatalf("expected classic fallback, got %q", created.Template)
	}
}

func TestCreateDraftRequiresNameAndEmail(t *testing.T) {
	router, _ := newDraftsRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/drafts", strings.NewReader(`{"fullName":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "validation_error") {
		t.Fatalf("expected standardized error body, got %s", resp.Body.String())
	}
}

func TestGetDraftNotFound(t *testing.T) {
	router, _ := newDraftsRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/drafts/nope", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestListDraftsNewestFirst(t *testing.T) {
	router, repo := newDraftsRouter()
	seedDraft(t, repo, "d1")
	seedDraft(t, repo, "d2")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/drafts?limit=1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var out struct {
		Drafts []struct {
			ID string `json:"id"`
		} `json:"drafts"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out.Drafts) != 1 || out.Drafts[0].ID != "d2" {
		t.Fatalf("expected newest draft only, got %+v", out.Drafts)
	}
}

func TestDraftPDFDownload(t *testing.T) {
	router, repo := newDraftsRouter()
	d := seedDraft(t, repo, "d1")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/drafts/"+d.ID+"/pdf", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("unexpected content type: %s", ct)
	}
	if cd := resp.Header().Get("Content-Disposition"); cd != `attachment; filename="resume_preview.pdf"` {
		t.Fatalf("unexpected content disposition: %s", cd)
	}
	if !bytes.HasPrefix(resp.Body.Bytes(), []byte("%PDF-")) {
		t.Fatal("expected PDF body")
	}
}
