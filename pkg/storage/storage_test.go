package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func uploadedFile(t *testing.T, name, content string) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("file", name)
	if err != nil {
		t.Fatalf("failed to build form: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write form: %v", err)
	}
	w.Close()

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("failed to parse form: %v", err)
	}
	return req.MultipartForm.File["file"][0]
}

func TestSaveFile(t *testing.T) {
	base := t.TempDir()
	s, err := NewStorage(base, 1<<20)
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}

	relPath, err := s.SaveFile(uploadedFile(t, "solution.py", "print(42)"), "submissions")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(relPath, "submissions"+string(filepath.Separator)) {
		t.Errorf("expected path under submissions/, got %q", relPath)
	}
	if filepath.Ext(relPath) != ".py" {
		t.Errorf("expected original extension kept, got %q", relPath)
	}

	data, err := os.ReadFile(filepath.Join(base, relPath))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "print(42)" {
		t.Errorf("stored content mismatch: %q", data)
	}

	if err := s.DeleteFile(relPath); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, relPath)); !os.IsNotExist(err) {
		t.Errorf("expected file removed, got %v", err)
	}
}

func TestSaveFileRejectsOversized(t *testing.T) {
	s, err := NewStorage(t.TempDir(), 4)
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	if _, err := s.SaveFile(uploadedFile(t, "big.txt", "too large"), "submissions"); err == nil {
		t.Error("expected oversized file to be rejected")
	}
}
