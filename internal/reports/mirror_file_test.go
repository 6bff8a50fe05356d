package reports

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileMirrorRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage", "reports.json")
	ctx := context.Background()

	base := time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC)
	reports := []Report{
		{
			ID:          "r-2",
			Title:       "张三的简历",
			Type:        TypeBeautifiedHTML,
			CreatedAt:   base.Add(time.Hour),
			UpdatedAt:   base.Add(2 * time.Hour),
			Resume:      "姓名：张三",
			HTMLContent: "<html><body>张三</body></html>",
			ViewCount:   3,
		},
		{
			ID:             "r-1",
			Title:          "前端开发工程师",
			Type:           TypeAnalysis,
			CreatedAt:      base,
			UpdatedAt:      base,
			JobDescription: "岗位：前端开发工程师",
			Resume:         "简历内容",
			Analysis:       "# 分析\n内容",
		},
	}

	if err := NewFileMirror(path).SaveAll(ctx, reports); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}

	// A fresh mirror stands in for a fresh process.
	loaded, err := NewFileMirror(path).LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(loaded) != len(reports) {
		t.Fatalf("expected %d records, got %d", len(reports), len(loaded))
	}
	for i := range reports {
		if !loaded[i].CreatedAt.Equal(reports[i].CreatedAt) || !loaded[i].UpdatedAt.Equal(reports[i].UpdatedAt) {
			t.Fatalf("record %d: timestamps not preserved", i)
		}
		loaded[i].CreatedAt = reports[i].CreatedAt
		loaded[i].UpdatedAt = reports[i].UpdatedAt
		if loaded[i] != reports[i] {
			t.Fatalf("record %d not content-equal after round trip:\n got %+v\nwant %+v", i, loaded[i], reports[i])
		}
	}
}

func TestFileMirrorMissingFileLoadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "reports.json")

	loaded, err := NewFileMirror(path).LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty collection, got %d records", len(loaded))
	}
}

func TestFileMirrorCorruptFileLoadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	loaded, err := NewFileMirror(path).LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty collection for corrupt file, got %d records", len(loaded))
	}
}

func TestFileMirrorCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	path := filepath.Join(dir, "reports.json")

	if err := NewFileMirror(path).SaveAll(context.Background(), []Report{}); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file created: %v", err)
	}
}
