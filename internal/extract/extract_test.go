package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

const sampleDocumentXML = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>张三</w:t></w:r></w:p>
    <w:p><w:r><w:t>前端工程师</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestTextFromUpload_DOCX(t *testing.T) {
	data := buildDOCX(t, sampleDocumentXML)

	text, err := TextFromUpload(data, mimeDOCX, "resume.docx")
	if err != nil {
		t.Fatalf("extract docx: %v", err)
	}
	if !strings.Contains(text, "张三") || !strings.Contains(text, "前端工程师") {
		t.Fatalf("unexpected text %q", text)
	}
	if !strings.Contains(text, "\n") {
		t.Fatalf("expected paragraph break preserved, got %q", text)
	}
}

func TestTextFromUpload_ZipDocxNormalizes(t *testing.T) {
	data := buildDOCX(t, sampleDocumentXML)

	if _, err := TextFromUpload(data, "application/zip", "resume.docx"); err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
	if _, err := TextFromUpload(data, "application/octet-stream", "resume.bin"); err != nil {
		t.Fatalf("expected docx to extract from sniffed payload, got error: %v", err)
	}
}

func TestTextFromUpload_RealZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = TextFromUpload(buf.Bytes(), "application/zip", "notes.zip")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected unsupported type error, got %v", err)
	}
}

func TestTextFromUpload_PlainText(t *testing.T) {
	text, err := TextFromUpload([]byte("  张三的简历\n经验丰富  \n"), "text/plain; charset=utf-8", "resume.txt")
	if err != nil {
		t.Fatalf("extract text: %v", err)
	}
	if text != "张三的简历\n经验丰富" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestTextFromUpload_TxtExtensionFallback(t *testing.T) {
	if _, err := TextFromUpload([]byte("plain resume"), "", "resume.txt"); err != nil {
		t.Fatalf("expected extension fallback to text, got error: %v", err)
	}
}

func TestTextFromUpload_CorruptPDF(t *testing.T) {
	if _, err := TextFromUpload([]byte("%PDF-1.7 not really"), mimePDF, "resume.pdf"); err == nil {
		t.Fatal("expected error for corrupt pdf")
	}
}

func TestTextFromUpload_UnsupportedType(t *testing.T) {
	_, err := TextFromUpload([]byte("<html></html>"), "text/html", "resume.html")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected unsupported type error, got %v", err)
	}
}
