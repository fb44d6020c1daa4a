package validate

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestValidateFile_JSON_Auto_OK(t *testing.T) {
	path := writeTemp(t, "ohsushiCart.json",
		`[{"name":"Sushi Roll","price":150,"quantity":5},{"name":"Ramen","price":250,"quantity":1}]`)

	var out bytes.Buffer
	summary, err := ValidateFile(context.Background(), NewCartValidator(), path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "2 valid / 0 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	if !strings.Contains(out.String(), `"name":"Sushi Roll"`) {
		t.Fatalf("canonical output missing item: %s", out.String())
	}
}

func TestValidateFile_JSONL_Auto_Mixed(t *testing.T) {
	path := writeTemp(t, "items.jsonl",
		`{"name":"Sushi Roll","price":150,"quantity":1}`+"\n"+
			`{"name":"Ramen","price":-5,"quantity":1}`+"\n"+
			`{"name":"Gyoza","price":90,"quantity":3}`+"\n")

	var out bytes.Buffer
	summary, err := ValidateFile(context.Background(), NewCartValidator(), path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "2 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
}

func TestValidateFile_JSON_Invalid(t *testing.T) {
	path := writeTemp(t, "bad.json", `[{"name":"Sushi Roll","price":150,"quantity":1,"extra":true}]`)

	var out bytes.Buffer
	summary, err := ValidateFile(context.Background(), NewCartValidator(), path, FormatJSON, &out)
	if err == nil {
		t.Fatalf("expected error for unknown field")
	}
	if summary != "0 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	if out.Len() != 0 {
		t.Fatalf("nothing must be written for invalid input, got %q", out.String())
	}
}

func TestValidateFile_MissingFile(t *testing.T) {
	_, err := ValidateFile(context.Background(), NewCartValidator(), filepath.Join(t.TempDir(), "nope.json"), FormatAuto, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "open file") {
		t.Fatalf("want open file error, got %v", err)
	}
}

func TestValidateFile_UnsupportedFormat(t *testing.T) {
	path := writeTemp(t, "x.json", `[]`)
	if _, err := ValidateFile(context.Background(), NewCartValidator(), path, InputFormat("xml"), &bytes.Buffer{}); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}
