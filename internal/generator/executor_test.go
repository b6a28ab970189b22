package generator

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExecute_WritesFiles(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "hello.txt")

	var buf bytes.Buffer
	ops := []Operation{
		&WriteFileOp{Path: path, Content: []byte("hello"), Mode: 0644},
	}

	err := Execute(context.Background(), ops, ExecuteOptions{Writer: &buf})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil || string(content) != "hello" {
		t.Error("hello.txt not written correctly")
	}

	if !strings.Contains(buf.String(), "hello.txt") {
		t.Errorf("expected output to mention hello.txt, got %q", buf.String())
	}
}

func TestExecute_DryRunTouchesNothing(t *testing.T) {
	tempDir := t.TempDir()
	dirPath := filepath.Join(tempDir, "proj")
	filePath := filepath.Join(dirPath, "hello.txt")

	var buf bytes.Buffer
	ops := []Operation{
		&MkdirOp{Path: dirPath},
		&WriteFileOp{Path: filePath, Content: []byte("hello"), Mode: 0644},
	}

	err := Execute(context.Background(), ops, ExecuteOptions{DryRun: true, Writer: &buf})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if _, err := os.Stat(dirPath); !os.IsNotExist(err) {
		t.Error("dry run must not create directories")
	}

	if !strings.Contains(buf.String(), "[DRY RUN]") {
		t.Errorf("expected dry run markers in output, got %q", buf.String())
	}
}

func TestExecute_ValidationConflict(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "existing.txt")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	ops := []Operation{
		&WriteFileOp{Path: path, Content: []byte("new"), Mode: 0644},
	}

	err := Execute(context.Background(), ops, ExecuteOptions{Writer: &bytes.Buffer{}})
	if err == nil {
		t.Fatal("expected validation to fail for existing file")
	}

	// Force skips the conflict check
	err = Execute(context.Background(), ops, ExecuteOptions{Force: true, Writer: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("Execute with Force failed: %v", err)
	}

	content, _ := os.ReadFile(path)
	if string(content) != "new" {
		t.Error("file should have been overwritten with Force")
	}
}

func TestWriteFileOp_NilContent(t *testing.T) {
	op := &WriteFileOp{Path: filepath.Join(t.TempDir(), "f.txt"), Content: nil, Mode: 0644}
	if err := op.Validate(context.Background(), false); err == nil {
		t.Fatal("expected nil content to be rejected")
	}
}

func TestMkdirOp_ExistingFileConflict(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "occupied")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	op := &MkdirOp{Path: path}
	if err := op.Validate(context.Background(), false); err == nil {
		t.Fatal("expected validation to fail when path is a regular file")
	}
}
