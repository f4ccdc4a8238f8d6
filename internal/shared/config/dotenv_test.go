package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	return path
}

func TestLoadEnvFilesParsesPairs(t *testing.T) {
	path := writeEnvFile(t, "DOTENV_TEST_A=plain\nexport DOTENV_TEST_B=\"quoted\"\n# comment\nnot-a-pair\n")
	t.Setenv("DOTENV_TEST_A", "")
	os.Unsetenv("DOTENV_TEST_A")
	t.Setenv("DOTENV_TEST_B", "")
	os.Unsetenv("DOTENV_TEST_B")

	loadEnvFiles(path)

	if got := os.Getenv("DOTENV_TEST_A"); got != "plain" {
		t.Fatalf("expected plain value, got %q", got)
	}
	if got := os.Getenv("DOTENV_TEST_B"); got != "quoted" {
		t.Fatalf("expected quotes stripped, got %q", got)
	}
}

func TestLoadEnvFilesDoesNotOverrideEnvironment(t *testing.T) {
	path := writeEnvFile(t, "DOTENV_TEST_C=from-file\n")
	t.Setenv("DOTENV_TEST_C", "from-env")

	loadEnvFiles(path)

	if got := os.Getenv("DOTENV_TEST_C"); got != "from-env" {
		t.Fatalf("expected environment to win, got %q", got)
	}
}

func TestLoadEnvFilesMissingFile(t *testing.T) {
	loadEnvFiles(filepath.Join(t.TempDir(), "absent.env"))
}
