package notify

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestAppendLeadLog(t *testing.T) {
	chdir(t, t.TempDir())

	body := []byte(`{"lead_id":55,"full_name":"Ана","phone":"+373","location_id":1,"created_at":"2026-08-30T10:00:00"}`)
	if err := appendLeadLog(body); err != nil {
		t.Fatalf("appendLeadLog: %v", err)
	}

	data, err := os.ReadFile(filepath.Join("logs", "leads.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, "lead_id=55") || !strings.Contains(line, "Ана") {
		t.Errorf("log line = %q", line)
	}
}

func TestAppendLeadLogRejectsGarbage(t *testing.T) {
	chdir(t, t.TempDir())
	if err := appendLeadLog([]byte("not json")); err == nil {
		t.Fatal("want error for malformed payload")
	}
}
