package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func runPreview(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDashboardCommand(t *testing.T) {
	out, err := runPreview(t, "dashboard", "--seed", "7", "--timeframe", "day", "--models", "4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			TotalModels       int               `json:"totalModels"`
			ModelsPerformance []json.RawMessage `json:"modelsPerformance"`
			TimeSeriesData    []json.RawMessage `json:"timeSeriesData"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if !resp.Success || resp.Data.TotalModels != 4 || len(resp.Data.ModelsPerformance) != 4 {
		t.Errorf("unexpected dashboard %s", out)
	}
	if len(resp.Data.TimeSeriesData) != 24 {
		t.Errorf("expected 24 hourly points, got %d", len(resp.Data.TimeSeriesData))
	}
}

func TestModelCommand(t *testing.T) {
	out, err := runPreview(t, "model", "abc", "--seed", "3", "-t", "year", "-i", "week")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"id": "abc"`) {
		t.Errorf("expected model id in output")
	}
}

func TestModelCommand_UnsupportedInterval(t *testing.T) {
	if _, err := runPreview(t, "model", "abc", "-t", "day", "-i", "month"); err == nil {
		t.Fatal("expected error for unsupported interval")
	}
}

func TestGridCommand(t *testing.T) {
	out, err := runPreview(t, "grid", "-t", "month", "-i", "week", "--at", "2024-03-31T12:00:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header plus 4 rows, got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[4], "2024-03-31T12:00:00Z") {
		t.Errorf("expected last row to end at --at, got %q", lines[4])
	}
	if !strings.Contains(lines[1], "2024-03-10T12:00:00Z") {
		t.Errorf("expected first row three weeks earlier, got %q", lines[1])
	}
}

func TestSeededDashboardIsReproducible(t *testing.T) {
	a, err := runPreview(t, "dashboard", "--seed", "11", "-n", "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _ := runPreview(t, "dashboard", "--seed", "11", "-n", "3")

	var da, db map[string]any
	json.Unmarshal([]byte(a), &da)
	json.Unmarshal([]byte(b), &db)
	series := func(m map[string]any) any { return m["data"].(map[string]any)["totalInteractions"] }
	if series(da) != series(db) {
		t.Errorf("expected identical totals for the same seed")
	}
}
