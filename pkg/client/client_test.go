package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTasksQueryParams(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"ok":true,"data":[{"id":"T1","title":"Watering","task_date":"2024-02-01","plot_id":"P1","status":"Proceed"}]}`))
	}))
	defer srv.Close()

	proposed := true
	c := New(srv.URL, "sekrit")
	tasks, err := c.Tasks(context.Background(), TaskQuery{
		PlotID:      "P1",
		DateFrom:    "2024-02-01",
		DateTo:      "2024-02-29",
		Status:      "Proceed",
		HasProposed: &proposed,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != "T1" {
		t.Fatalf("unexpected tasks: %v", tasks)
	}
	if gotPath != "/api/tasks" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotAuth != "Bearer sekrit" {
		t.Fatalf("unexpected auth header: %s", gotAuth)
	}
	for key, want := range map[string]string{
		"plot_id":      "P1",
		"date_from":    "2024-02-01",
		"date_to":      "2024-02-29",
		"status":       "Proceed",
		"has_proposed": "true",
	} {
		if got := gotQuery[key]; len(got) != 1 || got[0] != want {
			t.Fatalf("param %s = %v, want %s", key, got, want)
		}
	}
}

func TestPlotsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true,"data":[{"id":"P1","name":"North Field"},{"id":"P2","name":"East Terrace"}]}`))
	}))
	defer srv.Close()

	plots, err := New(srv.URL, "").Plots(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plots) != 2 || plots[0].Name != "North Field" {
		t.Fatalf("unexpected plots: %v", plots)
	}
}

func TestRefusedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":false}`))
	}))
	defer srv.Close()

	if _, err := New(srv.URL, "").Workers(context.Background()); err == nil {
		t.Fatalf("expected error for ok=false envelope")
	}
}

func TestHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	if _, err := New(srv.URL, "").Plots(context.Background()); err == nil {
		t.Fatalf("expected error for 401 response")
	}
}

func TestSuggestionsWrapper(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/suggestions" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"suggestions":[{"task_id":"T1","task_name":"Watering","type":"RESCHEDULE","severity":"HIGH"}]}`))
	}))
	defer srv.Close()

	got, err := New(srv.URL, "").Suggestions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Type != "RESCHEDULE" {
		t.Fatalf("unexpected suggestions: %v", got)
	}
}
