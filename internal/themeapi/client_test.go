// SPDX-License-Identifier: MIT
package themeapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pastelpanda/chameleon/internal/models"
)

func TestClientCurrent(t *testing.T) {
	record := models.NewDefaultCustomization("acme").Record()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/customization/current" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("Unexpected method %s", r.Method)
		}
		json.NewEncoder(w).Encode(record)
	}))
	defer server.Close()

	got, err := New(server.URL).Current(context.Background())
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if got.OrganizationName != "acme" {
		t.Errorf("Expected acme, got %q", got.OrganizationName)
	}
	if got.Colors.Primary != "#0ea5e9" {
		t.Errorf("Expected factory primary, got %s", got.Colors.Primary)
	}
}

func TestClientTrimsTrailingSlash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "//") {
			t.Errorf("Double slash in path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(models.ThemeRecord{})
	}))
	defer server.Close()

	if _, err := New(server.URL + "/").Current(context.Background()); err != nil {
		t.Fatalf("Current failed: %v", err)
	}
}

func TestClientApplyPreset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/customization/apply-preset" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode body: %v", err)
		}
		if body["name"] != "Ocean Blue" {
			t.Errorf("Expected preset name in body, got %v", body)
		}

		record := models.ThemeRecord{}
		record.Metadata.ThemeName = "Ocean Blue"
		json.NewEncoder(w).Encode(record)
	}))
	defer server.Close()

	record, err := New(server.URL).ApplyPreset(context.Background(), "Ocean Blue")
	if err != nil {
		t.Fatalf("ApplyPreset failed: %v", err)
	}
	if record.Metadata.ThemeName != "Ocean Blue" {
		t.Errorf("Expected theme name, got %q", record.Metadata.ThemeName)
	}
}

func TestClientUpdate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("Unexpected method %s", r.Method)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode body: %v", err)
		}
		if body["primary_color"] != "#7c3aed" {
			t.Errorf("Expected primary_color in body, got %v", body)
		}

		record := models.NewDefaultCustomization("default")
		record.PrimaryColor = "#7c3aed"
		json.NewEncoder(w).Encode(record.Record())
	}))
	defer server.Close()

	primary := "#7c3aed"
	record, err := New(server.URL).Update(context.Background(), &models.UpdateRequest{PrimaryColor: &primary})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if record.Colors.Primary != "#7c3aed" {
		t.Errorf("Expected updated primary back, got %s", record.Colors.Primary)
	}
}

func TestClientSurfacesServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "theme preset not found: Hot Pink"})
	}))
	defer server.Close()

	_, err := New(server.URL).ApplyPreset(context.Background(), "Hot Pink")
	if err == nil {
		t.Fatal("Expected error")
	}
	if !strings.Contains(err.Error(), "theme preset not found") {
		t.Errorf("Expected the service message, got %v", err)
	}
}

func TestClientFallsBackToHTTPStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := New(server.URL).Current(context.Background())
	if err == nil {
		t.Fatal("Expected error")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("Expected status in error, got %v", err)
	}
}

func TestClientHonorsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New(server.URL).Current(ctx); err == nil {
		t.Error("Expected error from canceled context")
	}
}
