// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:7070", want: "http://localhost:7070"},
		{name: "full url with slash", raw: "https://api.example.com/", want: "https://api.example.com"},
		{name: "path is kept", raw: "http://host/v1/", want: "http://host/v1"},
		{name: "surrounding spaces", raw: "  127.0.0.1:80 ", want: "http://127.0.0.1:80"},
		{name: "empty", raw: "", wantErr: true},
		{name: "scheme only", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPClient_InvalidAddress(t *testing.T) {
	client, err := NewHTTPClient("", time.Second)
	assert.Nil(t, client)
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

func TestNewHTTPClient_UsesBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/status", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, time.Second)
	require.NoError(t, err)

	resp, err := client.R().Get("/api/status")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
}

func TestNewHTTPClient_Independence(t *testing.T) {
	c1, err := NewHTTPClient("localhost:1", 0)
	require.NoError(t, err)
	c2, err := NewHTTPClient("localhost:1", 0)
	require.NoError(t, err)

	assert.NotSame(t, c1.Client, c2.Client)
}
