// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	n, err := WriteJSON(rr, map[string]int{"pending": 2}, http.StatusAccepted)
	require.NoError(t, err)

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"pending":2}`, rr.Body.String())
	assert.Equal(t, rr.Body.Len(), n)
}

func TestWriteJSON_MarshalError(t *testing.T) {
	rr := httptest.NewRecorder()

	_, err := WriteJSON(rr, make(chan int), http.StatusOK)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, errors.New("sync already in progress"), http.StatusConflict)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"error":"sync already in progress"}`, rr.Body.String())
}

func TestWriteError_NilUsesStatusText(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, nil, http.StatusNotFound)

	assert.JSONEq(t, `{"error":"Not Found"}`, rr.Body.String())
}
