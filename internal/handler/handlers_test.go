// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-time-keeper/internal/config"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/service"
	"github.com/MKhiriev/go-time-keeper/models"
)

// TestNewHandlers_ControlAddress verifies that the HTTP handler is created
// when the control API address is configured.
func TestNewHandlers_ControlAddress(t *testing.T) {
	h, err := NewHandlers(&service.ClientServices{}, models.AppBuildInfo{}, config.ClientServer{HTTPAddress: "127.0.0.1:7070"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.Init())
}

// TestNewHandlers_NoAddress verifies that an empty address is rejected.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.ClientServices{}, models.AppBuildInfo{}, config.ClientServer{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
