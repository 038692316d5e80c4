// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/service"
	"github.com/MKhiriev/go-time-keeper/models"
)

const defaultKeepAlive = 15 * time.Second

type Handler struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	// keepAlive is the interval of comment frames on idle event streams.
	keepAlive time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		buildInfo: buildInfo,
		keepAlive: defaultKeepAlive,
		logger:    logger,
	}
}
