// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-time-keeper/models"
)

// RenderBuildInfo renders the build metadata of the named application.
func RenderBuildInfo(name string, info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("Application"))
	b.WriteString(name)
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Version"))
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Date"))
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Commit"))
	b.WriteString(valueOrNA(info.BuildCommit()))

	return b.String()
}
