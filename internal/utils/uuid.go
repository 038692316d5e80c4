// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// IDGenerator produces unique string identifiers.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator issues time-ordered UUIDv7 identifiers, falling back to a
// random UUIDv4 if the v7 source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
