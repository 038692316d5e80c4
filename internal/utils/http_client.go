// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrEmptyAddress is returned by [NormalizeBaseURL] for a blank address.
var ErrEmptyAddress = errors.New("empty address")

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a JSON-speaking client bound to address.
//
// address may omit the scheme, in which case "http://" is assumed. A
// non-positive timeout leaves the resty default (no timeout) in place.
//
// Example usage:
//
//	client, err := utils.NewHTTPClient("localhost:7070", 5*time.Second)
//	resp, err := client.R().Get("/api/status")
func NewHTTPClient(address string, timeout time.Duration) (*HTTPClient, error) {
	baseURL, err := NormalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}, nil
}

// NormalizeBaseURL turns "host:port" or a full URL into a scheme-qualified
// base URL without a trailing slash.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
