// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the request correlation id between client and server.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client to
// expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client for baseURL with the given per-request
// timeout. Every request carries a JSON content type and a fresh trace id
// unless the caller set one. Retries are disabled: failed requests are
// replayed by the pending operation queue, not by the transport.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if req.Header.Get(TraceIDHeader) == "" {
			req.SetHeader(TraceIDHeader, NewTraceID())
		}
		return nil
	})

	return &HTTPClient{Client: client}
}
