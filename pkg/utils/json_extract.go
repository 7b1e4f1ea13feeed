package utils

import (
	"encoding/json"
	"strings"
)

const codeFence = "```"

// stripCodeFence removes a markdown code fence wrapper (```json ... ```) if
// the text contains one. Text without a fence is returned trimmed.
func stripCodeFence(text string) string {
	cleaned := strings.TrimSpace(text)

	start := strings.Index(cleaned, codeFence)
	if start == -1 {
		return cleaned
	}

	body := cleaned[start+len(codeFence):]
	// drop the language tag on the opening fence line
	if nl := strings.IndexByte(body, '\n'); nl != -1 && !strings.ContainsAny(body[:nl], "{[") {
		body = body[nl+1:]
	} else {
		body = strings.TrimLeft(body, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	}

	if end := strings.LastIndex(body, codeFence); end != -1 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}

// ExtractJSON turns raw model text into a strict JSON payload.
func ExtractJSON(text string) (json.RawMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrUpstreamEmptyResponse
	}

	cleaned := stripCodeFence(text)
	if cleaned == "" {
		return nil, ErrUpstreamEmptyResponse
	}
	if !json.Valid([]byte(cleaned)) {
		return nil, ErrUpstreamInvalidJSON
	}
	return json.RawMessage(cleaned), nil
}
