// Package dataurl re-encodes uploaded file bytes as data: URLs. The
// system has no real file store; document "uploads" live inline in the
// loan records as these strings.
package dataurl

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrNotDataURL = errors.New("dataurl: not a data URL")

// Encode wraps content in a base64 data URL. An empty mediaType falls
// back to application/octet-stream.
func Encode(mediaType string, content []byte) string {
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(content)
}

// Decode splits a base64 data URL back into media type and content.
func Decode(u string) (mediaType string, content []byte, err error) {
	rest, ok := strings.CutPrefix(u, "data:")
	if !ok {
		return "", nil, ErrNotDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrNotDataURL
	}
	mediaType = strings.TrimSuffix(meta, ";base64")
	if mediaType == meta {
		// only base64 payloads are ever produced by Encode
		return "", nil, ErrNotDataURL
	}
	content, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}
	return mediaType, content, nil
}
