// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package dashboard

import (
	"github.com/tomtom215/listenlog/internal/validation"
)

// MaxArtistLength bounds the artist of a selection, in characters.
const MaxArtistLength = 512

// Selection is a dropdown choice as received from a client. Both the HTTP
// query and the WebSocket select message decode into it.
type Selection struct {
	Artist string `json:"artist" query:"artist" validate:"max=512,printable"`
}

// Validate checks the selection before any recompute.
func (s *Selection) Validate() *validation.RequestValidationError {
	return validation.ValidateStruct(s)
}
