// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

/*
Package validation wraps go-playground/validator v10 for Listenlog.

A single validator instance is shared by the API layer (query parameters and
WebSocket messages) and the config package. Field names in error messages
come from the first of the query, json or koanf struct tags, so users see
"artist" or "http_port" rather than Go field names.

# Custom Tags

  - printable: the string is valid UTF-8 and contains no control characters

# Example

	type DashboardQuery struct {
	    Artist string `query:"artist" validate:"max=512,printable"`
	}

	if verr := validation.ValidateStruct(&q); verr != nil {
	    apiErr := verr.ToAPIError()
	    // apiErr.Code is VALIDATION_ERROR; Details names the field and tag.
	    return apiErr
	}
*/
package validation
