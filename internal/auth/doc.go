// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

// Package auth provides optional HTTP Basic authentication and the security
// headers applied to every response.
//
// With AUTH_MODE=basic a single admin account guards the whole dashboard,
// including the WebSocket upgrade. The password is hashed with bcrypt once at
// startup; requests are checked against the hash.
//
//	mgr, err := auth.NewBasicAuthManager(cfg.Security.AdminUsername, cfg.Security.AdminPassword)
//	mw := auth.NewMiddleware(mgr)
//	r.Use(mw.SecurityHeaders, mw.Authenticate)
package auth
