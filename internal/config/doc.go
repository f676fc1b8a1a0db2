// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

/*
Package config loads Listenlog configuration with koanf.

Sources are layered, later layers winning:

 1. Built-in defaults (structs provider)
 2. Optional YAML file: $CONFIG_PATH, ./config.yaml, ./config.yml,
    /etc/listenlog/config.yaml, /etc/listenlog/config.yml
 3. Environment variables listed below

Unknown environment variables are ignored.

# Environment Variables

Dataset:
  - DATASET_PATH: listening history CSV (default: spotify_history.csv)
  - DATASET_ENGINE: csv or duckdb (default: csv)

HTTP Server:
  - HTTP_HOST: bind address (default: 0.0.0.0)
  - HTTP_PORT: listen port (default: 8050)
  - HTTP_TIMEOUT: read and write timeout (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: graceful shutdown limit (default: 10s)

Security:
  - AUTH_MODE: none or basic (default: none)
  - ADMIN_USERNAME, ADMIN_PASSWORD: credentials for basic mode
  - RATE_LIMIT_REQUESTS: requests per window per client (default: 100)
  - RATE_LIMIT_WINDOW: window length (default: 1m)
  - DISABLE_RATE_LIMIT: true to turn rate limiting off
  - CORS_ORIGINS: comma-separated allowed origins (default: *)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: include file:line (default: false)

Word image:
  - WORDCLOUD_WIDTH, WORDCLOUD_HEIGHT: canvas size in pixels (default: 400x220)

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
*/
package config
