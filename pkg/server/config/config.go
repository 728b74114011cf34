/* Copyright 2025 Fieldsync Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config provides the server configuration
package config

import (
	"net/url"
	"os"
	"path/filepath"

	"github.com/fieldsync/fieldsync/pkg/dirs"
	"github.com/pkg/errors"
)

const (
	// AppEnvProduction represents an app environment for production.
	AppEnvProduction string = "PRODUCTION"
	// DefaultDBDir is the default directory name for Fieldsync data
	DefaultDBDir = "fieldsync"
	// DefaultDBFilename is the default database filename
	DefaultDBFilename = "server.db"
)

var (
	// DefaultDBPath is the default path to the database file
	DefaultDBPath = filepath.Join(dirs.DataHome, DefaultDBDir, DefaultDBFilename)
)

var (
	// ErrDBMissingPath is an error for an incomplete configuration missing the database path
	ErrDBMissingPath = errors.New("DB Path is empty")
	// ErrPortInvalid is an error for an incomplete configuration with invalid port
	ErrPortInvalid = errors.New("Invalid Port")
	// ErrWebhookURLInvalid is an error for a malformed notification webhook url
	ErrWebhookURLInvalid = errors.New("Invalid NotifyWebhookURL")
)

// getOrEnv returns value if non-empty, otherwise env var, otherwise default
func getOrEnv(value, envKey, defaultVal string) string {
	if value != "" {
		return value
	}
	if env := os.Getenv(envKey); env != "" {
		return env
	}
	return defaultVal
}

// Config is an application configuration
type Config struct {
	AppEnv           string
	Port             string
	DBPath           string
	DatabaseURL      string
	NotifyWebhookURL string
	LogLevel         string
}

// Params are the configuration parameters for creating a new Config
type Params struct {
	AppEnv           string
	Port             string
	DBPath           string
	DatabaseURL      string
	NotifyWebhookURL string
	LogLevel         string
}

// New constructs and returns a new validated config.
// Empty string params will fall back to environment variables and defaults.
func New(p Params) (Config, error) {
	c := Config{
		AppEnv:           getOrEnv(p.AppEnv, "APP_ENV", AppEnvProduction),
		Port:             getOrEnv(p.Port, "PORT", "3001"),
		DBPath:           getOrEnv(p.DBPath, "DBPath", DefaultDBPath),
		DatabaseURL:      getOrEnv(p.DatabaseURL, "DATABASE_URL", ""),
		NotifyWebhookURL: getOrEnv(p.NotifyWebhookURL, "NotifyWebhookURL", ""),
		LogLevel:         getOrEnv(p.LogLevel, "LOG_LEVEL", "info"),
	}

	if err := validate(c); err != nil {
		return Config{}, err
	}

	return c, nil
}

// IsProd checks if the app environment is configured to be production.
func (c Config) IsProd() bool {
	return c.AppEnv == AppEnvProduction
}

func validate(c Config) error {
	if c.Port == "" {
		return ErrPortInvalid
	}

	// DatabaseURL takes precedence over DBPath, so DBPath may be empty
	// only when a DatabaseURL is configured.
	if c.DBPath == "" && c.DatabaseURL == "" {
		return ErrDBMissingPath
	}

	if c.NotifyWebhookURL != "" {
		if _, err := url.ParseRequestURI(c.NotifyWebhookURL); err != nil {
			return errors.Wrapf(ErrWebhookURLInvalid, "'%s'", c.NotifyWebhookURL)
		}
	}

	return nil
}
