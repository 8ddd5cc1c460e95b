/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package config provides structures and functions for loading and managing client configurations.
package config

import (
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"

	"github.com/oncampus/unisso/internal/system/log"
)

// GatewayConfig holds the SSO gateway endpoint details.
type GatewayConfig struct {
	LoginPageURL    string `yaml:"login_page_url"`
	LoginSubmitURL  string `yaml:"login_submit_url"`
	CaptchaImageURL string `yaml:"captcha_image_url"`
}

// OAuthConfig holds the OAuth token service details.
type OAuthConfig struct {
	TokenURL     string `yaml:"token_url"`
	RoleListURL  string `yaml:"role_list_url"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
}

// OCRConfig holds the captcha OCR service details.
type OCRConfig struct {
	Endpoint        string `yaml:"endpoint"`
	MaxRetries      int    `yaml:"max_retries"`
	RetryIntervalMS int    `yaml:"retry_interval_ms"`
}

// Config holds the complete configuration details of the client.
type Config struct {
	Gateway GatewayConfig `yaml:"gateway"`
	OAuth   OAuthConfig   `yaml:"oauth"`
	OCR     OCRConfig     `yaml:"ocr"`
}

// DefaultConfig returns the configuration for the production campus deployment.
func DefaultConfig() *Config {
	return &Config{
		Gateway: GatewayConfig{
			LoginPageURL:    "https://sso.oncampus.edu.cn/login",
			LoginSubmitURL:  "https://sso.oncampus.edu.cn/login",
			CaptchaImageURL: "https://sso.oncampus.edu.cn/captcha?id=",
		},
		OAuth: OAuthConfig{
			TokenURL:     "https://id.oncampus.edu.cn/oauth/token",
			RoleListURL:  "https://id.oncampus.edu.cn/api/user/roles",
			ClientID:     "campus-portal",
			ClientSecret: "yb7dk6QGJKSPQLJBhgJWKNGPM",
		},
		OCR: OCRConfig{
			Endpoint:        "https://ocr.oncampus.edu.cn/api/captcha",
			MaxRetries:      3,
			RetryIntervalMS: 500,
		},
	}
}

// LoadConfig loads the configurations from the specified YAML file,
// overlaying values on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if ferr := file.Close(); ferr != nil {
			log.GetLogger().Error("Failed to close config file", log.Error(ferr))
		}
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
