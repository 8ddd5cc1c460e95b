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

// Package unisso implements a client for the campus unified identity gateway.
// It automates the full login protocol against the SSO login form (including
// the optional captcha challenge), exchanges the resulting ticket for an OAuth
// token bundle and scopes the final token to one of the user's roles.
package unisso

import (
	"github.com/oncampus/unisso/internal/captcha"
	"github.com/oncampus/unisso/internal/flow"
	"github.com/oncampus/unisso/internal/role"
	"github.com/oncampus/unisso/internal/system/config"
	"github.com/oncampus/unisso/internal/system/error/serviceerror"
	"github.com/oncampus/unisso/internal/token"
)

// Re-exported model types of the login flow.
type (
	// Config holds the complete configuration details of the client.
	Config = config.Config
	// ServiceError is the error structure returned by all client operations.
	ServiceError = serviceerror.ServiceError
	// ServiceErrorKind classifies a service error into the login error taxonomy.
	ServiceErrorKind = serviceerror.ServiceErrorKind
	// TokenBundle is the token payload returned by the OAuth token service.
	TokenBundle = token.TokenBundle
	// Role is one identity available to an authenticated user.
	Role = role.Role
	// RoleName identifies the kind of a user role.
	RoleName = role.RoleName
	// LoginOptions carries the caller supplied settings for a single login flow.
	LoginOptions = flow.LoginOptions
	// LoginResult is the terminal artifact of a successful login flow.
	LoginResult = flow.LoginResult
	// CaptchaCallback resolves a captcha challenge with caller assistance.
	CaptchaCallback = captcha.CallbackFunc
	// OCROptions carries the caller supplied settings for the OCR resolver strategy.
	OCROptions = captcha.OCROptions
)

// Role names understood by the gateway.
const (
	RoleStudent   = role.RoleNameStudent
	RoleTeacher   = role.RoleNameTeacher
	RoleAssistant = role.RoleNameAssistant
)

// Error kinds surfaced by the client operations.
const (
	ErrKindProtocol           = serviceerror.KindProtocol
	ErrKindInvalidCredentials = serviceerror.KindInvalidCredentials
	ErrKindAuthServer         = serviceerror.KindAuthServer
	ErrKindConfig             = serviceerror.KindConfig
	ErrKindOCR                = serviceerror.KindOCR
	ErrKindCaptcha            = serviceerror.KindCaptcha
	ErrKindRoleNotFound       = serviceerror.KindRoleNotFound
	ErrKindNoRole             = serviceerror.KindNoRole
)

// Client is the caller facing entry point of the login automation. A Client is
// safe for concurrent use; every Login call runs its own independent flow.
type Client struct {
	flowService flow.FlowServiceInterface
}

// NewClient creates a client against the production campus deployment.
func NewClient() *Client {
	return NewClientWithConfig(config.DefaultConfig())
}

// NewClientWithConfig creates a client from the given configuration.
func NewClientWithConfig(cfg *Config) *Client {
	return &Client{
		flowService: flow.NewFlowService(cfg, nil),
	}
}

// NewClientFromConfigFile creates a client from a YAML deployment file,
// overlaying the file's values on top of the defaults.
func NewClientFromConfigFile(path string) (*Client, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return NewClientWithConfig(cfg), nil
}

// Login runs the full login protocol for the given credentials and returns the
// role-scoped token bundle merged with the user's role list.
func (c *Client) Login(username, password string,
	opts *LoginOptions) (*LoginResult, *ServiceError) {
	return c.flowService.Login(username, password, opts)
}

// Refresh exchanges a refresh token for a new token bundle. A non-empty role
// name scopes the returned token to that role.
func (c *Client) Refresh(refreshToken string, roleName RoleName) (*TokenBundle, *ServiceError) {
	return c.flowService.Refresh(refreshToken, roleName)
}

// GetUserRoles returns the ordered role list for the identity behind the token.
func (c *Client) GetUserRoles(token string) ([]Role, *ServiceError) {
	return c.flowService.GetUserRoles(token)
}
