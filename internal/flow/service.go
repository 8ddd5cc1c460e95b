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

// Package flow implements the login orchestrator sequencing the bootstrap,
// captcha, credential, token and role stages into the full login protocol.
package flow

import (
	"github.com/oncampus/unisso/internal/captcha"
	"github.com/oncampus/unisso/internal/credential"
	"github.com/oncampus/unisso/internal/role"
	"github.com/oncampus/unisso/internal/session"
	"github.com/oncampus/unisso/internal/system/config"
	"github.com/oncampus/unisso/internal/system/error/serviceerror"
	httpservice "github.com/oncampus/unisso/internal/system/http"
	"github.com/oncampus/unisso/internal/system/log"
	"github.com/oncampus/unisso/internal/token"
)

const loggerComponentName = "LoginFlow"

// FlowServiceInterface defines the contract for the login flow operations.
type FlowServiceInterface interface {
	// Login runs the full login protocol and returns the role-scoped token
	// bundle merged with the user's role list. The operation is all-or-nothing.
	Login(username, password string, opts *LoginOptions) (*LoginResult, *serviceerror.ServiceError)
	// Refresh exchanges a refresh token for a new token bundle, scoped to the
	// given role when one is requested.
	Refresh(refreshToken string, roleName role.RoleName) (*token.TokenBundle, *serviceerror.ServiceError)
	// GetUserRoles returns the ordered role list for the identity behind the token.
	GetUserRoles(tokenValue string) ([]role.Role, *serviceerror.ServiceError)
}

// flowService is the default implementation of FlowServiceInterface.
type flowService struct {
	sessionService    session.SessionServiceInterface
	credentialService credential.CredentialServiceInterface
	tokenService      token.TokenServiceInterface
	roleService       role.RoleServiceInterface
	ocrConfig         config.OCRConfig
	httpClient        httpservice.HTTPClientInterface
}

// NewFlowService creates a new login flow service from the client configuration.
// The credential stage always uses its own non-redirecting HTTP client so the
// raw gateway redirect stays observable.
func NewFlowService(cfg *config.Config,
	httpClient httpservice.HTTPClientInterface) FlowServiceInterface {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if httpClient == nil {
		httpClient = httpservice.GetHTTPClient()
	}
	return &flowService{
		sessionService:    session.NewSessionService(httpClient, cfg.Gateway),
		credentialService: credential.NewCredentialService(nil, cfg.Gateway.LoginSubmitURL),
		tokenService:      token.NewTokenService(httpClient, cfg.OAuth),
		roleService:       role.NewRoleService(httpClient, cfg.OAuth.RoleListURL),
		ocrConfig:         cfg.OCR,
		httpClient:        httpClient,
	}
}

// Login runs the full login protocol as a strictly sequential state machine.
func (s *flowService) Login(username, password string,
	opts *LoginOptions) (*LoginResult, *serviceerror.ServiceError) {
	if opts == nil {
		opts = &LoginOptions{}
	}

	fc := newLoginContext()
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeyFlowID, fc.flowID),
		log.String("username", log.MaskString(username)))
	logger.Debug("Starting login flow")

	sessCtx, challenge, svcErr := s.sessionService.FetchLoginPage()
	if svcErr != nil {
		return nil, fc.fail(svcErr, logger)
	}
	fc.transition(LoginStateBootstrapped, logger)

	if challenge != nil {
		fc.transition(LoginStateCaptchaPending, logger)

		resolver, svcErr := captcha.NewResolver(opts.OnCaptcha, opts.OCR, s.ocrConfig, s.httpClient)
		if svcErr != nil {
			return nil, fc.fail(svcErr, logger)
		}
		captchaText, svcErr := resolver.Resolve(challenge, sessCtx.Cookie)
		if svcErr != nil {
			return nil, fc.fail(svcErr, logger)
		}
		sessCtx.CaptchaText = captchaText
		fc.transition(LoginStateCaptchaResolved, logger)
	}

	ticket, svcErr := s.credentialService.SubmitCredentials(username, password, sessCtx)
	if svcErr != nil {
		return nil, fc.fail(svcErr, logger)
	}
	fc.transition(LoginStateSubmitted, logger)

	bundle, svcErr := s.tokenService.ExchangeTicket(ticket)
	if svcErr != nil {
		return nil, fc.fail(svcErr, logger)
	}
	fc.transition(LoginStateTicketExchanged, logger)

	roles, svcErr := s.roleService.FetchUserRoles(bundle.RefreshToken)
	if svcErr != nil {
		return nil, fc.fail(svcErr, logger)
	}
	if len(roles) == 0 {
		return nil, fc.fail(&role.ErrorNoRoles, logger)
	}
	fc.transition(LoginStateRolesFetched, logger)

	selected, svcErr := s.roleService.SelectRole(roles, opts.Role)
	if svcErr != nil {
		return nil, fc.fail(svcErr, logger)
	}

	scoped, svcErr := s.tokenService.ExchangeRefreshToken(bundle.RefreshToken, selected.ID)
	if svcErr != nil {
		return nil, fc.fail(svcErr, logger)
	}
	fc.transition(LoginStateRefreshed, logger)

	logger.Info("Login flow completed",
		log.String("role", string(selected.RoleName)),
		log.String("userId", log.MaskString(scoped.UserID)))

	return &LoginResult{
		TokenBundle: *scoped,
		Roles:       roles,
	}, nil
}

// Refresh exchanges a refresh token for a new token bundle. When a role is
// requested the role list is resolved first and no token request is issued for
// a role the user does not hold.
func (s *flowService) Refresh(refreshToken string,
	roleName role.RoleName) (*token.TokenBundle, *serviceerror.ServiceError) {
	if roleName == "" {
		return s.tokenService.ExchangeRefreshToken(refreshToken, "")
	}

	roles, svcErr := s.roleService.FetchUserRoles(refreshToken)
	if svcErr != nil {
		return nil, svcErr
	}
	selected, svcErr := s.roleService.SelectRole(roles, roleName)
	if svcErr != nil {
		return nil, svcErr
	}
	return s.tokenService.ExchangeRefreshToken(refreshToken, selected.ID)
}

// GetUserRoles returns the ordered role list for the identity behind the token.
func (s *flowService) GetUserRoles(tokenValue string) ([]role.Role, *serviceerror.ServiceError) {
	return s.roleService.FetchUserRoles(tokenValue)
}
