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

// Package token implements the exchanges against the OAuth token service.
package token

import (
	"net/url"
	"strings"

	"github.com/oncampus/unisso/internal/system/config"
	"github.com/oncampus/unisso/internal/system/error/serviceerror"
	httpservice "github.com/oncampus/unisso/internal/system/http"
	"github.com/oncampus/unisso/internal/system/log"
)

const loggerComponentName = "TokenService"

// OAuth request parameters understood by the token service.
const (
	requestParamGrantType    = "grant_type"
	requestParamTicket       = "ticket"
	requestParamRefreshToken = "refresh_token"
	requestParamIdentity     = "identity"

	grantTypeTicket       = "third"
	grantTypeRefreshToken = "refresh_token"
)

// TokenServiceInterface defines the contract for the OAuth token exchanges.
type TokenServiceInterface interface {
	// ExchangeTicket exchanges the authorization ticket for a token bundle.
	ExchangeTicket(ticket string) (*TokenBundle, *serviceerror.ServiceError)
	// ExchangeRefreshToken exchanges a refresh token for a new token bundle.
	// A non-empty identity scopes the returned token to that role.
	ExchangeRefreshToken(refreshToken, identity string) (*TokenBundle, *serviceerror.ServiceError)
}

// tokenService is the default implementation of TokenServiceInterface.
type tokenService struct {
	httpClient httpservice.HTTPClientInterface
	oauth      config.OAuthConfig
}

// NewTokenService creates a new instance of the token exchange service.
func NewTokenService(httpClient httpservice.HTTPClientInterface,
	oauth config.OAuthConfig) TokenServiceInterface {
	if httpClient == nil {
		httpClient = httpservice.GetHTTPClient()
	}
	return &tokenService{
		httpClient: httpClient,
		oauth:      oauth,
	}
}

// ExchangeTicket exchanges the authorization ticket for a token bundle.
func (s *tokenService) ExchangeTicket(ticket string) (*TokenBundle, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(ticket) == "" {
		return nil, &ErrorEmptyTicket
	}

	form := url.Values{}
	form.Set(requestParamGrantType, grantTypeTicket)
	form.Set(requestParamTicket, ticket)

	logger.Debug("Exchanging authorization ticket for tokens")
	return s.exchange(form, logger)
}

// ExchangeRefreshToken exchanges a refresh token for a new token bundle.
func (s *tokenService) ExchangeRefreshToken(refreshToken,
	identity string) (*TokenBundle, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(refreshToken) == "" {
		return nil, &ErrorEmptyRefreshToken
	}

	form := url.Values{}
	form.Set(requestParamGrantType, grantTypeRefreshToken)
	form.Set(requestParamRefreshToken, refreshToken)
	if identity != "" {
		form.Set(requestParamIdentity, identity)
	}

	logger.Debug("Exchanging refresh token for tokens",
		log.Bool("roleScoped", identity != ""))
	return s.exchange(form, logger)
}

// exchange posts the form to the token endpoint and validates the response.
func (s *tokenService) exchange(form url.Values,
	logger *log.Logger) (*TokenBundle, *serviceerror.ServiceError) {
	req, svcErr := buildTokenRequest(s.oauth, form, logger)
	if svcErr != nil {
		return nil, svcErr
	}

	bundle, svcErr := sendTokenRequest(req, s.httpClient, logger)
	if svcErr != nil {
		return nil, svcErr
	}

	if bundle.AccessToken == "" {
		logger.Debug("Access token is empty in the token response")
		return nil, &ErrorInvalidTokenResponse
	}
	return bundle, nil
}
