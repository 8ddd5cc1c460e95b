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

// Package session implements the bootstrap of a login session against the gateway login page.
package session

import (
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/oncampus/unisso/internal/system/config"
	"github.com/oncampus/unisso/internal/system/constants"
	"github.com/oncampus/unisso/internal/system/error/serviceerror"
	httpservice "github.com/oncampus/unisso/internal/system/http"
	"github.com/oncampus/unisso/internal/system/log"
)

const loggerComponentName = "SessionService"

// maxLoginPageSize bounds the login page read. The gateway page is a few
// kilobytes; anything larger is not the page we expect.
const maxLoginPageSize = 1 << 20

// SessionServiceInterface defines the contract for the login session bootstrap.
type SessionServiceInterface interface {
	// FetchLoginPage requests the gateway login page and extracts the session
	// cookie, the execution form token and the optional captcha challenge.
	FetchLoginPage() (*SessionContext, *CaptchaChallenge, *serviceerror.ServiceError)
}

// sessionService is the default implementation of SessionServiceInterface.
type sessionService struct {
	httpClient httpservice.HTTPClientInterface
	gateway    config.GatewayConfig
	scraper    pageScraper
}

// NewSessionService creates a new instance of the session bootstrap service.
func NewSessionService(httpClient httpservice.HTTPClientInterface,
	gateway config.GatewayConfig) SessionServiceInterface {
	if httpClient == nil {
		httpClient = httpservice.GetHTTPClient()
	}
	return &sessionService{
		httpClient: httpClient,
		gateway:    gateway,
		scraper:    newRegexScraper(),
	}
}

// FetchLoginPage requests the gateway login page and extracts the session state.
func (s *sessionService) FetchLoginPage() (*SessionContext, *CaptchaChallenge,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Fetching gateway login page")

	resp, err := s.httpClient.Get(s.gateway.LoginPageURL)
	if err != nil {
		logger.Error("Login page request failed", log.Error(err))
		return nil, nil, serviceerror.CustomServiceError(ErrorGatewayUnreachable,
			"Login page request failed: "+err.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close login page response body", log.Error(closeErr))
		}
	}()

	cookie := extractSessionCookie(resp.Header.Get(constants.SetCookieHeaderName))
	if cookie == "" {
		logger.Debug("Login page response carried no session cookie")
		return nil, nil, &ErrorNoSessionCookie
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxLoginPageSize))
	if err != nil {
		logger.Error("Failed to read login page body", log.Error(err))
		return nil, nil, &ErrorUnreadableLoginPage
	}
	page := string(body)

	execution := s.scraper.ScrapeExecution(page)
	if execution == "" {
		logger.Debug("Login page did not embed an execution token")
		return nil, nil, &ErrorNoExecutionToken
	}

	sessCtx := &SessionContext{
		Cookie:    cookie,
		Execution: execution,
	}

	captchaID := s.scraper.ScrapeCaptchaID(page)
	if captchaID == "" {
		logger.Debug("Login page requires no captcha challenge")
		return sessCtx, nil, nil
	}

	challenge := &CaptchaChallenge{
		ID:       captchaID,
		ImageURL: s.gateway.CaptchaImageURL + captchaID + "&r=" + cacheBuster(),
	}
	logger.Debug("Login page embeds a captcha challenge", log.String("challengeId", captchaID))

	return sessCtx, challenge, nil
}

// extractSessionCookie returns the first semicolon delimited segment of the
// Set-Cookie header value.
func extractSessionCookie(setCookie string) string {
	if setCookie == "" {
		return ""
	}
	segment, _, _ := strings.Cut(setCookie, ";")
	return strings.TrimSpace(segment)
}

// cacheBuster returns a random five digit numeric string appended to captcha
// image URLs so the gateway does not serve a cached image.
func cacheBuster() string {
	return strconv.Itoa(10000 + rand.Intn(90000))
}
