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

// Package credential implements the credential submission step of the login flow.
package credential

import (
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/oncampus/unisso/internal/session"
	"github.com/oncampus/unisso/internal/system/constants"
	"github.com/oncampus/unisso/internal/system/error/serviceerror"
	httpservice "github.com/oncampus/unisso/internal/system/http"
	"github.com/oncampus/unisso/internal/system/log"
)

const loggerComponentName = "CredentialService"

// maxErrorPageSize bounds reads of gateway error pages.
const maxErrorPageSize = 64 << 10

// Fixed literal form fields expected by the gateway login endpoint.
const (
	formFieldUsername  = "username"
	formFieldPassword  = "password"
	formFieldCaptcha   = "captcha"
	formFieldExecution = "execution"
	formFieldSubmit    = "submit"
	formFieldType      = "type"
	formFieldEventID   = "_eventId"

	formValueSubmit   = "LOGIN"
	formValueType     = "username_password"
	formValueEventID  = "submit"
	ticketQueryParam  = "ticket"
	invalidCredsAlert = "Invalid credentials."
)

// CredentialServiceInterface defines the contract for submitting credentials to the gateway.
type CredentialServiceInterface interface {
	// SubmitCredentials posts the credentials against the bootstrapped session
	// and returns the authorization ticket from the gateway redirect.
	SubmitCredentials(username, password string,
		sessCtx *session.SessionContext) (string, *serviceerror.ServiceError)
}

// credentialService is the default implementation of CredentialServiceInterface.
type credentialService struct {
	httpClient httpservice.HTTPClientInterface
	submitURL  string
}

// NewCredentialService creates a new instance of the credential submission service.
// When no client is supplied, a client that does not follow redirects is used:
// the flow must observe the raw 302 response from the gateway.
func NewCredentialService(httpClient httpservice.HTTPClientInterface,
	submitURL string) CredentialServiceInterface {
	if httpClient == nil {
		httpClient = httpservice.NewHTTPClientWithoutRedirects()
	}
	return &credentialService{
		httpClient: httpClient,
		submitURL:  submitURL,
	}
}

// SubmitCredentials posts the login form and interprets the redirect-or-error response.
func (s *credentialService) SubmitCredentials(username, password string,
	sessCtx *session.SessionContext) (string, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String("username", log.MaskString(username)))

	if sessCtx == nil || sessCtx.Cookie == "" || sessCtx.Execution == "" {
		return "", &ErrorIncompleteSessionContext
	}

	form := url.Values{}
	form.Set(formFieldUsername, username)
	form.Set(formFieldPassword, password)
	if sessCtx.CaptchaText != "" {
		form.Set(formFieldCaptcha, sessCtx.CaptchaText)
	}
	form.Set(formFieldExecution, sessCtx.Execution)
	form.Set(formFieldSubmit, formValueSubmit)
	form.Set(formFieldType, formValueType)
	form.Set(formFieldEventID, formValueEventID)

	req, err := http.NewRequest(http.MethodPost, s.submitURL, strings.NewReader(form.Encode()))
	if err != nil {
		logger.Error("Failed to create login submission request", log.Error(err))
		return "", serviceerror.CustomServiceError(ErrorSubmitRequestFailed,
			"Failed to create login submission request: "+err.Error())
	}
	req.Header.Set(constants.ContentTypeHeaderName, constants.ContentTypeFormURLEncoded)
	req.Header.Set(constants.CookieHeaderName, sessCtx.Cookie)

	logger.Debug("Submitting credentials to the gateway")
	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.Error("Login submission request failed", log.Error(err))
		return "", serviceerror.CustomServiceError(ErrorSubmitRequestFailed,
			"Login submission request failed: "+err.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close login submission response body", log.Error(closeErr))
		}
	}()

	if resp.StatusCode == http.StatusFound {
		return extractTicket(resp.Header.Get(constants.LocationHeaderName), logger)
	}
	return "", s.mapErrorResponse(resp, logger)
}

// extractTicket pulls the ticket query parameter out of the redirect location.
func extractTicket(location string, logger *log.Logger) (string, *serviceerror.ServiceError) {
	if location == "" {
		logger.Debug("Gateway redirect carried no Location header")
		return "", &ErrorNoLocationHeader
	}

	locationURL, err := url.Parse(location)
	if err != nil {
		logger.Debug("Failed to parse redirect location", log.Error(err))
		return "", serviceerror.CustomServiceError(ErrorNoTicket,
			"Failed to parse redirect location: "+err.Error())
	}

	ticket := locationURL.Query().Get(ticketQueryParam)
	if ticket == "" {
		logger.Debug("Redirect location carried no ticket parameter")
		return "", &ErrorNoTicket
	}
	return ticket, nil
}

// mapErrorResponse maps a non-redirect gateway response to the error taxonomy.
func (s *credentialService) mapErrorResponse(resp *http.Response,
	logger *log.Logger) *serviceerror.ServiceError {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorPageSize))
	if err != nil {
		logger.Error("Failed to read login error page", log.Error(err))
		body = nil
	}
	message := scrapeAlertMessage(string(body))

	logger.Debug("Gateway rejected the login submission",
		log.Int("statusCode", resp.StatusCode), log.String("message", message))

	if resp.StatusCode == http.StatusUnauthorized {
		if message == invalidCredsAlert {
			return &ErrorInvalidCredentials
		}
		if message != "" {
			return serviceerror.CustomServiceError(ErrorAuthServer, message)
		}
		return serviceerror.CustomServiceError(ErrorAuthServer,
			"The gateway rejected the login submission with status "+resp.Status)
	}

	desc := "Login submission failed with status " + strconv.Itoa(resp.StatusCode)
	if message != "" {
		desc += ": " + message
	}
	return serviceerror.CustomServiceError(ErrorAuthServer, desc)
}
