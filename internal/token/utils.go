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

package token

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/oncampus/unisso/internal/system/config"
	"github.com/oncampus/unisso/internal/system/constants"
	"github.com/oncampus/unisso/internal/system/error/serviceerror"
	httpservice "github.com/oncampus/unisso/internal/system/http"
	"github.com/oncampus/unisso/internal/system/log"
)

// maxErrorBodySize bounds reads of token service error responses.
const maxErrorBodySize = 4096

// buildTokenRequest constructs the HTTP request against the token endpoint with
// the fixed client credential identifying this application.
func buildTokenRequest(oauth config.OAuthConfig, form url.Values, logger *log.Logger) (
	*http.Request, *serviceerror.ServiceError) {
	req, err := http.NewRequest(http.MethodPost, oauth.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		logger.Error("Failed to create token request", log.Error(err))
		return nil, serviceerror.CustomServiceError(ErrorTokenRequestFailed,
			"Failed to create token request: "+err.Error())
	}

	req.SetBasicAuth(oauth.ClientID, oauth.ClientSecret)
	req.Header.Set(constants.ContentTypeHeaderName, constants.ContentTypeFormURLEncoded)
	req.Header.Set(constants.AcceptHeaderName, constants.ContentTypeJSON)

	return req, nil
}

// sendTokenRequest sends the token request and decodes the token bundle.
func sendTokenRequest(req *http.Request, httpClient httpservice.HTTPClientInterface,
	logger *log.Logger) (*TokenBundle, *serviceerror.ServiceError) {
	resp, err := httpClient.Do(req)
	if err != nil {
		logger.Error("Token request to the token service failed", log.Error(err))
		return nil, serviceerror.CustomServiceError(ErrorTokenRequestFailed,
			"Token request failed: "+err.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close token response body", log.Error(closeErr))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		logger.Error("Token endpoint returned an error response",
			log.Int("statusCode", resp.StatusCode), log.String("response", string(body)))
		return nil, serviceerror.CustomServiceError(ErrorTokenRequestFailed,
			"Token request failed with status "+resp.Status+": "+string(body))
	}

	var bundle TokenBundle
	if err := json.NewDecoder(resp.Body).Decode(&bundle); err != nil {
		logger.Error("Failed to parse token response", log.Error(err))
		return nil, serviceerror.CustomServiceError(ErrorInvalidTokenResponse,
			"Failed to parse token response: "+err.Error())
	}

	return &bundle, nil
}
