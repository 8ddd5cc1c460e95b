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

import "github.com/oncampus/unisso/internal/system/error/serviceerror"

// Client errors for token exchange.
var (
	// ErrorEmptyTicket is the error when the authorization ticket is empty.
	ErrorEmptyTicket = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Kind:             serviceerror.KindConfig,
		Code:             "TOK-1001",
		Error:            "Empty ticket",
		ErrorDescription: "The authorization ticket cannot be empty",
	}
	// ErrorEmptyRefreshToken is the error when the refresh token is empty.
	ErrorEmptyRefreshToken = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Kind:             serviceerror.KindConfig,
		Code:             "TOK-1002",
		Error:            "Empty refresh token",
		ErrorDescription: "The refresh token cannot be empty",
	}
)

// Server errors for token exchange.
var (
	// ErrorTokenRequestFailed is the error when the token service request fails.
	ErrorTokenRequestFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Kind:             serviceerror.KindAuthServer,
		Code:             "TOK-5001",
		Error:            "Token request failed",
		ErrorDescription: "The request to the OAuth token service failed",
	}
	// ErrorInvalidTokenResponse is the error when the token response is invalid.
	ErrorInvalidTokenResponse = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Kind:             serviceerror.KindProtocol,
		Code:             "TOK-5002",
		Error:            "Invalid token response",
		ErrorDescription: "The token response received from the token service is invalid",
	}
)
