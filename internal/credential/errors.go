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

package credential

import "github.com/oncampus/unisso/internal/system/error/serviceerror"

// Client errors for credential submission.
var (
	// ErrorInvalidCredentials is the error when the gateway rejects the username/password pair.
	ErrorInvalidCredentials = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Kind:             serviceerror.KindInvalidCredentials,
		Code:             "CRED-1001",
		Error:            "Invalid credentials",
		ErrorDescription: "The gateway rejected the provided username and password",
	}
	// ErrorIncompleteSessionContext is the error when the session context misses
	// the cookie or the execution token.
	ErrorIncompleteSessionContext = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Kind:             serviceerror.KindProtocol,
		Code:             "CRED-1002",
		Error:            "Incomplete session context",
		ErrorDescription: "Credential submission requires a session cookie and an execution token",
	}
)

// Server errors for credential submission.
var (
	// ErrorAuthServer is the error when the gateway responds with an unexpected status.
	ErrorAuthServer = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Kind:             serviceerror.KindAuthServer,
		Code:             "CRED-5001",
		Error:            "Authentication server error",
		ErrorDescription: "The gateway rejected the login submission",
	}
	// ErrorSubmitRequestFailed is the error when the login submission request fails.
	ErrorSubmitRequestFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Kind:             serviceerror.KindAuthServer,
		Code:             "CRED-5002",
		Error:            "Login submission failed",
		ErrorDescription: "The login submission request to the gateway failed",
	}
	// ErrorNoLocationHeader is the error when the success redirect carries no location.
	ErrorNoLocationHeader = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Kind:             serviceerror.KindProtocol,
		Code:             "CRED-5003",
		Error:            "No redirect location",
		ErrorDescription: "The gateway redirect did not carry a Location header",
	}
	// ErrorNoTicket is the error when the redirect location carries no ticket parameter.
	ErrorNoTicket = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Kind:             serviceerror.KindProtocol,
		Code:             "CRED-5004",
		Error:            "No authorization ticket",
		ErrorDescription: "The gateway redirect location did not carry a ticket parameter",
	}
)
