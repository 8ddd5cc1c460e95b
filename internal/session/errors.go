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

package session

import "github.com/oncampus/unisso/internal/system/error/serviceerror"

// Server errors for the session bootstrap.
var (
	// ErrorGatewayUnreachable is the error when the login page request fails.
	ErrorGatewayUnreachable = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Kind:             serviceerror.KindAuthServer,
		Code:             "SES-5001",
		Error:            "Gateway unreachable",
		ErrorDescription: "The request for the gateway login page failed",
	}
	// ErrorNoSessionCookie is the error when the login page carries no session cookie.
	ErrorNoSessionCookie = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Kind:             serviceerror.KindProtocol,
		Code:             "SES-5002",
		Error:            "No session cookie",
		ErrorDescription: "The login page response did not carry a session cookie",
	}
	// ErrorNoExecutionToken is the error when the login page carries no execution token.
	ErrorNoExecutionToken = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Kind:             serviceerror.KindProtocol,
		Code:             "SES-5003",
		Error:            "No execution token",
		ErrorDescription: "The login page did not embed an execution form token",
	}
	// ErrorUnreadableLoginPage is the error when the login page body cannot be read.
	ErrorUnreadableLoginPage = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Kind:             serviceerror.KindProtocol,
		Code:             "SES-5004",
		Error:            "Unreadable login page",
		ErrorDescription: "The login page response body could not be read",
	}
)
