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

package role

import "github.com/oncampus/unisso/internal/system/error/serviceerror"

// Client errors for role resolution.
var (
	// ErrorRoleNotFound is the error when the requested role is absent from the user's role list.
	ErrorRoleNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Kind:             serviceerror.KindRoleNotFound,
		Code:             "ROLE-1001",
		Error:            "Role not found",
		ErrorDescription: "The requested role is not in the user's role list",
	}
	// ErrorNoRoles is the error when the user has no usable role.
	ErrorNoRoles = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Kind:             serviceerror.KindNoRole,
		Code:             "ROLE-1002",
		Error:            "No usable role",
		ErrorDescription: "The user has no roles available",
	}
	// ErrorEmptyToken is the error when the access or refresh token is empty.
	ErrorEmptyToken = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Kind:             serviceerror.KindConfig,
		Code:             "ROLE-1003",
		Error:            "Empty token",
		ErrorDescription: "The token cannot be empty",
	}
)

// Server errors for role resolution.
var (
	// ErrorRoleRequestFailed is the error when the role listing request fails.
	ErrorRoleRequestFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Kind:             serviceerror.KindAuthServer,
		Code:             "ROLE-5001",
		Error:            "Role request failed",
		ErrorDescription: "The request to the role listing endpoint failed",
	}
	// ErrorInvalidRoleResponse is the error when the role listing response is invalid.
	ErrorInvalidRoleResponse = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Kind:             serviceerror.KindProtocol,
		Code:             "ROLE-5002",
		Error:            "Invalid role response",
		ErrorDescription: "The role listing response could not be parsed",
	}
)
