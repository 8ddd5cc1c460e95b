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

// Package serviceerror defines the error structures for the service layer.
package serviceerror

// ServiceErrorType defines the type of service error.
type ServiceErrorType string

const (
	// ClientErrorType denotes the client error type.
	ClientErrorType ServiceErrorType = "client_error"
	// ServerErrorType denotes the server error type.
	ServerErrorType ServiceErrorType = "server_error"
)

// ServiceErrorKind classifies a service error into the login error taxonomy.
type ServiceErrorKind string

const (
	// KindProtocol denotes an unexpected page or response shape from the gateway.
	KindProtocol ServiceErrorKind = "protocol_error"
	// KindInvalidCredentials denotes a rejected username/password pair.
	KindInvalidCredentials ServiceErrorKind = "invalid_credentials"
	// KindAuthServer denotes a non-2xx response from a backend service.
	KindAuthServer ServiceErrorKind = "auth_server_error"
	// KindConfig denotes a client configuration error.
	KindConfig ServiceErrorKind = "config_error"
	// KindOCR denotes an OCR service failure to produce usable text.
	KindOCR ServiceErrorKind = "ocr_error"
	// KindCaptcha denotes a failure raised by a caller supplied captcha callback.
	KindCaptcha ServiceErrorKind = "captcha_error"
	// KindRoleNotFound denotes a requested role absent from the user's role list.
	KindRoleNotFound ServiceErrorKind = "role_not_found"
	// KindNoRole denotes a user with zero usable roles.
	KindNoRole ServiceErrorKind = "no_role"
)

// ServiceError defines a generic error structure that can be used across the service layer.
type ServiceError struct {
	Code             string           `json:"code"`
	Type             ServiceErrorType `json:"type"`
	Kind             ServiceErrorKind `json:"kind"`
	Error            string           `json:"error"`
	ErrorDescription string           `json:"error_description,omitempty"`
}

// CustomServiceError creates a new service error based on an existing error with custom description.
func CustomServiceError(svcError ServiceError, errorDesc string) *ServiceError {
	err := &ServiceError{
		Code:             svcError.Code,
		Type:             svcError.Type,
		Kind:             svcError.Kind,
		Error:            svcError.Error,
		ErrorDescription: svcError.ErrorDescription,
	}
	if errorDesc != "" {
		err.ErrorDescription = errorDesc
	}
	return err
}
