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

package captcha

import "github.com/oncampus/unisso/internal/system/error/serviceerror"

// Client errors for captcha resolution.
var (
	// ErrorNoResolverConfigured is the error when a challenge is present but the
	// caller configured neither a callback nor the OCR strategy.
	ErrorNoResolverConfigured = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Kind:             serviceerror.KindConfig,
		Code:             "CAP-1001",
		Error:            "No captcha resolver configured",
		ErrorDescription: "A captcha challenge is present but no resolver is configured",
	}
	// ErrorAmbiguousResolverConfig is the error when both resolver strategies are configured.
	ErrorAmbiguousResolverConfig = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Kind:             serviceerror.KindConfig,
		Code:             "CAP-1002",
		Error:            "Ambiguous captcha resolver configuration",
		ErrorDescription: "The captcha callback and the OCR strategy are mutually exclusive",
	}
	// ErrorCallbackFailed is the error when the caller supplied captcha callback fails.
	ErrorCallbackFailed = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Kind:             serviceerror.KindCaptcha,
		Code:             "CAP-1003",
		Error:            "Captcha callback failed",
		ErrorDescription: "The caller supplied captcha callback returned an error",
	}
)

// Server errors for captcha resolution.
var (
	// ErrorOCRRequestFailed is the error when the OCR service request fails.
	ErrorOCRRequestFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Kind:             serviceerror.KindOCR,
		Code:             "CAP-5001",
		Error:            "OCR request failed",
		ErrorDescription: "The request to the OCR service failed",
	}
	// ErrorOCRNoText is the error when the OCR service returns no usable text.
	ErrorOCRNoText = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Kind:             serviceerror.KindOCR,
		Code:             "CAP-5002",
		Error:            "OCR returned no text",
		ErrorDescription: "The OCR service response did not contain a usable text field",
	}
)
