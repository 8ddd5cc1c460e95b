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

// Package captcha implements the captcha resolution strategies for the login flow.
package captcha

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/oncampus/unisso/internal/session"
	"github.com/oncampus/unisso/internal/system/config"
	"github.com/oncampus/unisso/internal/system/constants"
	"github.com/oncampus/unisso/internal/system/error/serviceerror"
	httpservice "github.com/oncampus/unisso/internal/system/http"
	"github.com/oncampus/unisso/internal/system/log"
)

const loggerComponentName = "CaptchaResolver"

// defaultMaxRetries bounds the OCR attempts when neither the caller nor the
// configuration specifies a value.
const defaultMaxRetries = 3

// ResolverInterface defines the contract for captcha resolution strategies.
type ResolverInterface interface {
	// Resolve returns the captcha text for the given challenge.
	Resolve(challenge *session.CaptchaChallenge, cookie string) (string, *serviceerror.ServiceError)
}

// NewResolver selects the resolution strategy from the caller configuration.
// The callback and OCR strategies are mutually exclusive; configuring neither
// while a challenge is present is a configuration error.
func NewResolver(callback CallbackFunc, ocr *OCROptions, ocrCfg config.OCRConfig,
	httpClient httpservice.HTTPClientInterface) (ResolverInterface, *serviceerror.ServiceError) {
	if callback != nil && ocr != nil {
		return nil, &ErrorAmbiguousResolverConfig
	}
	if callback != nil {
		return &callbackResolver{callback: callback}, nil
	}
	if ocr != nil {
		if httpClient == nil {
			httpClient = httpservice.GetHTTPClient()
		}
		maxRetries := ocr.MaxRetries
		if maxRetries <= 0 {
			maxRetries = ocrCfg.MaxRetries
		}
		if maxRetries <= 0 {
			maxRetries = defaultMaxRetries
		}
		return &ocrResolver{
			httpClient:    httpClient,
			endpoint:      ocrCfg.Endpoint,
			token:         ocr.Token,
			maxRetries:    maxRetries,
			retryInterval: time.Duration(ocrCfg.RetryIntervalMS) * time.Millisecond,
		}, nil
	}
	return nil, &ErrorNoResolverConfigured
}

// callbackResolver resolves captcha challenges through a caller supplied function.
type callbackResolver struct {
	callback CallbackFunc
}

// Resolve invokes the caller supplied callback. A callback failure is passed
// through with its message intact and is never retried.
func (r *callbackResolver) Resolve(challenge *session.CaptchaChallenge,
	cookie string) (string, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Resolving captcha via caller callback", log.String("challengeId", challenge.ID))

	text, err := r.callback(challenge.ImageURL, cookie)
	if err != nil {
		logger.Debug("Captcha callback returned an error", log.Error(err))
		return "", serviceerror.CustomServiceError(ErrorCallbackFailed, err.Error())
	}
	return text, nil
}

// ocrResolver resolves captcha challenges through the external OCR service with
// bounded sequential retries.
type ocrResolver struct {
	httpClient    httpservice.HTTPClientInterface
	endpoint      string
	token         string
	maxRetries    int
	retryInterval time.Duration
}

// Resolve attempts OCR recognition up to maxRetries times. Attempts run
// sequentially with a short delay so the OCR service is not hammered; the last
// attempt's error is returned when all attempts fail.
func (r *ocrResolver) Resolve(challenge *session.CaptchaChallenge,
	cookie string) (string, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Resolving captcha via OCR service", log.String("challengeId", challenge.ID))

	var lastErr *serviceerror.ServiceError
	for attempt := 1; attempt <= r.maxRetries; attempt++ {
		text, svcErr := r.recognize(challenge.ImageURL, cookie, logger)
		if svcErr == nil {
			logger.Debug("OCR recognition succeeded", log.Int("attempt", attempt))
			return text, nil
		}
		lastErr = svcErr
		logger.Debug("OCR attempt failed", log.Int("attempt", attempt),
			log.String("errorCode", svcErr.Code))
		if attempt < r.maxRetries && r.retryInterval > 0 {
			time.Sleep(r.retryInterval)
		}
	}
	return "", lastErr
}

// recognize performs a single OCR request for the challenge image.
func (r *ocrResolver) recognize(imageURL, cookie string,
	logger *log.Logger) (string, *serviceerror.ServiceError) {
	query := url.Values{}
	query.Set("url", imageURL)
	query.Set("token", r.token)
	query.Set("cookie", cookie)

	req, err := http.NewRequest(http.MethodGet, r.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		logger.Error("Failed to create OCR request", log.Error(err))
		return "", serviceerror.CustomServiceError(ErrorOCRRequestFailed,
			"Failed to create OCR request: "+err.Error())
	}
	req.Header.Set(constants.AcceptHeaderName, constants.ContentTypeJSON)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", serviceerror.CustomServiceError(ErrorOCRRequestFailed,
			"OCR request failed: "+err.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close OCR response body", log.Error(closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", serviceerror.CustomServiceError(ErrorOCRRequestFailed,
			"OCR request failed with status: "+resp.Status)
	}

	var ocrResp ocrResponse
	if err := json.NewDecoder(resp.Body).Decode(&ocrResp); err != nil {
		return "", serviceerror.CustomServiceError(ErrorOCRRequestFailed,
			"Failed to parse OCR response: "+err.Error())
	}
	if ocrResp.Text == "" {
		if ocrResp.Detail != "" {
			return "", serviceerror.CustomServiceError(ErrorOCRNoText, ocrResp.Detail)
		}
		return "", &ErrorOCRNoText
	}
	return ocrResp.Text, nil
}
