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

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/oncampus/unisso/internal/session"
	"github.com/oncampus/unisso/internal/system/config"
	"github.com/oncampus/unisso/internal/system/error/serviceerror"
	"github.com/oncampus/unisso/tests/mocks/httpmock"
)

type CaptchaResolverTestSuite struct {
	suite.Suite
	mockHTTPClient *httpmock.MockHTTPClient
	challenge      *session.CaptchaChallenge
}

func TestCaptchaResolverTestSuite(t *testing.T) {
	suite.Run(t, new(CaptchaResolverTestSuite))
}

func (suite *CaptchaResolverTestSuite) SetupTest() {
	suite.mockHTTPClient = &httpmock.MockHTTPClient{}
	suite.challenge = &session.CaptchaChallenge{
		ID:       "c9b8a7",
		ImageURL: "https://sso.test/captcha?id=c9b8a7&r=12345",
	}
}

func (suite *CaptchaResolverTestSuite) TestNewResolverSelection() {
	callback := func(imageURL, cookie string) (string, error) {
		return "abcd", nil
	}
	ocr := &OCROptions{Token: "ocr-token"}

	suite.Run("NeitherConfigured", func() {
		resolver, svcErr := NewResolver(nil, nil, config.OCRConfig{}, suite.mockHTTPClient)
		suite.Nil(resolver)
		suite.NotNil(svcErr)
		suite.Equal(ErrorNoResolverConfigured.Code, svcErr.Code)
		suite.Equal(serviceerror.KindConfig, svcErr.Kind)
	})

	suite.Run("BothConfigured", func() {
		resolver, svcErr := NewResolver(callback, ocr, config.OCRConfig{}, suite.mockHTTPClient)
		suite.Nil(resolver)
		suite.NotNil(svcErr)
		suite.Equal(ErrorAmbiguousResolverConfig.Code, svcErr.Code)
		suite.Equal(serviceerror.KindConfig, svcErr.Kind)
	})

	suite.Run("CallbackConfigured", func() {
		resolver, svcErr := NewResolver(callback, nil, config.OCRConfig{}, suite.mockHTTPClient)
		suite.Nil(svcErr)
		suite.IsType(&callbackResolver{}, resolver)
	})

	suite.Run("OCRConfigured", func() {
		resolver, svcErr := NewResolver(nil, ocr, config.OCRConfig{MaxRetries: 5},
			suite.mockHTTPClient)
		suite.Nil(svcErr)
		suite.IsType(&ocrResolver{}, resolver)
		suite.Equal(5, resolver.(*ocrResolver).maxRetries)
	})

	suite.Run("OCRRetriesFromOptions", func() {
		resolver, svcErr := NewResolver(nil, &OCROptions{Token: "t", MaxRetries: 2},
			config.OCRConfig{MaxRetries: 5}, suite.mockHTTPClient)
		suite.Nil(svcErr)
		suite.Equal(2, resolver.(*ocrResolver).maxRetries)
	})

	suite.Run("OCRDefaultRetries", func() {
		resolver, svcErr := NewResolver(nil, ocr, config.OCRConfig{}, suite.mockHTTPClient)
		suite.Nil(svcErr)
		suite.Equal(defaultMaxRetries, resolver.(*ocrResolver).maxRetries)
	})
}

func (suite *CaptchaResolverTestSuite) TestCallbackResolveSuccess() {
	var gotImageURL, gotCookie string
	resolver := &callbackResolver{callback: func(imageURL, cookie string) (string, error) {
		gotImageURL = imageURL
		gotCookie = cookie
		return "wxyz", nil
	}}

	text, svcErr := resolver.Resolve(suite.challenge, "SESSION=abc123")
	suite.Nil(svcErr)
	suite.Equal("wxyz", text)
	suite.Equal(suite.challenge.ImageURL, gotImageURL)
	suite.Equal("SESSION=abc123", gotCookie)
}

func (suite *CaptchaResolverTestSuite) TestCallbackResolveFailurePassesMessageThrough() {
	resolver := &callbackResolver{callback: func(imageURL, cookie string) (string, error) {
		return "", errors.New("user closed the prompt")
	}}

	text, svcErr := resolver.Resolve(suite.challenge, "SESSION=abc123")
	suite.Empty(text)
	suite.NotNil(svcErr)
	suite.Equal(ErrorCallbackFailed.Code, svcErr.Code)
	suite.Equal(serviceerror.KindCaptcha, svcErr.Kind)
	suite.Equal("user closed the prompt", svcErr.ErrorDescription)
}

func (suite *CaptchaResolverTestSuite) newOCRResolver(maxRetries int) *ocrResolver {
	return &ocrResolver{
		httpClient: suite.mockHTTPClient,
		endpoint:   "https://ocr.test/recognize",
		token:      "ocr-token",
		maxRetries: maxRetries,
	}
}

func (suite *CaptchaResolverTestSuite) TestOCRResolveSuccess() {
	suite.mockHTTPClient.MockDo = func(req *http.Request) (*http.Response, error) {
		query := req.URL.Query()
		suite.Equal(suite.challenge.ImageURL, query.Get("url"))
		suite.Equal("ocr-token", query.Get("token"))
		suite.Equal("SESSION=abc123", query.Get("cookie"))
		return httpmock.NewResponse(http.StatusOK, nil, `{"text":"k3m9"}`), nil
	}

	text, svcErr := suite.newOCRResolver(3).Resolve(suite.challenge, "SESSION=abc123")
	suite.Nil(svcErr)
	suite.Equal("k3m9", text)
	suite.Len(suite.mockHTTPClient.DoCalls, 1)
}

func (suite *CaptchaResolverTestSuite) TestOCRResolveRetriesUntilSuccess() {
	attempts := 0
	suite.mockHTTPClient.MockDo = func(req *http.Request) (*http.Response, error) {
		attempts++
		if attempts < 3 {
			return httpmock.NewResponse(http.StatusOK, nil, `{"detail":"unreadable image"}`), nil
		}
		return httpmock.NewResponse(http.StatusOK, nil, `{"text":"k3m9"}`), nil
	}

	text, svcErr := suite.newOCRResolver(3).Resolve(suite.challenge, "SESSION=abc123")
	suite.Nil(svcErr)
	suite.Equal("k3m9", text)
	suite.Equal(3, attempts)
}

func (suite *CaptchaResolverTestSuite) TestOCRResolveExhaustsRetries() {
	suite.mockHTTPClient.MockDo = func(req *http.Request) (*http.Response, error) {
		return httpmock.NewResponse(http.StatusOK, nil, `{"detail":"unreadable image"}`), nil
	}

	text, svcErr := suite.newOCRResolver(3).Resolve(suite.challenge, "SESSION=abc123")
	suite.Empty(text)
	suite.NotNil(svcErr)
	suite.Equal(ErrorOCRNoText.Code, svcErr.Code)
	suite.Equal("unreadable image", svcErr.ErrorDescription)
	suite.Len(suite.mockHTTPClient.DoCalls, 3)
}

func (suite *CaptchaResolverTestSuite) TestOCRResolveWithError() {
	tests := []struct {
		name            string
		mockDo          func(req *http.Request) (*http.Response, error)
		expectedErrCode string
		expectedKind    serviceerror.ServiceErrorKind
	}{
		{
			name: "RequestFailure",
			mockDo: func(req *http.Request) (*http.Response, error) {
				return nil, errors.New("connection refused")
			},
			expectedErrCode: ErrorOCRRequestFailed.Code,
			expectedKind:    serviceerror.KindOCR,
		},
		{
			name: "NonOKStatus",
			mockDo: func(req *http.Request) (*http.Response, error) {
				return httpmock.NewResponse(http.StatusServiceUnavailable, nil, ""), nil
			},
			expectedErrCode: ErrorOCRRequestFailed.Code,
			expectedKind:    serviceerror.KindOCR,
		},
		{
			name: "MalformedResponse",
			mockDo: func(req *http.Request) (*http.Response, error) {
				return httpmock.NewResponse(http.StatusOK, nil, "not-json"), nil
			},
			expectedErrCode: ErrorOCRRequestFailed.Code,
			expectedKind:    serviceerror.KindOCR,
		},
		{
			name: "EmptyTextWithoutDetail",
			mockDo: func(req *http.Request) (*http.Response, error) {
				return httpmock.NewResponse(http.StatusOK, nil, `{}`), nil
			},
			expectedErrCode: ErrorOCRNoText.Code,
			expectedKind:    serviceerror.KindOCR,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.mockHTTPClient = &httpmock.MockHTTPClient{MockDo: tc.mockDo}

			text, svcErr := suite.newOCRResolver(1).Resolve(suite.challenge, "SESSION=abc123")
			suite.Empty(text)
			suite.NotNil(svcErr)
			suite.Equal(tc.expectedErrCode, svcErr.Code)
			suite.Equal(tc.expectedKind, svcErr.Kind)
		})
	}
}
