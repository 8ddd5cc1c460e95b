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

// Package httpmock provides a mock implementation of the HTTP client interface for testing.
package httpmock

import (
	"io"
	"net/http"
	"strings"
)

// MockHTTPClient is a mock implementation of the HTTPClientInterface.
type MockHTTPClient struct {
	// MockDo defines the behavior for the Do method.
	MockDo func(req *http.Request) (*http.Response, error)

	// MockGet defines the behavior for the Get method.
	MockGet func(url string) (*http.Response, error)

	// DoCalls tracks the requests passed to Do.
	DoCalls []*http.Request

	// GetCalls tracks the URLs passed to Get.
	GetCalls []string
}

// Do mocks the Do method of the HTTPClientInterface.
func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	m.DoCalls = append(m.DoCalls, req)

	if m.MockDo != nil {
		return m.MockDo(req)
	}
	return NewResponse(http.StatusOK, nil, ""), nil
}

// Get mocks the Get method of the HTTPClientInterface.
func (m *MockHTTPClient) Get(url string) (*http.Response, error) {
	m.GetCalls = append(m.GetCalls, url)

	if m.MockGet != nil {
		return m.MockGet(url)
	}
	return NewResponse(http.StatusOK, nil, ""), nil
}

// NewResponse builds an HTTP response with the given status, headers and body.
func NewResponse(statusCode int, header http.Header, body string) *http.Response {
	if header == nil {
		header = http.Header{}
	}
	return &http.Response{
		StatusCode: statusCode,
		Status:     http.StatusText(statusCode),
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}
