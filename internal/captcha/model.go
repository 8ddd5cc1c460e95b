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

// CallbackFunc resolves a captcha challenge with caller assistance, typically
// by showing the image to a human. It receives the challenge image URL and the
// session cookie needed to fetch the image, and returns the resolved text.
type CallbackFunc func(imageURL, cookie string) (string, error)

// OCROptions carries the caller supplied settings for the OCR resolver strategy.
type OCROptions struct {
	// Token authenticates the client against the OCR service.
	Token string
	// MaxRetries bounds the sequential OCR attempts. Zero selects the
	// configured default.
	MaxRetries int
}

// ocrResponse is the JSON payload returned by the OCR service.
type ocrResponse struct {
	Text   string `json:"text"`
	Detail string `json:"detail"`
}
