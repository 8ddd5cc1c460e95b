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

// SessionContext carries the per-login state extracted from the gateway login page.
// It is created by the bootstrap, consumed once by the credential submission and
// then discarded.
type SessionContext struct {
	// Cookie is the session cookie issued by the gateway.
	Cookie string
	// Execution is the hidden form token embedded in the login page.
	Execution string
	// CaptchaText is the resolved captcha text, set only when a challenge was present.
	CaptchaText string
}

// CaptchaChallenge describes the captcha challenge embedded in the login page.
// A nil challenge means the gateway does not require a captcha for this session.
type CaptchaChallenge struct {
	// ID is the challenge identifier from the page's captcha configuration block.
	ID string
	// ImageURL is the resolved URL of the challenge image.
	ImageURL string
}
