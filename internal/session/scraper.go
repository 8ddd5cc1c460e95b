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

import "regexp"

// pageScraper extracts the login protocol fields from the gateway login page.
// The page markup is not a stable contract; keeping the extraction behind this
// interface allows the parsing strategy to change without touching the flow.
type pageScraper interface {
	// ScrapeExecution returns the hidden execution form token, or an empty string.
	ScrapeExecution(body string) string
	// ScrapeCaptchaID returns the captcha challenge id, or an empty string when
	// the page embeds no captcha configuration block.
	ScrapeCaptchaID(body string) string
}

var (
	executionPattern = regexp.MustCompile(`name="execution"\s+value="([^"]+)"`)
	captchaIDPattern = regexp.MustCompile(`(?s)config\.captcha\s*\{.*?id:\s*'([^']+)'`)
)

// regexScraper is the default pageScraper implementation based on pattern matching.
type regexScraper struct{}

func newRegexScraper() pageScraper {
	return &regexScraper{}
}

// ScrapeExecution extracts the hidden execution form token from the page body.
func (s *regexScraper) ScrapeExecution(body string) string {
	match := executionPattern.FindStringSubmatch(body)
	if len(match) < 2 {
		return ""
	}
	return match[1]
}

// ScrapeCaptchaID extracts the captcha challenge id from the page's
// captcha configuration block.
func (s *regexScraper) ScrapeCaptchaID(body string) string {
	match := captchaIDPattern.FindStringSubmatch(body)
	if len(match) < 2 {
		return ""
	}
	return match[1]
}
