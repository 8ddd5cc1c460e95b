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

package credential

import (
	"regexp"
	"strings"
)

var (
	alertDangerPattern = regexp.MustCompile(`(?s)<div[^>]*class="[^"]*alert-danger[^"]*"[^>]*>(.*?)</div>`)
	htmlTagPattern     = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
)

// scrapeAlertMessage extracts a human readable error message from the
// alert-danger block of a gateway error page. Returns an empty string when the
// page carries no such block.
func scrapeAlertMessage(body string) string {
	match := alertDangerPattern.FindStringSubmatch(body)
	if len(match) < 2 {
		return ""
	}
	message := htmlTagPattern.ReplaceAllString(match[1], " ")
	message = whitespacePattern.ReplaceAllString(message, " ")
	return strings.TrimSpace(message)
}
