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

package flow

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/oncampus/unisso/internal/captcha"
	"github.com/oncampus/unisso/internal/role"
	"github.com/oncampus/unisso/internal/system/error/serviceerror"
	"github.com/oncampus/unisso/internal/system/log"
	"github.com/oncampus/unisso/internal/token"
)

// LoginOptions carries the caller supplied settings for a single login flow.
type LoginOptions struct {
	// Role is the target role to scope the final token to. Empty selects the
	// first available role.
	Role role.RoleName
	// OnCaptcha resolves a captcha challenge with caller assistance.
	// Mutually exclusive with OCR.
	OnCaptcha captcha.CallbackFunc
	// OCR selects the OCR resolution strategy. Mutually exclusive with OnCaptcha.
	OCR *captcha.OCROptions
}

// LoginResult is the terminal artifact of a successful login flow: the
// role-scoped token bundle together with the user's ordered role list.
type LoginResult struct {
	token.TokenBundle
	Roles []role.Role `json:"roles"`
}

// loginContext tracks the state of a single login flow execution. Each Login
// call builds its own context; nothing is shared between concurrent flows.
type loginContext struct {
	flowID string
	state  LoginState
}

// newLoginContext creates a flow context in the start state.
func newLoginContext() *loginContext {
	return &loginContext{
		flowID: generateFlowID(),
		state:  LoginStateStart,
	}
}

// transition moves the flow to the given state.
func (c *loginContext) transition(state LoginState, logger *log.Logger) {
	c.state = state
	logger.Debug("Login flow state transition", log.String(log.LoggerKeyLoginState, string(state)))
}

// fail moves the flow to the terminal failed state and returns the causing
// error for convenient propagation.
func (c *loginContext) fail(svcErr *serviceerror.ServiceError,
	logger *log.Logger) *serviceerror.ServiceError {
	failedIn := c.state
	c.state = LoginStateFailed
	logger.Debug("Login flow failed", log.String("failedIn", string(failedIn)),
		log.String("errorCode", svcErr.Code))
	return svcErr
}

// generateFlowID returns a random identifier used to correlate the log entries
// of one login flow.
func generateFlowID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return "unknown"
	}
	return hex.EncodeToString(bytes)
}
