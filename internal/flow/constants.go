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

// LoginState defines the state of a login flow execution.
type LoginState string

const (
	// LoginStateStart indicates that the login flow has not progressed yet.
	LoginStateStart LoginState = "START"
	// LoginStateBootstrapped indicates that the session bootstrap is complete.
	LoginStateBootstrapped LoginState = "BOOTSTRAPPED"
	// LoginStateCaptchaPending indicates that a captcha challenge awaits resolution.
	LoginStateCaptchaPending LoginState = "CAPTCHA_PENDING"
	// LoginStateCaptchaResolved indicates that the captcha challenge was resolved.
	LoginStateCaptchaResolved LoginState = "CAPTCHA_RESOLVED"
	// LoginStateSubmitted indicates that the credentials were accepted and a ticket obtained.
	LoginStateSubmitted LoginState = "SUBMITTED"
	// LoginStateTicketExchanged indicates that the ticket was exchanged for tokens.
	LoginStateTicketExchanged LoginState = "TICKET_EXCHANGED"
	// LoginStateRolesFetched indicates that the user's roles were fetched.
	LoginStateRolesFetched LoginState = "ROLES_FETCHED"
	// LoginStateRefreshed indicates the terminal state of a successful flow.
	LoginStateRefreshed LoginState = "REFRESHED"
	// LoginStateFailed indicates the terminal state of a failed flow.
	LoginStateFailed LoginState = "FAILED"
)
