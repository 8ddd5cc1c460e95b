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

package role

// RoleName identifies the kind of a user role.
type RoleName string

const (
	// RoleNameStudent denotes the student role.
	RoleNameStudent RoleName = "student"
	// RoleNameTeacher denotes the teacher role.
	RoleNameTeacher RoleName = "teacher"
	// RoleNameAssistant denotes the assistant role.
	RoleNameAssistant RoleName = "assistant"
)

// Role is one identity available to an authenticated user. A user has a
// non-empty ordered list of roles; one is selected per login.
type Role struct {
	ID         string   `json:"id"`
	RoleID     string   `json:"roleId"`
	RoleName   RoleName `json:"roleName"`
	DomainID   string   `json:"domainId"`
	DomainName string   `json:"domainName"`
}

// roleListResponse is the JSON envelope returned by the role listing endpoint.
type roleListResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data []Role `json:"data"`
}
