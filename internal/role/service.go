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

// Package role implements the resolution of the roles available to an authenticated user.
package role

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/oncampus/unisso/internal/system/constants"
	"github.com/oncampus/unisso/internal/system/error/serviceerror"
	httpservice "github.com/oncampus/unisso/internal/system/http"
	"github.com/oncampus/unisso/internal/system/log"
)

const loggerComponentName = "RoleService"

// maxErrorBodySize bounds reads of role endpoint error responses.
const maxErrorBodySize = 4096

// RoleServiceInterface defines the contract for role listing and selection.
type RoleServiceInterface interface {
	// FetchUserRoles returns the ordered list of roles available to the
	// identity behind the given token.
	FetchUserRoles(token string) ([]Role, *serviceerror.ServiceError)
	// SelectRole picks the requested role from the list, or the first role when
	// no explicit role is requested.
	SelectRole(roles []Role, requested RoleName) (*Role, *serviceerror.ServiceError)
}

// roleService is the default implementation of RoleServiceInterface.
type roleService struct {
	httpClient  httpservice.HTTPClientInterface
	roleListURL string
}

// NewRoleService creates a new instance of the role resolution service.
func NewRoleService(httpClient httpservice.HTTPClientInterface,
	roleListURL string) RoleServiceInterface {
	if httpClient == nil {
		httpClient = httpservice.GetHTTPClient()
	}
	return &roleService{
		httpClient:  httpClient,
		roleListURL: roleListURL,
	}
}

// FetchUserRoles queries the role listing endpoint scoped by the authenticated identity.
func (s *roleService) FetchUserRoles(token string) ([]Role, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(token) == "" {
		return nil, &ErrorEmptyToken
	}

	req, err := http.NewRequest(http.MethodGet, s.roleListURL, nil)
	if err != nil {
		logger.Error("Failed to create role listing request", log.Error(err))
		return nil, serviceerror.CustomServiceError(ErrorRoleRequestFailed,
			"Failed to create role listing request: "+err.Error())
	}
	req.Header.Set(constants.IDTokenHeaderName, token)
	req.Header.Set(constants.AcceptHeaderName, constants.ContentTypeJSON)

	logger.Debug("Fetching user roles")
	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.Error("Role listing request failed", log.Error(err))
		return nil, serviceerror.CustomServiceError(ErrorRoleRequestFailed,
			"Role listing request failed: "+err.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close role listing response body", log.Error(closeErr))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		logger.Error("Role listing endpoint returned an error response",
			log.Int("statusCode", resp.StatusCode), log.String("response", string(body)))
		return nil, serviceerror.CustomServiceError(ErrorRoleRequestFailed,
			"Role listing request failed with status "+resp.Status)
	}

	var envelope roleListResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		logger.Error("Failed to parse role listing response", log.Error(err))
		return nil, serviceerror.CustomServiceError(ErrorInvalidRoleResponse,
			"Failed to parse role listing response: "+err.Error())
	}

	logger.Debug("Fetched user roles", log.Int("count", len(envelope.Data)))
	return envelope.Data, nil
}

// SelectRole picks exactly one role for the login.
func (s *roleService) SelectRole(roles []Role, requested RoleName) (*Role, *serviceerror.ServiceError) {
	if requested != "" {
		for i := range roles {
			if roles[i].RoleName == requested {
				return &roles[i], nil
			}
		}
		return nil, serviceerror.CustomServiceError(ErrorRoleNotFound,
			"Role "+string(requested)+" is not in the user's role list")
	}
	if len(roles) == 0 {
		return nil, &ErrorNoRoles
	}
	return &roles[0], nil
}
