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

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/oncampus/unisso/internal/system/constants"
	"github.com/oncampus/unisso/internal/system/error/serviceerror"
	"github.com/oncampus/unisso/tests/mocks/httpmock"
)

const testRoleListURL = "https://id.test/roles"

const testRoleListResponse = `{
	"code": 0,
	"msg": "ok",
	"data": [
		{"id": "r-1", "roleId": "role-student", "roleName": "student",
			"domainId": "d-1", "domainName": "Main Campus"},
		{"id": "r-2", "roleId": "role-assistant", "roleName": "assistant",
			"domainId": "d-1", "domainName": "Main Campus"}
	]
}`

type RoleServiceTestSuite struct {
	suite.Suite
	mockHTTPClient *httpmock.MockHTTPClient
	service        RoleServiceInterface
}

func TestRoleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RoleServiceTestSuite))
}

func (suite *RoleServiceTestSuite) SetupTest() {
	suite.mockHTTPClient = &httpmock.MockHTTPClient{}
	suite.service = NewRoleService(suite.mockHTTPClient, testRoleListURL)
}

func (suite *RoleServiceTestSuite) TestFetchUserRolesSuccess() {
	var captured *http.Request
	suite.mockHTTPClient.MockDo = func(req *http.Request) (*http.Response, error) {
		captured = req
		return httpmock.NewResponse(http.StatusOK, nil, testRoleListResponse), nil
	}

	roles, svcErr := suite.service.FetchUserRoles("rt-222")
	suite.Nil(svcErr)
	suite.Require().Len(roles, 2)
	suite.Equal("r-1", roles[0].ID)
	suite.Equal(RoleNameStudent, roles[0].RoleName)
	suite.Equal("Main Campus", roles[0].DomainName)
	suite.Equal(RoleNameAssistant, roles[1].RoleName)

	suite.Require().NotNil(captured)
	suite.Equal(testRoleListURL, captured.URL.String())
	suite.Equal("rt-222", captured.Header.Get(constants.IDTokenHeaderName))
}

func (suite *RoleServiceTestSuite) TestFetchUserRolesIsRepeatable() {
	suite.mockHTTPClient.MockDo = func(req *http.Request) (*http.Response, error) {
		return httpmock.NewResponse(http.StatusOK, nil, testRoleListResponse), nil
	}

	first, svcErr := suite.service.FetchUserRoles("rt-222")
	suite.Nil(svcErr)
	second, svcErr := suite.service.FetchUserRoles("rt-222")
	suite.Nil(svcErr)
	suite.Equal(first, second)
}

func (suite *RoleServiceTestSuite) TestFetchUserRolesWithEmptyToken() {
	roles, svcErr := suite.service.FetchUserRoles(" ")
	suite.Nil(roles)
	suite.NotNil(svcErr)
	suite.Equal(ErrorEmptyToken.Code, svcErr.Code)
	suite.Empty(suite.mockHTTPClient.DoCalls)
}

func (suite *RoleServiceTestSuite) TestFetchUserRolesWithError() {
	tests := []struct {
		name            string
		mockDo          func(req *http.Request) (*http.Response, error)
		expectedErrCode string
	}{
		{
			name: "RequestFailure",
			mockDo: func(req *http.Request) (*http.Response, error) {
				return nil, errors.New("connection refused")
			},
			expectedErrCode: ErrorRoleRequestFailed.Code,
		},
		{
			name: "NonSuccessStatus",
			mockDo: func(req *http.Request) (*http.Response, error) {
				return httpmock.NewResponse(http.StatusForbidden, nil, ""), nil
			},
			expectedErrCode: ErrorRoleRequestFailed.Code,
		},
		{
			name: "MalformedResponse",
			mockDo: func(req *http.Request) (*http.Response, error) {
				return httpmock.NewResponse(http.StatusOK, nil, "not-json"), nil
			},
			expectedErrCode: ErrorInvalidRoleResponse.Code,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.mockHTTPClient.MockDo = tc.mockDo

			roles, svcErr := suite.service.FetchUserRoles("rt-222")
			suite.Nil(roles)
			suite.NotNil(svcErr)
			suite.Equal(tc.expectedErrCode, svcErr.Code)
		})
	}
}

func (suite *RoleServiceTestSuite) TestSelectRole() {
	roles := []Role{
		{ID: "r-1", RoleName: RoleNameStudent},
		{ID: "r-2", RoleName: RoleNameAssistant},
	}

	tests := []struct {
		name            string
		roles           []Role
		requested       RoleName
		expectedID      string
		expectedErrCode string
		expectedKind    serviceerror.ServiceErrorKind
	}{
		{
			name:       "RequestedRolePresent",
			roles:      roles,
			requested:  RoleNameAssistant,
			expectedID: "r-2",
		},
		{
			name:            "RequestedRoleAbsent",
			roles:           roles,
			requested:       RoleNameTeacher,
			expectedErrCode: ErrorRoleNotFound.Code,
			expectedKind:    serviceerror.KindRoleNotFound,
		},
		{
			name:       "DefaultToFirstRole",
			roles:      roles,
			requested:  "",
			expectedID: "r-1",
		},
		{
			name:            "NoRolesAvailable",
			roles:           nil,
			requested:       "",
			expectedErrCode: ErrorNoRoles.Code,
			expectedKind:    serviceerror.KindNoRole,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			selected, svcErr := suite.service.SelectRole(tc.roles, tc.requested)
			if tc.expectedErrCode != "" {
				suite.Nil(selected)
				suite.Require().NotNil(svcErr)
				suite.Equal(tc.expectedErrCode, svcErr.Code)
				suite.Equal(tc.expectedKind, svcErr.Kind)
				return
			}
			suite.Nil(svcErr)
			suite.Require().NotNil(selected)
			suite.Equal(tc.expectedID, selected.ID)
		})
	}
}
