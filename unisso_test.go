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

package unisso

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncampus/unisso/internal/role"
	"github.com/oncampus/unisso/internal/token"
)

// fakeFlowService records the delegated calls made through the Client surface.
type fakeFlowService struct {
	loginUsername string
	loginOpts     *LoginOptions
	refreshToken  string
	refreshRole   RoleName
	rolesToken    string
}

func (f *fakeFlowService) Login(username, password string,
	opts *LoginOptions) (*LoginResult, *ServiceError) {
	f.loginUsername = username
	f.loginOpts = opts
	return &LoginResult{
		TokenBundle: token.TokenBundle{AccessToken: "at-111"},
		Roles:       []Role{{ID: "r-1", RoleName: RoleStudent}},
	}, nil
}

func (f *fakeFlowService) Refresh(refreshToken string,
	roleName RoleName) (*TokenBundle, *ServiceError) {
	f.refreshToken = refreshToken
	f.refreshRole = roleName
	return &TokenBundle{AccessToken: "at-333"}, nil
}

func (f *fakeFlowService) GetUserRoles(tokenValue string) ([]Role, *ServiceError) {
	f.rolesToken = tokenValue
	return []Role{{ID: "r-1", RoleName: role.RoleNameStudent}}, nil
}

func TestNewClient(t *testing.T) {
	client := NewClient()
	require.NotNil(t, client)
	assert.NotNil(t, client.flowService)
}

func TestNewClientWithConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Gateway.LoginPageURL = "https://sso.other.edu/login"

	client := NewClientWithConfig(cfg)
	require.NotNil(t, client)
}

func TestNewClientFromConfigFile(t *testing.T) {
	content := `
gateway:
  login_page_url: "https://sso.other.edu/login"
`
	path := filepath.Join(t.TempDir(), "client_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	client, err := NewClientFromConfigFile(path)
	require.NoError(t, err)
	require.NotNil(t, client)
}

func TestNewClientFromConfigFileWithMissingFile(t *testing.T) {
	client, err := NewClientFromConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Nil(t, client)
	assert.Error(t, err)
}

func TestClientDelegatesToFlowService(t *testing.T) {
	fake := &fakeFlowService{}
	client := &Client{flowService: fake}

	opts := &LoginOptions{Role: RoleAssistant}
	result, svcErr := client.Login("202401001", "secret", opts)
	require.Nil(t, svcErr)
	require.NotNil(t, result)
	assert.Equal(t, "at-111", result.AccessToken)
	assert.Equal(t, "202401001", fake.loginUsername)
	assert.Same(t, opts, fake.loginOpts)

	bundle, svcErr := client.Refresh("rt-222", RoleTeacher)
	require.Nil(t, svcErr)
	assert.Equal(t, "at-333", bundle.AccessToken)
	assert.Equal(t, "rt-222", fake.refreshToken)
	assert.Equal(t, RoleTeacher, fake.refreshRole)

	roles, svcErr := client.GetUserRoles("rt-222")
	require.Nil(t, svcErr)
	require.Len(t, roles, 1)
	assert.Equal(t, "rt-222", fake.rolesToken)
}
