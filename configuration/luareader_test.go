// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerworks/supplychaind/configuration"
	"github.com/ledgerworks/supplychaind/fault"
)

type rpcType struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections"`
	Listen             []string `gluamapper:"listen"`
	EnableLoader       bool     `gluamapper:"enable_loader"`
}

type testConfiguration struct {
	DataDirectory string  `gluamapper:"data_directory"`
	ClientRPC     rpcType `gluamapper:"client_rpc"`
	Certificate   string  `gluamapper:"certificate"`
}

const script = `
local M = {}

local function read_file(name)
  local f, err = io.open(name, "r")
  if f == nil then
    return nil
  end
  local r = f:read("*a")
  f:close()
  return r
end

M.data_directory = "."
M.client_rpc = {
  maximum_connections = 7,
  listen = { "127.0.0.1:2130", "[::1]:2130" },
  enable_loader = true,
}
M.certificate = read_file(arg[0] .. ".crt")

return M
`

func write(t *testing.T, name string, content string) string {
	fileName := filepath.Join(t.TempDir(), name)
	require.Nil(t, os.WriteFile(fileName, []byte(content), 0600), "write "+name)
	return fileName
}

func TestParseConfigurationFile(t *testing.T) {
	fileName := write(t, "supplychaind.conf", script)
	require.Nil(t, os.WriteFile(fileName+".crt", []byte("CERTIFICATE"), 0600), "write certificate")

	c := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &c)
	require.Nil(t, err, "parse error")

	assert.Equal(t, ".", c.DataDirectory, "data directory")
	assert.Equal(t, uint64(7), c.ClientRPC.MaximumConnections, "maximum connections")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.ClientRPC.Listen, "listen")
	assert.True(t, c.ClientRPC.EnableLoader, "enable loader")
	assert.Equal(t, "CERTIFICATE", c.Certificate, "certificate from file")
}

func TestParseNotStruct(t *testing.T) {
	fileName := write(t, "a.conf", "return {}")

	var s string
	assert.Equal(t, fault.ConfigurationIsNotStruct, configuration.ParseConfigurationFile(fileName, &s), "string pointer")
	assert.Equal(t, fault.ConfigurationIsNotStruct, configuration.ParseConfigurationFile(fileName, testConfiguration{}), "not a pointer")
}

func TestParseErrors(t *testing.T) {
	c := testConfiguration{}

	err := configuration.ParseConfigurationFile(write(t, "bad.conf", "return {"), &c)
	assert.NotNil(t, err, "syntax error")

	err = configuration.ParseConfigurationFile(write(t, "nil.conf", "return 42"), &c)
	assert.True(t, errors.Is(err, fault.MissingParameters), "not a table")

	err = configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "missing.conf"), &c)
	assert.NotNil(t, err, "missing file")
}
