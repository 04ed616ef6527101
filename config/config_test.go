// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.

// Permission is hereby granted, free of charge, to any person obtaining a copy of this
// software and associated documentation files (the "Software"), to deal in the Software
// without restriction, including without limitation the rights to use, copy, modify,
// merge, publish, distribute, sublicense, and/or sell copies of the Software, and to
// permit persons to whom the Software is furnished to do so.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED,
// INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A
// PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT
// HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
// OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE
// SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTopology(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "topology.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeTopology(t, `
region: us-west-2
azSuffixes: [a, b]
vpcCidr: 172.16.0.0/16
publicSubnetCidrs: [172.16.1.0/24, 172.16.2.0/24]
privateSubnetCidrs: [172.16.11.0/24, 172.16.12.0/24]
network: managed
compute: nat-gateway
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "us-west-2", cfg.Region)
	assert.Equal(t, "172.16.0.0/16", cfg.VpcCidr)
	assert.Equal(t, NetworkManaged, cfg.Network)
	assert.Equal(t, ComputeNatGateway, cfg.Compute)
	// Untouched keys keep their defaults.
	assert.Equal(t, Default().InstanceType, cfg.InstanceType)
	assert.Equal(t, Default().KeyPairName, cfg.KeyPairName)
}

func TestLoadRejectsUnknownVariants(t *testing.T) {
	path := writeTopology(t, "compute: fargate\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown compute variant")
}

func TestLoadRejectsSubnetArityMismatch(t *testing.T) {
	path := writeTopology(t, `
azSuffixes: [a, c, d]
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "public subnet CIDRs")
}

func TestLoadRejectsMalformedYaml(t *testing.T) {
	path := writeTopology(t, "region: [unterminated\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestAvailabilityZones(t *testing.T) {
	cfg := Default()
	assert.Equal(t, []string{"ap-northeast-1a", "ap-northeast-1c"}, cfg.AvailabilityZones())
}
