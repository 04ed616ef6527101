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

// Package config loads the topology file that selects which network and
// compute stack variant the app synthesizes and carries the hard-coded
// addressing and image parameters for them.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Network stack variants.
const (
	NetworkCfn     = "cfn"
	NetworkManaged = "managed"
)

// Compute stack variants.
const (
	ComputeInstance    = "instance"
	ComputeNatInstance = "nat-instance"
	ComputeNatGateway  = "nat-gateway"
)

type Config struct {
	Account string `yaml:"account"`
	Region  string `yaml:"region"`

	// AzSuffixes are appended to Region to form availability zone names.
	// Subnet CIDR lists must have one entry per suffix.
	AzSuffixes         []string `yaml:"azSuffixes"`
	VpcCidr            string   `yaml:"vpcCidr"`
	PublicSubnetCidrs  []string `yaml:"publicSubnetCidrs"`
	PrivateSubnetCidrs []string `yaml:"privateSubnetCidrs"`

	BastionAmi     string `yaml:"bastionAmi"`
	NatAmi         string `yaml:"natAmi"`
	InstanceType   string `yaml:"instanceType"`
	KeyPairName    string `yaml:"keyPairName"`
	SSHIngressCidr string `yaml:"sshIngressCidr"`

	Network string `yaml:"network"`
	Compute string `yaml:"compute"`
}

// Default returns the topology deployed when no file overrides it: two AZs
// in ap-northeast-1, a /16 VPC with a public and a private /24 per AZ, and
// the Cfn-level network stack paired with the plain instance stack.
func Default() *Config {
	return &Config{
		Region:             "ap-northeast-1",
		AzSuffixes:         []string{"a", "c"},
		VpcCidr:            "10.0.0.0/16",
		PublicSubnetCidrs:  []string{"10.0.10.0/24", "10.0.11.0/24"},
		PrivateSubnetCidrs: []string{"10.0.20.0/24", "10.0.21.0/24"},
		BastionAmi:         "ami-0c3fd0f5d33134a76",
		NatAmi:             "ami-00d29e4cb217ae06b",
		InstanceType:       "t3.micro",
		KeyPairName:        "vpclab-key",
		SSHIngressCidr:     "0.0.0.0/0",
		Network:            NetworkCfn,
		Compute:            ComputeInstance,
	}
}

// Load reads path on top of the defaults. A missing file is not an error;
// the defaults are returned so `cdk synth` works out of the box.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "reading topology file %s", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing topology file %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid topology file %s", path)
	}
	return cfg, nil
}

// Validate checks variant selectors and list arities. Anything beyond that
// (CIDR syntax, AMI existence, instance type availability) is left to
// CloudFormation to reject at deploy time.
func (c *Config) Validate() error {
	switch c.Network {
	case NetworkCfn, NetworkManaged:
	default:
		return errors.Errorf("unknown network variant %q", c.Network)
	}

	switch c.Compute {
	case ComputeInstance, ComputeNatInstance, ComputeNatGateway:
	default:
		return errors.Errorf("unknown compute variant %q", c.Compute)
	}

	if c.Region == "" {
		return errors.New("region must be set")
	}
	if len(c.AzSuffixes) == 0 {
		return errors.New("at least one availability zone suffix is required")
	}
	if len(c.PublicSubnetCidrs) != len(c.AzSuffixes) {
		return errors.Errorf("got %d public subnet CIDRs for %d availability zones",
			len(c.PublicSubnetCidrs), len(c.AzSuffixes))
	}
	if len(c.PrivateSubnetCidrs) != len(c.AzSuffixes) {
		return errors.Errorf("got %d private subnet CIDRs for %d availability zones",
			len(c.PrivateSubnetCidrs), len(c.AzSuffixes))
	}
	return nil
}

// AvailabilityZones returns the full zone names, region plus suffix.
func (c *Config) AvailabilityZones() []string {
	zones := make([]string, 0, len(c.AzSuffixes))
	for _, suffix := range c.AzSuffixes {
		zones = append(zones, c.Region+suffix)
	}
	return zones
}
