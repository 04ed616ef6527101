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

package netstacks_test

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/require"

	"vpclab/config"
	"vpclab/netstacks"
)

func TestManagedNetworkStackMatchesExportContract(t *testing.T) {
	app := awscdk.NewApp(nil)
	cfg := config.Default()
	cfg.Network = config.NetworkManaged

	stack := netstacks.ManagedNetworkStack(app, "Network", &netstacks.ManagedNetworkStackProps{
		StackProps: testEnvProps(cfg),
		Config:     cfg,
	})
	require.NotNil(t, stack)

	template := assertions.Template_FromStack(stack, nil)

	template.ResourceCountIs(jsii.String("AWS::EC2::VPC"), jsii.Number(1))
	template.HasResourceProperties(jsii.String("AWS::EC2::VPC"), map[string]interface{}{
		"CidrBlock": cfg.VpcCidr,
	})

	// Both variants publish the same export names so the compute stacks
	// never know which one is deployed.
	for _, name := range []string{
		"Network-VpcId",
		"Network-VpcCidr",
		"Network-PublicSubnetIds",
		"Network-PrivateSubnetIds",
		"Network-PrivateRouteTableIds",
	} {
		template.HasOutput(jsii.String("*"), map[string]interface{}{
			"Export": map[string]interface{}{"Name": name},
		})
	}
}

func TestManagedNetworkStackLeavesEgressToComputeStack(t *testing.T) {
	app := awscdk.NewApp(nil)
	cfg := config.Default()
	cfg.Network = config.NetworkManaged

	stack := netstacks.ManagedNetworkStack(app, "Network", &netstacks.ManagedNetworkStackProps{
		StackProps: testEnvProps(cfg),
		Config:     cfg,
	})

	template := assertions.Template_FromStack(stack, nil)

	template.ResourceCountIs(jsii.String("AWS::EC2::NatGateway"), jsii.Number(0))
	template.ResourceCountIs(jsii.String("AWS::EC2::Subnet"), jsii.Number(4))
}
