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

func testEnvProps(cfg *config.Config) awscdk.StackProps {
	return awscdk.StackProps{
		Env: &awscdk.Environment{
			Account: jsii.String("123456789012"),
			Region:  jsii.String(cfg.Region),
		},
	}
}

func TestNetworkStackDeclaresTopology(t *testing.T) {
	app := awscdk.NewApp(nil)
	cfg := config.Default()

	stack := netstacks.NetworkStack(app, "Network", &netstacks.NetworkStackProps{
		StackProps: testEnvProps(cfg),
		Config:     cfg,
	})
	require.NotNil(t, stack)

	template := assertions.Template_FromStack(stack, nil)

	template.ResourceCountIs(jsii.String("AWS::EC2::VPC"), jsii.Number(1))
	template.HasResourceProperties(jsii.String("AWS::EC2::VPC"), map[string]interface{}{
		"CidrBlock":          cfg.VpcCidr,
		"EnableDnsSupport":   true,
		"EnableDnsHostnames": true,
	})

	// One public and one private subnet per configured zone.
	template.ResourceCountIs(jsii.String("AWS::EC2::Subnet"), jsii.Number(4))
	template.HasResourceProperties(jsii.String("AWS::EC2::Subnet"), map[string]interface{}{
		"CidrBlock":           cfg.PublicSubnetCidrs[0],
		"AvailabilityZone":    cfg.Region + "a",
		"MapPublicIpOnLaunch": true,
	})
	template.HasResourceProperties(jsii.String("AWS::EC2::Subnet"), map[string]interface{}{
		"CidrBlock":        cfg.PrivateSubnetCidrs[1],
		"AvailabilityZone": cfg.Region + "c",
	})

	template.ResourceCountIs(jsii.String("AWS::EC2::InternetGateway"), jsii.Number(1))
	template.ResourceCountIs(jsii.String("AWS::EC2::VPCGatewayAttachment"), jsii.Number(1))

	// One public route table plus one private table per zone.
	template.ResourceCountIs(jsii.String("AWS::EC2::RouteTable"), jsii.Number(3))
	template.ResourceCountIs(jsii.String("AWS::EC2::SubnetRouteTableAssociation"), jsii.Number(4))
}

func TestNetworkStackOnlyRoutesPublicTrafficToInternetGateway(t *testing.T) {
	app := awscdk.NewApp(nil)
	cfg := config.Default()

	stack := netstacks.NetworkStack(app, "Network", &netstacks.NetworkStackProps{
		StackProps: testEnvProps(cfg),
		Config:     cfg,
	})

	template := assertions.Template_FromStack(stack, nil)

	// The private route tables get their default route from the compute
	// stack, so the network stack declares exactly one route.
	template.ResourceCountIs(jsii.String("AWS::EC2::Route"), jsii.Number(1))
	template.HasResourceProperties(jsii.String("AWS::EC2::Route"), map[string]interface{}{
		"DestinationCidrBlock": "0.0.0.0/0",
		"GatewayId":            assertions.Match_AnyValue(),
	})
}

func TestNetworkStackPublishesNamedExports(t *testing.T) {
	app := awscdk.NewApp(nil)
	cfg := config.Default()

	stack := netstacks.NetworkStack(app, "Network", &netstacks.NetworkStackProps{
		StackProps: testEnvProps(cfg),
		Config:     cfg,
	})

	template := assertions.Template_FromStack(stack, nil)

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

	// Subnet id lists travel as a single comma-joined string.
	outputs := template.FindOutputs(jsii.String("PublicSubnetIdsOutput"), nil)
	require.Len(t, *outputs, 1)
}
