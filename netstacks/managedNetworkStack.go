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

package netstacks

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	ec2 "github.com/aws/aws-cdk-go/awscdk/v2/awsec2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"vpclab/config"
)

type ManagedNetworkStackProps struct {
	awscdk.StackProps
	Config *config.Config
}

// ManagedNetworkStack is the later iteration of the network stack built on
// the L2 Vpc construct. Subnet CIDRs are carved by the construct instead of
// being listed in the topology file, so only the VPC CIDR and the zone
// count carry over from the configuration. It publishes the same exports as
// NetworkStack, which keeps the compute stacks oblivious to the variant.
// NAT gateways stay at zero here as well; egress for the private subnets is
// owned by the compute stack.
func ManagedNetworkStack(scope constructs.Construct, id string, props *ManagedNetworkStackProps) awscdk.Stack {

	var sprops awscdk.StackProps
	if props != nil {
		sprops = props.StackProps
	}
	stack := awscdk.NewStack(scope, &id, &sprops)
	cfg := props.Config

	vpc := ec2.NewVpc(stack, jsii.String("Vpc"), &ec2.VpcProps{
		MaxAzs:             jsii.Number(float64(len(cfg.AzSuffixes))),
		IpAddresses:        ec2.IpAddresses_Cidr(jsii.String(cfg.VpcCidr)),
		EnableDnsSupport:   jsii.Bool(true),
		EnableDnsHostnames: jsii.Bool(true),
		NatGateways:        jsii.Number(0),
		SubnetConfiguration: &[]*ec2.SubnetConfiguration{
			{
				Name:       jsii.String("public"),
				SubnetType: ec2.SubnetType_PUBLIC,
				CidrMask:   jsii.Number(24),
			},
			{
				Name:       jsii.String("private"),
				SubnetType: ec2.SubnetType_PRIVATE_ISOLATED,
				CidrMask:   jsii.Number(24),
			},
		},
	})

	publicSubnetIds := vpc.SelectSubnets(&ec2.SubnetSelection{
		SubnetType: ec2.SubnetType_PUBLIC,
	}).SubnetIds

	privateSubnets := vpc.SelectSubnetObjects(&ec2.SubnetSelection{
		SubnetType: ec2.SubnetType_PRIVATE_ISOLATED,
	})

	var privateSubnetIds []*string
	var privateRtIds []*string
	for _, subnet := range *privateSubnets {
		privateSubnetIds = append(privateSubnetIds, subnet.SubnetId())
		privateRtIds = append(privateRtIds, subnet.RouteTable().RouteTableId())
	}

	exportNetworkValues(stack, id, &networkValues{
		vpcId:                vpc.VpcId(),
		vpcCidr:              vpc.VpcCidrBlock(),
		publicSubnetIds:      publicSubnetIds,
		privateSubnetIds:     &privateSubnetIds,
		privateRouteTableIds: &privateRtIds,
	})

	return stack
}
