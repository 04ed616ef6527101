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
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	ec2 "github.com/aws/aws-cdk-go/awscdk/v2/awsec2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"vpclab/config"
)

type NetworkStackProps struct {
	awscdk.StackProps
	Config *config.Config
}

// NetworkStack declares the VPC at the CloudFormation resource level: one
// public and one private subnet per availability zone, an internet gateway
// with a default route for the public route table, and one route table per
// private subnet. The private route tables carry no default route; the
// compute stack that owns the NAT path adds it.
func NetworkStack(scope constructs.Construct, id string, props *NetworkStackProps) awscdk.Stack {

	var sprops awscdk.StackProps
	if props != nil {
		sprops = props.StackProps
	}
	stack := awscdk.NewStack(scope, &id, &sprops)
	cfg := props.Config

	vpc := ec2.NewCfnVPC(stack, jsii.String("Vpc"), &ec2.CfnVPCProps{
		CidrBlock:          jsii.String(cfg.VpcCidr),
		EnableDnsSupport:   jsii.Bool(true),
		EnableDnsHostnames: jsii.Bool(true),
		Tags: &[]*awscdk.CfnTag{
			{
				Key:   jsii.String("Name"),
				Value: jsii.String(fmt.Sprintf("%s-vpc", id)),
			},
		},
	})

	igw := ec2.NewCfnInternetGateway(stack, jsii.String("InternetGateway"), &ec2.CfnInternetGatewayProps{
		Tags: &[]*awscdk.CfnTag{
			{
				Key:   jsii.String("Name"),
				Value: jsii.String(fmt.Sprintf("%s-igw", id)),
			},
		},
	})

	igwAttachment := ec2.NewCfnVPCGatewayAttachment(stack, jsii.String("IgwAttachment"), &ec2.CfnVPCGatewayAttachmentProps{
		VpcId:             vpc.Ref(),
		InternetGatewayId: igw.Ref(),
	})

	publicRt := ec2.NewCfnRouteTable(stack, jsii.String("PublicRouteTable"), &ec2.CfnRouteTableProps{
		VpcId: vpc.Ref(),
		Tags: &[]*awscdk.CfnTag{
			{
				Key:   jsii.String("Name"),
				Value: jsii.String(fmt.Sprintf("%s-public-rt", id)),
			},
		},
	})

	// The default route must not be created before the gateway is attached.
	ec2.NewCfnRoute(stack, jsii.String("PublicDefaultRoute"), &ec2.CfnRouteProps{
		RouteTableId:         publicRt.Ref(),
		DestinationCidrBlock: jsii.String("0.0.0.0/0"),
		GatewayId:            igw.Ref(),
	}).AddDependency(igwAttachment)

	var publicSubnetIds []*string
	var privateSubnetIds []*string
	var privateRtIds []*string

	for i, zone := range cfg.AvailabilityZones() {
		suffix := cfg.AzSuffixes[i]

		publicSubnet := ec2.NewCfnSubnet(stack, jsii.String(fmt.Sprintf("PublicSubnet%s", suffix)), &ec2.CfnSubnetProps{
			VpcId:               vpc.Ref(),
			CidrBlock:           jsii.String(cfg.PublicSubnetCidrs[i]),
			AvailabilityZone:    jsii.String(zone),
			MapPublicIpOnLaunch: jsii.Bool(true),
			Tags: &[]*awscdk.CfnTag{
				{
					Key:   jsii.String("Name"),
					Value: jsii.String(fmt.Sprintf("%s-public-%s", id, suffix)),
				},
			},
		})
		publicSubnetIds = append(publicSubnetIds, publicSubnet.Ref())

		ec2.NewCfnSubnetRouteTableAssociation(stack, jsii.String(fmt.Sprintf("PublicRtAssoc%s", suffix)), &ec2.CfnSubnetRouteTableAssociationProps{
			SubnetId:     publicSubnet.Ref(),
			RouteTableId: publicRt.Ref(),
		})

		privateSubnet := ec2.NewCfnSubnet(stack, jsii.String(fmt.Sprintf("PrivateSubnet%s", suffix)), &ec2.CfnSubnetProps{
			VpcId:            vpc.Ref(),
			CidrBlock:        jsii.String(cfg.PrivateSubnetCidrs[i]),
			AvailabilityZone: jsii.String(zone),
			Tags: &[]*awscdk.CfnTag{
				{
					Key:   jsii.String("Name"),
					Value: jsii.String(fmt.Sprintf("%s-private-%s", id, suffix)),
				},
			},
		})
		privateSubnetIds = append(privateSubnetIds, privateSubnet.Ref())

		privateRt := ec2.NewCfnRouteTable(stack, jsii.String(fmt.Sprintf("PrivateRouteTable%s", suffix)), &ec2.CfnRouteTableProps{
			VpcId: vpc.Ref(),
			Tags: &[]*awscdk.CfnTag{
				{
					Key:   jsii.String("Name"),
					Value: jsii.String(fmt.Sprintf("%s-private-rt-%s", id, suffix)),
				},
			},
		})
		privateRtIds = append(privateRtIds, privateRt.Ref())

		ec2.NewCfnSubnetRouteTableAssociation(stack, jsii.String(fmt.Sprintf("PrivateRtAssoc%s", suffix)), &ec2.CfnSubnetRouteTableAssociationProps{
			SubnetId:     privateSubnet.Ref(),
			RouteTableId: privateRt.Ref(),
		})
	}

	exportNetworkValues(stack, id, &networkValues{
		vpcId:                vpc.Ref(),
		vpcCidr:              jsii.String(cfg.VpcCidr),
		publicSubnetIds:      &publicSubnetIds,
		privateSubnetIds:     &privateSubnetIds,
		privateRouteTableIds: &privateRtIds,
	})

	return stack
}
