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

type BastionNatGatewayStackProps struct {
	awscdk.StackProps
	NetworkStackName string
	Config           *config.Config
}

// BastionNatGatewayStack is the third compute iteration. The bastion and
// the NAT instance from the previous iteration are still declared, but the
// private default routes now go through a managed NAT gateway with its own
// Elastic IP, so the NAT instance no longer carries traffic.
func BastionNatGatewayStack(scope constructs.Construct, id string, props *BastionNatGatewayStackProps) awscdk.Stack {

	var sprops awscdk.StackProps
	if props != nil {
		sprops = props.StackProps
	}
	stack := awscdk.NewStack(scope, &id, &sprops)
	cfg := props.Config

	vpcId := importedVpcId(props.NetworkStackName)
	publicSubnetId := importedPublicSubnetId(props.NetworkStackName, 0)
	keyPair := newKeyPair(stack, cfg)

	bastion := newCfnInstance(stack, "Bastion", cfg, &instanceProps{
		name:          id + "-bastion",
		ami:           cfg.BastionAmi,
		subnetId:      publicSubnetId,
		securityGroup: newBastionSecurityGroup(stack, vpcId, cfg),
		keyPair:       keyPair,
	})

	nat := newCfnInstance(stack, "NatInstance", cfg, &instanceProps{
		name:                   id + "-nat",
		ami:                    cfg.NatAmi,
		subnetId:               publicSubnetId,
		securityGroup:          newNatSecurityGroup(stack, vpcId, importedVpcCidr(props.NetworkStackName)),
		keyPair:                keyPair,
		disableSourceDestCheck: true,
	})

	eip := ec2.NewCfnEIP(stack, jsii.String("NatEip"), &ec2.CfnEIPProps{
		Domain: jsii.String("vpc"),
	})

	natGateway := ec2.NewCfnNatGateway(stack, jsii.String("NatGateway"), &ec2.CfnNatGatewayProps{
		SubnetId:     publicSubnetId,
		AllocationId: eip.AttrAllocationId(),
		Tags: &[]*awscdk.CfnTag{
			{
				Key:   jsii.String("Name"),
				Value: jsii.String(id + "-natgw"),
			},
		},
	})

	addPrivateDefaultRoutes(stack, props.NetworkStackName, cfg, &natTarget{
		natGatewayId: natGateway.Ref(),
	})

	awscdk.NewCfnOutput(stack, jsii.String("BastionPublicIp"), &awscdk.CfnOutputProps{
		Value: bastion.AttrPublicIp(),
	})
	awscdk.NewCfnOutput(stack, jsii.String("NatInstanceId"), &awscdk.CfnOutputProps{
		Value: nat.Ref(),
	})
	awscdk.NewCfnOutput(stack, jsii.String("NatGatewayId"), &awscdk.CfnOutputProps{
		Value: natGateway.Ref(),
	})
	awscdk.NewCfnOutput(stack, jsii.String("NatGatewayEip"), &awscdk.CfnOutputProps{
		Value: eip.Ref(),
	})

	return stack
}
