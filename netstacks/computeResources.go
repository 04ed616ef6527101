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
	"github.com/aws/jsii-runtime-go"

	"vpclab/config"
)

// Compute stacks work against an imported VPC id rather than a Vpc
// construct, so everything here stays at the Cfn level.

func newKeyPair(stack awscdk.Stack, cfg *config.Config) ec2.CfnKeyPair {
	return ec2.NewCfnKeyPair(stack, jsii.String("KeyPair"), &ec2.CfnKeyPairProps{
		KeyName: jsii.String(cfg.KeyPairName),
	})
}

func newBastionSecurityGroup(stack awscdk.Stack, vpcId *string, cfg *config.Config) ec2.CfnSecurityGroup {
	return ec2.NewCfnSecurityGroup(stack, jsii.String("BastionSg"), &ec2.CfnSecurityGroupProps{
		GroupDescription: jsii.String("SSH entry point for private subnet access"),
		VpcId:            vpcId,
		SecurityGroupIngress: []interface{}{
			&ec2.CfnSecurityGroup_IngressProperty{
				IpProtocol:  jsii.String("tcp"),
				FromPort:    jsii.Number(22),
				ToPort:      jsii.Number(22),
				CidrIp:      jsii.String(cfg.SSHIngressCidr),
				Description: jsii.String("SSH"),
			},
		},
	})
}

// newNatSecurityGroup admits anything originating inside the VPC; the NAT
// instance forwards it all.
func newNatSecurityGroup(stack awscdk.Stack, vpcId *string, vpcCidr *string) ec2.CfnSecurityGroup {
	return ec2.NewCfnSecurityGroup(stack, jsii.String("NatSg"), &ec2.CfnSecurityGroupProps{
		GroupDescription: jsii.String("Outbound forwarding for private subnets"),
		VpcId:            vpcId,
		SecurityGroupIngress: []interface{}{
			&ec2.CfnSecurityGroup_IngressProperty{
				IpProtocol:  jsii.String("-1"),
				CidrIp:      vpcCidr,
				Description: jsii.String("all traffic from inside the VPC"),
			},
		},
	})
}

type instanceProps struct {
	name          string
	ami           string
	subnetId      *string
	securityGroup ec2.CfnSecurityGroup
	keyPair       ec2.CfnKeyPair

	// disableSourceDestCheck is set for NAT instances only; they forward
	// packets that are neither from nor for themselves.
	disableSourceDestCheck bool
}

func newCfnInstance(stack awscdk.Stack, id string, cfg *config.Config, props *instanceProps) ec2.CfnInstance {
	return ec2.NewCfnInstance(stack, jsii.String(id), &ec2.CfnInstanceProps{
		ImageId:          jsii.String(props.ami),
		InstanceType:     jsii.String(cfg.InstanceType),
		KeyName:          props.keyPair.Ref(),
		SubnetId:         props.subnetId,
		SecurityGroupIds: &[]*string{props.securityGroup.AttrGroupId()},
		SourceDestCheck:  jsii.Bool(!props.disableSourceDestCheck),
		Tags: &[]*awscdk.CfnTag{
			{
				Key:   jsii.String("Name"),
				Value: jsii.String(props.name),
			},
		},
	})
}

// addPrivateDefaultRoutes points 0.0.0.0/0 of every imported private route
// table at the given NAT target, instance or gateway.
type natTarget struct {
	instanceId   *string
	natGatewayId *string
}

func addPrivateDefaultRoutes(stack awscdk.Stack, networkStackName string, cfg *config.Config, target *natTarget) {
	for i, suffix := range cfg.AzSuffixes {
		ec2.NewCfnRoute(stack, jsii.String(fmt.Sprintf("PrivateDefaultRoute%s", suffix)), &ec2.CfnRouteProps{
			RouteTableId:         importedPrivateRouteTableId(networkStackName, i),
			DestinationCidrBlock: jsii.String("0.0.0.0/0"),
			InstanceId:           target.instanceId,
			NatGatewayId:         target.natGatewayId,
		})
	}
}
