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
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"vpclab/config"
)

type InstanceStackProps struct {
	awscdk.StackProps
	NetworkStackName string
	Config           *config.Config
}

// InstanceStack is the first compute iteration: a single SSH-reachable
// instance in the first public subnet of the imported network.
func InstanceStack(scope constructs.Construct, id string, props *InstanceStackProps) awscdk.Stack {

	var sprops awscdk.StackProps
	if props != nil {
		sprops = props.StackProps
	}
	stack := awscdk.NewStack(scope, &id, &sprops)
	cfg := props.Config

	vpcId := importedVpcId(props.NetworkStackName)
	keyPair := newKeyPair(stack, cfg)
	sg := newBastionSecurityGroup(stack, vpcId, cfg)

	instance := newCfnInstance(stack, "Instance", cfg, &instanceProps{
		name:          id + "-instance",
		ami:           cfg.BastionAmi,
		subnetId:      importedPublicSubnetId(props.NetworkStackName, 0),
		securityGroup: sg,
		keyPair:       keyPair,
	})

	awscdk.NewCfnOutput(stack, jsii.String("InstanceId"), &awscdk.CfnOutputProps{
		Value: instance.Ref(),
	})
	awscdk.NewCfnOutput(stack, jsii.String("InstancePublicIp"), &awscdk.CfnOutputProps{
		Value: instance.AttrPublicIp(),
	})

	return stack
}
