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

// Package netstacks declares the network and compute stacks. The two stack
// families are wired to each other only through named CloudFormation
// exports: the network stack publishes its VPC id and comma-joined subnet
// and route table id lists under "{StackName}-<Name>" export names, and the
// compute stacks read them back with Fn.importValue plus Fn.split/Fn.select.
package netstacks

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
)

// Export name suffixes shared by every network stack variant.
const (
	exportVpcId                = "VpcId"
	exportVpcCidr              = "VpcCidr"
	exportPublicSubnetIds      = "PublicSubnetIds"
	exportPrivateSubnetIds     = "PrivateSubnetIds"
	exportPrivateRouteTableIds = "PrivateRouteTableIds"
)

const idListSeparator = ","

type networkValues struct {
	vpcId                *string
	vpcCidr              *string
	publicSubnetIds      *[]*string
	privateSubnetIds     *[]*string
	privateRouteTableIds *[]*string
}

func exportName(stackName, suffix string) string {
	return fmt.Sprintf("%s-%s", stackName, suffix)
}

// exportNetworkValues publishes the cross-stack contract of a network
// stack. List values are joined into a single string export; consumers
// split them back apart by index.
func exportNetworkValues(stack awscdk.Stack, stackName string, values *networkValues) {
	awscdk.NewCfnOutput(stack, jsii.String("VpcIdOutput"), &awscdk.CfnOutputProps{
		Value:      values.vpcId,
		ExportName: jsii.String(exportName(stackName, exportVpcId)),
	})

	awscdk.NewCfnOutput(stack, jsii.String("VpcCidrOutput"), &awscdk.CfnOutputProps{
		Value:      values.vpcCidr,
		ExportName: jsii.String(exportName(stackName, exportVpcCidr)),
	})

	awscdk.NewCfnOutput(stack, jsii.String("PublicSubnetIdsOutput"), &awscdk.CfnOutputProps{
		Value:      awscdk.Fn_Join(jsii.String(idListSeparator), values.publicSubnetIds),
		ExportName: jsii.String(exportName(stackName, exportPublicSubnetIds)),
	})

	awscdk.NewCfnOutput(stack, jsii.String("PrivateSubnetIdsOutput"), &awscdk.CfnOutputProps{
		Value:      awscdk.Fn_Join(jsii.String(idListSeparator), values.privateSubnetIds),
		ExportName: jsii.String(exportName(stackName, exportPrivateSubnetIds)),
	})

	awscdk.NewCfnOutput(stack, jsii.String("PrivateRouteTableIdsOutput"), &awscdk.CfnOutputProps{
		Value:      awscdk.Fn_Join(jsii.String(idListSeparator), values.privateRouteTableIds),
		ExportName: jsii.String(exportName(stackName, exportPrivateRouteTableIds)),
	})
}
