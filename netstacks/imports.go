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
	"github.com/aws/jsii-runtime-go"
)

// importedValue reads a scalar export published by the named network stack.
func importedValue(networkStackName, suffix string) *string {
	return awscdk.Fn_ImportValue(jsii.String(exportName(networkStackName, suffix)))
}

func importedVpcId(networkStackName string) *string {
	return importedValue(networkStackName, exportVpcId)
}

func importedVpcCidr(networkStackName string) *string {
	return importedValue(networkStackName, exportVpcCidr)
}

// importedListValue selects one element of a comma-joined list export. The
// element count is not recoverable from the string, so callers index with
// the availability zone count they configured the network stack with.
func importedListValue(networkStackName, suffix string, index int) *string {
	list := awscdk.Fn_Split(jsii.String(idListSeparator), importedValue(networkStackName, suffix), nil)
	return awscdk.Fn_Select(jsii.Number(float64(index)), list)
}

func importedPublicSubnetId(networkStackName string, index int) *string {
	return importedListValue(networkStackName, exportPublicSubnetIds, index)
}

func importedPrivateSubnetId(networkStackName string, index int) *string {
	return importedListValue(networkStackName, exportPrivateSubnetIds, index)
}

func importedPrivateRouteTableId(networkStackName string, index int) *string {
	return importedListValue(networkStackName, exportPrivateRouteTableIds, index)
}
