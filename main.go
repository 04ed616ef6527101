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

package main

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"go.uber.org/zap"

	"vpclab/config"
	"vpclab/netstacks"
)

const (
	networkStackName = "Network"
	computeStackName = "Compute"
)

func init() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
}

func main() {
	defer jsii.Close()

	app := awscdk.NewApp(nil)

	cfgPath := "topology.yaml"
	if v, ok := app.Node().TryGetContext(jsii.String("config")).(string); ok && v != "" {
		cfgPath = v
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		zap.L().Fatal("loading topology", zap.Error(err))
	}

	zap.L().Info("synthesizing topology",
		zap.String("network", cfg.Network),
		zap.String("compute", cfg.Compute),
		zap.String("region", cfg.Region),
	)

	env := &awscdk.Environment{
		Region: jsii.String(cfg.Region),
	}
	if cfg.Account != "" {
		env.Account = jsii.String(cfg.Account)
	}
	sprops := awscdk.StackProps{Env: env}

	var network awscdk.Stack
	switch cfg.Network {
	case config.NetworkManaged:
		network = netstacks.ManagedNetworkStack(app, networkStackName, &netstacks.ManagedNetworkStackProps{
			StackProps: sprops,
			Config:     cfg,
		})
	default:
		network = netstacks.NetworkStack(app, networkStackName, &netstacks.NetworkStackProps{
			StackProps: sprops,
			Config:     cfg,
		})
	}

	var compute awscdk.Stack
	switch cfg.Compute {
	case config.ComputeNatInstance:
		compute = netstacks.BastionNatInstanceStack(app, computeStackName, &netstacks.BastionNatInstanceStackProps{
			StackProps:       sprops,
			NetworkStackName: networkStackName,
			Config:           cfg,
		})
	case config.ComputeNatGateway:
		compute = netstacks.BastionNatGatewayStack(app, computeStackName, &netstacks.BastionNatGatewayStackProps{
			StackProps:       sprops,
			NetworkStackName: networkStackName,
			Config:           cfg,
		})
	default:
		compute = netstacks.InstanceStack(app, computeStackName, &netstacks.InstanceStackProps{
			StackProps:       sprops,
			NetworkStackName: networkStackName,
			Config:           cfg,
		})
	}

	// Deploy ordering; the compute stack consumes the network exports.
	compute.AddDependency(network, jsii.String("imports network exports"))

	app.Synth(nil)
}
