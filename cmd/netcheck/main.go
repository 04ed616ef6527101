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

// netcheck surfaces what the deployed stacks actually published: the
// cross-stack exports and the instances running inside the VPC.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	cftypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vpclab/internal/inspect"
)

var region string

func main() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))

	root := &cobra.Command{
		Use:           "netcheck",
		Short:         "Inspect deployed network topology stacks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&region, "region", "", "AWS region (defaults to the SDK resolution chain)")

	root.AddCommand(exportsCommand(), instancesCommand())

	if err := root.Execute(); err != nil {
		zap.L().Error("netcheck failed", zap.Error(err))
		os.Exit(1)
	}
}

func exportsCommand() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "exports",
		Short: "List CloudFormation exports, optionally filtered by stack name prefix",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadAwsConfig(ctx)
			if err != nil {
				return err
			}
			client := cloudformation.NewFromConfig(cfg)

			var exports []cftypes.Export
			paginator := cloudformation.NewListExportsPaginator(client, &cloudformation.ListExportsInput{})
			for paginator.HasMorePages() {
				page, err := paginator.NextPage(ctx)
				if err != nil {
					return errors.Wrap(err, "listing exports")
				}
				exports = append(exports, page.Exports...)
			}

			fmt.Print(inspect.FormatExports(inspect.FilterExports(exports, prefix)))
			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "only exports whose name starts with this prefix")
	return cmd
}

func instancesCommand() *cobra.Command {
	var vpcID string

	cmd := &cobra.Command{
		Use:   "instances",
		Short: "List EC2 instances, optionally restricted to one VPC",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadAwsConfig(ctx)
			if err != nil {
				return err
			}
			client := ec2.NewFromConfig(cfg)

			input := &ec2.DescribeInstancesInput{}
			if vpcID != "" {
				input.Filters = []ec2types.Filter{
					{
						Name:   aws.String("vpc-id"),
						Values: []string{vpcID},
					},
				}
			}

			var reservations []ec2types.Reservation
			paginator := ec2.NewDescribeInstancesPaginator(client, input)
			for paginator.HasMorePages() {
				page, err := paginator.NextPage(ctx)
				if err != nil {
					return errors.Wrap(err, "describing instances")
				}
				reservations = append(reservations, page.Reservations...)
			}

			fmt.Print(inspect.FormatInstances(inspect.InstanceRows(reservations)))
			return nil
		},
	}
	cmd.Flags().StringVar(&vpcID, "vpc", "", "VPC id to filter on, e.g. the Network-VpcId export")
	return cmd
}

func loadAwsConfig(ctx context.Context) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return cfg, errors.Wrap(err, "loading AWS configuration")
	}
	return cfg, nil
}
