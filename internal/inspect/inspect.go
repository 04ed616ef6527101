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

// Package inspect turns CloudFormation export and EC2 instance API shapes
// into the rows netcheck prints. It holds no AWS calls so it can be tested
// without credentials.
package inspect

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	cftypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

type Export struct {
	Name  string
	Value string
}

// FilterExports keeps exports whose name starts with prefix, sorted by
// name. An empty prefix keeps everything.
func FilterExports(exports []cftypes.Export, prefix string) []Export {
	var out []Export
	for _, e := range exports {
		name := deref(e.Name)
		if prefix != "" && !strings.HasPrefix(name, prefix) {
			continue
		}
		out = append(out, Export{Name: name, Value: deref(e.Value)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func FormatExports(exports []Export) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVALUE")
	for _, e := range exports {
		fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Value)
	}
	w.Flush()
	return b.String()
}

type InstanceRow struct {
	ID        string
	Name      string
	State     string
	PublicIP  string
	PrivateIP string
}

// InstanceRows flattens DescribeInstances reservations, sorted by the Name
// tag with the instance id as tie breaker.
func InstanceRows(reservations []ec2types.Reservation) []InstanceRow {
	var rows []InstanceRow
	for _, r := range reservations {
		for _, inst := range r.Instances {
			row := InstanceRow{
				ID:        deref(inst.InstanceId),
				PublicIP:  deref(inst.PublicIpAddress),
				PrivateIP: deref(inst.PrivateIpAddress),
			}
			if inst.State != nil {
				row.State = string(inst.State.Name)
			}
			for _, tag := range inst.Tags {
				if deref(tag.Key) == "Name" {
					row.Name = deref(tag.Value)
				}
			}
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Name != rows[j].Name {
			return rows[i].Name < rows[j].Name
		}
		return rows[i].ID < rows[j].ID
	})
	return rows
}

func FormatInstances(rows []InstanceRow) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTATE\tPUBLIC IP\tPRIVATE IP")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Name, r.State, orDash(r.PublicIP), orDash(r.PrivateIP))
	}
	w.Flush()
	return b.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
