package main

import (
	goflag "flag"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/gridastar/config"
)

// rootOptions are flags shared by every sub-command.
type rootOptions struct {
	scenario string
	plain    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "gridpath",
		Short:        "Find minimum-cost paths on grid scenarios with A*",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.scenario, "scenario", "s", "", "scenario file (YAML or JSON)")
	cmd.PersistentFlags().BoolVar(&opts.plain, "plain", false, "disable colors")
	_ = cmd.MarkPersistentFlagRequired("scenario")

	fs := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(fs)
	cmd.PersistentFlags().AddGoFlagSet(fs)

	cmd.AddCommand(newFindCmd(opts), newNeighborsCmd(opts), newRegionsCmd(opts))

	return cmd
}

// load reads the scenario named by --scenario.
func (o *rootOptions) load() (config.Scenario, error) {
	return config.Load(o.scenario)
}
