/*
Copyright © 2021 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/golang/glog"
	"github.com/kikimo/toadjacency/pkg/adjacency"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "toadjacency"

var cfgFile string

// rootCmd converts one edge file. It has no subcommands, so its single
// argument is always a path.
var rootCmd = &cobra.Command{
	Use:   "toadjacency <edges-file>",
	Short: "Convert a source,target,type edge list into adjacency lists",
	Long: `Reads an edge list with one source,target,type triple per line and
prints one line per node: the node followed by the targets of its outgoing
edges, in input order. Nodes that only appear as targets are printed alone.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// glog flags are parsed by cobra through pflag, mark the go flag set
		// parsed so glog does not complain.
		return flag.CommandLine.Parse([]string{})
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		order, err := adjacency.ParseOrder(viper.GetString("order"))
		if err != nil {
			return err
		}

		return runToAdjacency(cmd.OutOrStdout(), args[0], order, viper.GetBool("require-int-ids"))
	},
}

func runToAdjacency(w io.Writer, path string, order adjacency.Order, intIDs bool) error {
	m, err := adjacency.BuildFile(path)
	if err != nil {
		return err
	}

	if intIDs {
		if err := m.CheckIntIDs(); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	glog.V(1).Infof("writing %d nodes in %s order", m.Len(), order)
	return m.Print(w, order)
}

// Execute runs the root command and exits with status 1 on any error.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		glog.Exitf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.toadjacency.yaml)")
	rootCmd.PersistentFlags().String("order", adjacency.InsertionOrder.String(), "node output order: insertion or sorted")
	rootCmd.PersistentFlags().Bool("require-int-ids", false, "fail unless every node id is a 32-bit integer")
	cobra.CheckErr(viper.BindPFlag("order", rootCmd.PersistentFlags().Lookup("order")))
	cobra.CheckErr(viper.BindPFlag("require-int-ids", rootCmd.PersistentFlags().Lookup("require-int-ids")))

	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			glog.V(1).Infof("no home directory, skipping config lookup: %+v", err)
		} else {
			// Search config in home directory with name ".toadjacency" (without extension).
			viper.AddConfigPath(home)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".toadjacency")
		}
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
