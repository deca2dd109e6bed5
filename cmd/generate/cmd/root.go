/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/golang/glog"
	"github.com/kikimo/toadjacency/pkg/edgegen"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/time/rate"
)

type GenerateOpts struct {
	vertexes int
	edgeType string
	batch    int
	rate     float64
}

var generateOpts GenerateOpts

// rootCmd represents the generate command
var rootCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a complete directed edge list over N vertexes",
	Long: `Prints source,target,type lines for every ordered vertex pair
(self-loops included), suitable as input for toadjacency.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return flag.CommandLine.Parse([]string{})
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		return runGenerate(ctx, cmd.OutOrStdout(), generateOpts)
	},
}

func runGenerate(ctx context.Context, w io.Writer, opts GenerateOpts) error {
	if opts.batch <= 0 {
		return fmt.Errorf("batch must be positive, got %d", opts.batch)
	}

	// the type lands in the third comma-separated field of a line
	if strings.ContainsAny(opts.edgeType, ",\r\n") {
		return fmt.Errorf("edge type must not contain commas or line breaks: %q", opts.edgeType)
	}

	var limiter *rate.Limiter
	if opts.rate > 0 {
		burst := opts.batch
		if float64(burst) < opts.rate {
			burst = int(opts.rate)
		}
		limiter = rate.NewLimiter(rate.Limit(opts.rate), burst)
	}

	bw := bufio.NewWriter(w)
	vs := edgegen.NewVertexStore(opts.vertexes)
	written := 0
	for {
		edges := vs.Take(opts.batch)
		if len(edges) == 0 {
			break
		}

		if limiter != nil {
			if err := limiter.WaitN(ctx, len(edges)); err != nil {
				return err
			}
		}

		for _, e := range edges {
			if _, err := fmt.Fprintf(bw, "%d,%d,%s\n", e[0], e[1], opts.edgeType); err != nil {
				return err
			}
		}
		written += len(edges)
		glog.V(2).Infof("generated %d edges, %d left", written, vs.Remaining())
	}

	glog.V(1).Infof("generated %d edges over %d vertexes", written, opts.vertexes)
	return bw.Flush()
}

// Execute runs the generate command. It is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		glog.Exitf("%v", err)
	}
}

func init() {
	rootCmd.Flags().IntVarP(&generateOpts.vertexes, "vertexes", "", 16, "vertexes")
	rootCmd.Flags().StringVarP(&generateOpts.edgeType, "type", "", "known2", "edge type written in the third field")
	rootCmd.Flags().IntVarP(&generateOpts.batch, "batch", "", 64, "edges taken from the vertex store per batch")
	rootCmd.Flags().Float64VarP(&generateOpts.rate, "rate", "", 0, "max edges per second, 0 for unlimited")

	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
}
