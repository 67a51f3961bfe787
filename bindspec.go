package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"docker-bindspec/mounts"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd(out io.Writer) *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:           "bindspec",
		Short:         "Parse and normalize Windows bind mount specs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug || os.Getenv("BINDSPEC_DEBUG") == "1" {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newParseCmd(), newNormalizeCmd(), newSplitCmd())
	return rootCmd
}

func newParseCmd() *cobra.Command {
	var volumeDriver string

	cmd := &cobra.Command{
		Use:   "parse SPEC...",
		Short: "Print the mount point described by each spec",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := mounts.NewWindowsParser()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tSOURCE\tDESTINATION\tMODE\tRW")
			for _, raw := range args {
				mp, err := parser.ParseMountRaw(raw, volumeDriver)
				if err != nil {
					return err
				}
				logrus.WithFields(logrus.Fields{
					"spec":        raw,
					"type":        mp.Type,
					"destination": mp.Destination,
				}).Debug("parsed mount point")

				source := mp.Source
				if source == "" {
					source = mp.Name
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", mp.Type, source, mp.Destination, mp.Mode, mp.RW)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&volumeDriver, "driver", "local", "volume driver recorded for volume mounts")
	return cmd
}

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize SPEC...",
		Short: "Print each spec in canonical form with the access mode filled in",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, raw := range args {
				b, err := mounts.ParseBind(raw)
				if err != nil {
					return err
				}
				logrus.WithField("spec", raw).Debugf("normalized to %s", b)
				fmt.Fprintln(cmd.OutOrStdout(), b.String())
			}
			return nil
		},
	}
}

func newSplitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split SPEC...",
		Short: "Print the source, destination and flags of each spec",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, raw := range args {
				spec, err := mounts.ParseWindowsSpec(raw)
				if err != nil {
					return &mounts.BindError{Spec: raw, Err: err}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s|%s|%s\n", spec.Source, spec.Destination, strings.Join(spec.Flags, ","))
			}
			return nil
		},
	}
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		logrus.Fatal(err)
	}
}
