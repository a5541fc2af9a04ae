// Package cmd wires the cobra command tree: a root command plus "serve"
// and "tools" subcommands, grounded on the teacher's cmd/serve.go and
// cmd/tools.go flag-binding and RunE style.
package cmd

import (
	"fmt"
	"os"

	"github.com/nori-stack/docdb/pkg/config"
	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd is the entry point of the command tree; main.go only calls
// Execute.
var RootCmd = &cobra.Command{
	Use:   "docdb",
	Short: "docdb is an HTTP document database in the spirit of CouchDB",
	Long: `docdb serves a small REST document database: named databases,
JSON documents keyed by identifier, optimistic concurrency via revision
tokens, bulk operations, and a reserved design-document slot.`,
	Version: config.Version,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := semver.NewVersion(config.Version)
		if err != nil {
			// Development builds carry a non-semver placeholder; report it
			// as-is rather than failing the command.
			fmt.Printf("docdb %s (%s, built %s)\n", config.Version, config.BuildMode, config.BuildTime)
			return nil
		}
		fmt.Printf("docdb %s (major=%d minor=%d patch=%d, %s, built %s)\n",
			v.String(), v.Major(), v.Minor(), v.Patch(), config.BuildMode, config.BuildTime)
		return nil
	},
}

func init() {
	flags := RootCmd.PersistentFlags()

	flags.String("host", "localhost", "server host")
	checkNoErr(viper.BindPFlag("host", flags.Lookup("host")))

	flags.Int("port", 8080, "server port")
	checkNoErr(viper.BindPFlag("port", flags.Lookup("port")))

	flags.String("log-level", "info", "define the log level")
	checkNoErr(viper.BindPFlag("log.level", flags.Lookup("log-level")))

	RootCmd.AddCommand(versionCmd)
}

// Execute runs the command tree; main.go's sole responsibility.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func checkNoErr(err error) {
	if err != nil {
		panic(err)
	}
}
