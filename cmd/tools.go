package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// toolsCmdGroup regroups small debugging helpers that talk to a running
// docdb server, the way the teacher's "tools" group regroups ad hoc
// debugging commands under one parent.
var toolsCmdGroup = &cobra.Command{
	Use:   "tools <command>",
	Short: "Regroup some tools for debugging and tests",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Usage()
	},
}

var dbsCmd = &cobra.Command{
	Use:     "dbs",
	Short:   "List the databases known to a running docdb server",
	Example: `$ docdb tools dbs --api-url http://localhost:8080`,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiURL, err := cmd.Flags().GetString("api-url")
		if err != nil {
			return err
		}
		resp, err := http.Get(apiURL + "/_cat/dbs")
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		var names []string
		if err := json.NewDecoder(resp.Body).Decode(&names); err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:     "info <db>",
	Short:   "Print the document/deleted counts of a database on a running docdb server",
	Example: `$ docdb tools info testdb --api-url http://localhost:8080`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return cmd.Usage()
		}
		apiURL, err := cmd.Flags().GetString("api-url")
		if err != nil {
			return err
		}
		resp, err := http.Get(apiURL + "/" + args[0])
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		var info struct {
			Name            string `json:"name"`
			DocCount        int    `json:"doc_count"`
			DeletedDocCount int    `json:"deleted_doc_count"`
			UpdateSeq       string `json:"update_seq"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
			return err
		}
		fmt.Printf("%s: %s live, %s deleted\n",
			info.Name,
			humanize.Comma(int64(info.DocCount)),
			humanize.Comma(int64(info.DeletedDocCount)))
		return nil
	},
}

func init() {
	dbsCmd.Flags().String("api-url", "http://localhost:8080", "base URL of the running docdb server")
	checkNoErr(viper.BindPFlag("tools.api_url", dbsCmd.Flags().Lookup("api-url")))

	infoCmd.Flags().String("api-url", "http://localhost:8080", "base URL of the running docdb server")

	toolsCmdGroup.AddCommand(dbsCmd)
	toolsCmdGroup.AddCommand(infoCmd)
	RootCmd.AddCommand(toolsCmdGroup)
}
