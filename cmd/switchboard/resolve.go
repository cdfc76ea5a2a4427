package main

import (
	"fmt"
	"os"

	"github.com/aretw0/switchboard/internal/cli"
	"github.com/spf13/cobra"
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve <intent>",
	Short: "Resolve an intent to a handler",
	Long: `Resolves a single intent against the project's component tree and prints
the winning route, or "no route" when no handler applies.

The conversational state stack is simulated with repeated --state flags:

  switchboard resolve YesIntent --state order --state order.payment:AskingCard`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		project, _ := cmd.Flags().GetString("project")
		verbose, _ := cmd.Flags().GetBool("verbose")
		platform, _ := cmd.Flags().GetString("platform")
		states, _ := cmd.Flags().GetStringArray("state")
		jsonOut, _ := cmd.Flags().GetBool("json")

		err := cli.Resolve(cmd.Context(), cli.ResolveOptions{
			ProjectPath: project,
			Intent:      args[0],
			Platform:    platform,
			States:      states,
			JSON:        jsonOut,
			Verbose:     verbose,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().String("platform", "", "Active platform tag (e.g. alexa)")
	resolveCmd.Flags().StringArray("state", nil, "State stack entry, path[:sub-state]; repeatable, last is the anchor")
	resolveCmd.Flags().Bool("json", false, "Print the route as JSON")
}
