package main

import (
	"fmt"
	"os"

	"github.com/aretw0/switchboard/internal/cli"
	"github.com/aretw0/switchboard/pkg/adapters/file"
	"github.com/aretw0/switchboard/pkg/adapters/memory"
	redisadapter "github.com/aretw0/switchboard/pkg/adapters/redis"
	"github.com/aretw0/switchboard/pkg/ports"
	"github.com/spf13/cobra"
)

// aliasCmd groups alias-map management.
var aliasCmd = &cobra.Command{
	Use:   "alias",
	Short: "Manage the intent alias map",
	Long: `Lists or edits the intent alias map. With --redis the map lives in a
Redis hash shared by all router instances; without it the project file's
aliases are shown read-only.`,
}

var aliasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List alias mappings",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := aliasStore(cmd)
		exitOn(err)
		exitOn(cli.AliasList(cmd.Context(), store))
	},
}

var aliasSetCmd = &cobra.Command{
	Use:   "set <from> <to>",
	Short: "Map an incoming intent name to a canonical one",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := redisStore(cmd)
		exitOn(err)
		exitOn(cli.AliasSet(cmd.Context(), store, args[0], args[1]))
	},
}

var aliasRemoveCmd = &cobra.Command{
	Use:   "rm <from>",
	Short: "Remove an alias mapping",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := redisStore(cmd)
		exitOn(err)
		exitOn(cli.AliasRemove(cmd.Context(), store, args[0]))
	},
}

// aliasStore picks the Redis store when --redis is set, otherwise falls
// back to the project file's aliases.
func aliasStore(cmd *cobra.Command) (ports.AliasStore, error) {
	if addr, _ := cmd.Flags().GetString("redis"); addr != "" {
		return redisStore(cmd)
	}

	path, _ := cmd.Flags().GetString("project")
	project, err := file.Load(path)
	if err != nil {
		return nil, err
	}
	return memory.NewAliasStore(project.Aliases), nil
}

func redisStore(cmd *cobra.Command) (ports.AliasStore, error) {
	addr, _ := cmd.Flags().GetString("redis")
	if addr == "" {
		return nil, fmt.Errorf("--redis address is required to edit aliases")
	}
	password, _ := cmd.Flags().GetString("redis-password")
	db, _ := cmd.Flags().GetInt("redis-db")
	return redisadapter.New(addr, password, db), nil
}

func exitOn(err error) {
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(aliasCmd)
	aliasCmd.AddCommand(aliasListCmd, aliasSetCmd, aliasRemoveCmd)

	aliasCmd.PersistentFlags().String("redis", "", "Redis address, e.g. localhost:6379")
	aliasCmd.PersistentFlags().String("redis-password", "", "Redis password")
	aliasCmd.PersistentFlags().Int("redis-db", 0, "Redis database index")
}
