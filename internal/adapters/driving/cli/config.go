package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage docforge configuration",
	Long: `View and change configuration stored in the docforge config file.

Recognised keys:
  credentials_file               path to a Google service-account JSON file
  rate_limit.requests_per_second Docs API request pacing
  rate_limit.burst               Docs API burst allowance
  verbose                        default verbosity`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Printf("Config file: %s\n", configStore.Path())
	cmd.Println()

	creds := configStore.GetString("credentials_file")
	if creds == "" {
		creds = "(not set, using application default credentials)"
	}
	cmd.Printf("  credentials_file: %s\n", creds)

	rps := configStore.GetInt("rate_limit.requests_per_second")
	burst := configStore.GetInt("rate_limit.burst")
	if rps > 0 {
		cmd.Printf("  rate_limit.requests_per_second: %d\n", rps)
	}
	if burst > 0 {
		cmd.Printf("  rate_limit.burst: %d\n", burst)
	}
	cmd.Printf("  verbose: %t\n", configStore.GetBool("verbose"))

	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	value, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("key not set: %s", args[0])
	}
	cmd.Printf("%v\n", value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]

	// Store numerics and booleans typed so GetInt/GetBool round-trip.
	var value any = raw
	if n, err := strconv.Atoi(raw); err == nil {
		value = n
	} else if b, err := strconv.ParseBool(raw); err == nil {
		value = b
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	if err := configStore.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	cmd.Printf("Set %s = %v\n", key, value)
	return nil
}
