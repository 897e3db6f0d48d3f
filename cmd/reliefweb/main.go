package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reliefweb-go/reliefweb/cmd/reliefweb/commands"
	"github.com/reliefweb-go/reliefweb/pkg/reliefweb"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "reliefweb",
	Short: "ReliefWeb API CLI",
	Long: `A command-line interface for querying the ReliefWeb humanitarian API.

Browse reports, disasters, countries, jobs, training, sources, blog posts,
and books with full-text search, filtering, sorting, and field selection.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.reliefweb.yml)")
	rootCmd.PersistentFlags().String("appname", "", "application identity sent with every request")
	rootCmd.PersistentFlags().String("host", reliefweb.PublicHost, "API host")
	rootCmd.PersistentFlags().String("api-version", string(reliefweb.V2), "API version (v1, v2)")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "log HTTP requests and responses")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("appname", rootCmd.PersistentFlags().Lookup("appname"))
	viper.BindPFlag("host", rootCmd.PersistentFlags().Lookup("host"))
	viper.BindPFlag("api-version", rootCmd.PersistentFlags().Lookup("api-version"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewReportsCommand())
	rootCmd.AddCommand(commands.NewDisastersCommand())
	rootCmd.AddCommand(commands.NewCountriesCommand())
	rootCmd.AddCommand(commands.NewJobsCommand())
	rootCmd.AddCommand(commands.NewTrainingCommand())
	rootCmd.AddCommand(commands.NewSourcesCommand())
	rootCmd.AddCommand(commands.NewBlogCommand())
	rootCmd.AddCommand(commands.NewBookCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.reliefweb.yml
		viper.AddConfigPath(home)
		viper.SetConfigType("yml")
		viper.SetConfigName(".reliefweb")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix("RW")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
