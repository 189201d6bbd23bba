package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/avolkov/infobot/internal/dispatch"
	"github.com/avolkov/infobot/internal/model"
	"github.com/avolkov/infobot/internal/pipeline"
	"github.com/avolkov/infobot/internal/wiki"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile           string
	verbose           bool
	timeout           time.Duration
	userAgent         string
	maxBytes          int64
	apiBaseURL        string
	noRobots          bool
	requestsPerSecond float64
)

// rootCmd represents the base command; without a subcommand it starts
// the interactive query loop.
var rootCmd = &cobra.Command{
	Use:   "infobot",
	Short: "Infobot - answer short questions from Wikipedia infoboxes",
	Long: `Infobot answers short natural-language questions by matching them
against a fixed set of query templates and pulling the requested fact
out of the subject's Wikipedia infobox.

Supported question shapes:
  what is the polar radius of <planet>
  what is the population of <place>
  what is the official language of <country>
  where was <person> born
  when was <person> born
  bye (ends the session)`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runREPL,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("infobot v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := model.DefaultConfig()

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.infobot/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaults.HTTP.Timeout, "HTTP timeout per wiki request")
	rootCmd.PersistentFlags().StringVar(&userAgent, "ua", defaults.HTTP.UserAgent, "HTTP User-Agent")
	rootCmd.PersistentFlags().Int64Var(&maxBytes, "max-bytes", defaults.HTTP.MaxBodyBytes, "max response bytes to read")
	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "api", defaults.Wiki.APIBaseURL, "MediaWiki API base URL")
	rootCmd.PersistentFlags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks")
	rootCmd.PersistentFlags().Float64Var(&requestsPerSecond, "rps", defaults.Politeness.RequestsPerSecond, "max wiki requests per second")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("wiki.api_base_url", rootCmd.PersistentFlags().Lookup("api"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.infobot")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match INFOBOT_*
	viper.SetEnvPrefix("INFOBOT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// buildConfig assembles the effective configuration from defaults,
// config file, environment and flags.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()

	// Bound keys resolve flag > env > config file through viper.
	if v := viper.GetString("wiki.api_base_url"); v != "" {
		cfg.Wiki.APIBaseURL = v
	}
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.Politeness.RespectRobots = !noRobots
	cfg.Politeness.RequestsPerSecond = requestsPerSecond
	cfg.Output.Verbose = viper.GetBool("output.verbose")

	return cfg
}

// newDispatchTable wires the full query pipeline for the effective
// configuration.
func newDispatchTable() *dispatch.Table {
	cfg := buildConfig()
	client := wiki.NewClient(cfg)
	return pipeline.DefaultTable(pipeline.NewResolver(client))
}
