package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"travel-vlogs/pkg/config"
	"travel-vlogs/pkg/logger"
	"travel-vlogs/pkg/services"
)

// settings is shared by every command so flags, environment and config.yaml
// resolve through a single viper instance
var settings *viper.Viper

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	settings = config.New()

	rootCmd := &cobra.Command{
		Use:   "travel-vlogs",
		Short: "Travel Vlogs browses and serves a gallery of travel vlogs",
		Long: `Travel Vlogs is a command line application that can filter, sort, search and
upload travel vlogs. The collection is seeded from an embedded dataset, a local
JSON/YAML file or a Google Cloud Storage bucket, and can be served via a web interface.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Define persistent flags that will be available for all commands
	flags := rootCmd.PersistentFlags()
	flags.StringP(config.KeyPort, "p", "", "Set the PORT (overrides environment variable)")
	flags.StringP(config.KeyDataset, "d", "", "Read the seed dataset from a JSON or YAML file")
	flags.StringP(config.KeyBucket, "b", "", "Set the BUCKET_NAME to read the seed dataset from")
	flags.String(config.KeyDatasetPrefix, "", "Object prefix of the dataset inside the bucket")
	flags.String(config.KeyViewsDir, "", "Directory holding the pug templates")
	flags.String(config.KeyLogLevel, "", "Log level (debug, info, warn, error)")
	flags.String(config.KeyLogFormat, "", "Log format (text or json)")
	flags.Duration(config.KeyChatDelay, 0, "Delay before the chat assistant answers")

	for _, key := range []string{
		config.KeyPort, config.KeyDataset, config.KeyBucket, config.KeyDatasetPrefix,
		config.KeyViewsDir, config.KeyLogLevel, config.KeyLogFormat, config.KeyChatDelay,
	} {
		_ = settings.BindPFlag(key, flags.Lookup(key))
	}

	// Add commands to root
	rootCmd.AddCommand(newListVlogsCmd())
	rootCmd.AddCommand(newListCategoriesCmd())
	rootCmd.AddCommand(newShowVlogCmd())
	rootCmd.AddCommand(newListDestinationsCmd())
	rootCmd.AddCommand(newShowDestinationCmd())
	rootCmd.AddCommand(newPlanCmd())
	rootCmd.AddCommand(newUploadCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newFakeDatasetCmd())
	rootCmd.AddCommand(newChatCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

// LoadConfig loads configuration with respect to command line flags and
// applies the logging settings
func LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	return cfg, nil
}

// loadService loads the configuration and initializes the gallery service
func loadService() (*services.Service, *config.Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := services.InitService(cfg); err != nil {
		return nil, nil, err
	}
	return services.Default(), cfg, nil
}
