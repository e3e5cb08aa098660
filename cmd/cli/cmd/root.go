package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "woodctl",
	Short: "woodctl is a command line tool for the woodcraft design service",
	Long: `woodctl talks to the woodcraft design API and starts batch 3D generations.

Common workflows:

  Quote a design and start its 3D model:
    woodctl design request --description "fox on a branch" --material "Oak" --width 20 --height 30

  Check a generation task once, or wait for it:
    woodctl design status <task-id>
    woodctl design status <task-id> --watch --interval 10s

  Generate stored designs through the batch worker:
    woodctl batch generate <design-id> [<design-id>...]

Configuration:
  Flags can also be set in $HOME/.woodctl.yaml or through the environment:
    WOODCRAFT_URL                 API endpoint (default: http://localhost:8080)
    WOODCRAFT_TEMPORAL_HOST       Temporal frontend (default: localhost:7233)
    WOODCRAFT_TEMPORAL_NAMESPACE  Temporal namespace (default: default)
    WOODCRAFT_TASK_QUEUE          Worker task queue (default: design-generation)`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".woodctl")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("WOODCRAFT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.woodctl.yaml)")

	rootCmd.PersistentFlags().String("url", "http://localhost:8080", "woodcraft API URL")
	viper.BindPFlag("url", rootCmd.PersistentFlags().Lookup("url"))
}
