package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Marcodez811/youtubegpt/pkg/config"
	"github.com/Marcodez811/youtubegpt/pkg/logger"
	"github.com/Marcodez811/youtubegpt/pkg/tui"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "youtubegpt",
	Short: "Chat with YouTube videos",
	Long:  `Terminal client for YoutubeGPT: create a chatroom for a YouTube video and ask questions grounded in its transcript.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.Load(cfgFile); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := logger.Init(); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		defer logger.Close()

		logger.Info("Starting youtubegpt, server=%s, config=%s", viper.GetString("server.url"), config.GetConfigFileUsed())
		return tui.StartApp()
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is .youtubegpt/settings.yaml)")

	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level")
	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentFlags().StringP("server", "s", "", "backend server URL")
	viper.BindPFlag("server.url", rootCmd.PersistentFlags().Lookup("server"))
}
