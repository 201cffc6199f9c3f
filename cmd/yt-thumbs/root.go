package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/imbecility/yt-thumbs/pkg/gateway"
	"github.com/imbecility/yt-thumbs/pkg/i18n"
	"github.com/imbecility/yt-thumbs/pkg/logger"
)

var (
	envLoaded bool

	debugFlag  bool
	logFormat  string
	outDir     string
	timeoutSec int
	langFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "yt-thumbs",
	Short: "Thumbnail, profile picture and banner images for YouTube videos",
	Long: `yt-thumbs builds the image URLs YouTube publishes for every video
and downloads them, either from the command line or through a small
multilingual web page.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetupGlobal(logger.Options{Debug: debugFlag, Format: logFormat, Writer: cmd.ErrOrStderr()})
		slog.Debug("Configuration loaded", "dotenv", envLoaded)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", envBool("YT_THUMBS_DEBUG", false), "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", envString("YT_THUMBS_OUT", "./thumbnails"), "Output directory for downloads")
	rootCmd.PersistentFlags().IntVar(&timeoutSec, "timeout", 30, "Max seconds per image request")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", envString("YT_THUMBS_LANG", i18n.DefaultLanguage), "Language of user-facing messages")
}

func newGateway(verify bool) (*gateway.Service, error) {
	return gateway.New(gateway.Config{
		OutputDir:  outDir,
		TimeoutSec: timeoutSec,
		Verify:     verify,
		Debug:      debugFlag,
	})
}

// localize turns a lookup error into the message a user of langFlag reads.
func localize(bundle *i18n.Bundle, err error) error {
	return fmt.Errorf("%s: %w", bundle.Text(langFlag, gateway.MessageKey(err)), err)
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return def
}
