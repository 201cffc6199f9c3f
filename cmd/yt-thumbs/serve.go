package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/imbecility/yt-thumbs/pkg/api"
	"github.com/imbecility/yt-thumbs/pkg/i18n"
)

var (
	port        int
	verifyFlag  bool
	apiOnlyFlag bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web page and JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		gw, err := newGateway(verifyFlag)
		if err != nil {
			return err
		}

		bundle, err := i18n.Load()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := api.NewServer(port, gw, bundle)
		return srv.Start(ctx, !apiOnlyFlag)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&port, "port", "p", envInt("YT_THUMBS_PORT", 8080), "Port for the HTTP server")
	serveCmd.Flags().BoolVar(&verifyFlag, "verify", false, "Probe the preview image and fall back to lower tiers")
	serveCmd.Flags().BoolVar(&apiOnlyFlag, "api-only", false, "Serve the JSON API without the web page")
	rootCmd.AddCommand(serveCmd)
}
