package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/imbecility/yt-thumbs/pkg/i18n"
	"github.com/imbecility/yt-thumbs/pkg/models"
)

var (
	downloadPage string
	strideFlag   time.Duration
)

var downloadCmd = &cobra.Command{
	Use:   "download <youtube-url>",
	Short: "Download every image of a video's page, extras included, into the output directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, ok := models.ParsePage(downloadPage)
		if !ok {
			return fmt.Errorf("unknown page %q (thumbnail, profile-pic, banner)", downloadPage)
		}

		gw, err := newGateway(false)
		if err != nil {
			return err
		}
		if strideFlag > 0 {
			gw.Downloader.Stride = strideFlag
		}
		bundle, err := i18n.Load()
		if err != nil {
			return err
		}

		res, err := gw.Lookup(cmd.Context(), args[0], page)
		if err != nil {
			return localize(bundle, err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		out := cmd.OutOrStdout()
		failed := 0
		for _, job := range gw.SaveAll(ctx, res).Wait() {
			if job.Err != nil {
				failed++
				fmt.Fprintf(out, "FAIL  %s.jpg  %v\n", job.Item.Filename, job.Err)
				continue
			}
			fmt.Fprintf(out, "OK    %s\n", job.Path)
		}
		if failed > 0 {
			fmt.Fprintf(out, "%d of %d images were not downloaded (%s)\n",
				failed, len(res.Downloads), bundle.Text(langFlag, "errors.download"))
		}
		return nil
	},
}

func init() {
	downloadCmd.Flags().StringVar(&downloadPage, "page", "thumbnail", "Image set: thumbnail, profile-pic or banner")
	downloadCmd.Flags().DurationVar(&strideFlag, "stride", 0, "Delay between consecutive downloads (default 200ms)")
	rootCmd.AddCommand(downloadCmd)
}
