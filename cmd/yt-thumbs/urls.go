package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/imbecility/yt-thumbs/pkg/i18n"
	"github.com/imbecility/yt-thumbs/pkg/models"
)

var (
	pageFlag   string
	jsonFlag   bool
	urlsVerify bool
)

var urlsCmd = &cobra.Command{
	Use:   "urls <youtube-url>",
	Short: "Print the image URLs of a video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, ok := models.ParsePage(pageFlag)
		if !ok {
			return fmt.Errorf("unknown page %q (thumbnail, profile-pic, banner)", pageFlag)
		}

		gw, err := newGateway(urlsVerify)
		if err != nil {
			return err
		}
		bundle, err := i18n.Load()
		if err != nil {
			return err
		}

		res, err := gw.Lookup(cmd.Context(), args[0], page)
		if err != nil {
			return localize(bundle, err)
		}

		out := cmd.OutOrStdout()
		if jsonFlag {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(models.APIResponse{
				Success:    true,
				VideoID:    string(res.VideoID),
				Page:       string(res.Page),
				Main:       res.Main,
				Thumbnails: res.Images,
				Downloads:  res.Downloads,
				Extras:     res.Extras,
			})
		}

		tr := bundle.For(langFlag)
		fmt.Fprintf(out, "%s: %s\n", tr.T("videoId"), res.VideoID)
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		items := make([]models.DownloadItem, 0, len(res.Downloads)+len(res.Extras))
		items = append(append(items, res.Downloads...), res.Extras...)
		for _, d := range items {
			fmt.Fprintf(tw, "%s.jpg\t%s\t%s\n", d.Filename, d.Size, d.URL)
		}
		return tw.Flush()
	},
}

func init() {
	urlsCmd.Flags().StringVar(&pageFlag, "page", "thumbnail", "Image set: thumbnail, profile-pic or banner")
	urlsCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print JSON instead of a table")
	urlsCmd.Flags().BoolVar(&urlsVerify, "verify", false, "Probe the preview image and fall back to lower tiers")
	rootCmd.AddCommand(urlsCmd)
}
