package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imbecility/yt-thumbs/pkg/i18n"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the languages of the web page",
	RunE: func(cmd *cobra.Command, args []string) error {
		bundle, err := i18n.Load()
		if err != nil {
			return err
		}
		for _, l := range bundle.Languages() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s %s\n", l.Code, l.Flag, l.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
