package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/dkssite/content"
)

func newCheckCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load the content directory and report what it holds",
		Long:  "Load the content directory and report what it holds. Exits non-zero on invalid content such as duplicate slugs or malformed JSON.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := v.GetString("content.dir")
			site, err := content.Load(os.DirFS(dir))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s, %s, %s, %s\n", dir,
				english.Plural(site.Catalog.Len(), "story", "stories"),
				english.Plural(len(site.Programs), "program", "programs"),
				english.Plural(len(site.Team), "team member", "team members"),
				english.Plural(len(site.Partners), "partner", "partners"))
			for _, name := range site.Catalog.Names() {
				fmt.Fprintf(out, "  %-24s %d\n", name, len(site.Catalog.ByCategory(name)))
			}
			if years := site.Impact.Years(); len(years) > 0 {
				fmt.Fprintf(out, "impact years: %s to %s\n", years[0], years[len(years)-1])
			}
			return nil
		},
	}
}
