package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/goldrush/internal/assets"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Load every sprite and show its status",
	Long: `Load the sprites named in the configuration and report each one.
Sprites come from assets.dir when set, falling back to the built-in ones.

Examples:
  goldrush assets
  goldrush assets --config ./my-goldrush.yaml`,
	Args: cobra.NoArgs,
	RunE: runAssets,
}

func runAssets(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	loader := assets.NewLoader(assets.Open(cfg.Assets.Dir))
	loader.AddAll(cfg.Assets.Sprites)
	reports := loader.LoadAll(cmd.Context())

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFILE\tSIZE\tSTATUS")

	failed := 0
	for _, r := range reports {
		s := loader.Sprite(r.Name)
		size := "-"
		if r.Err == nil {
			if s.Raster != nil {
				b := s.Raster.Bounds()
				size = fmt.Sprintf("%dx%d px", b.Dx(), b.Dy())
			} else {
				sw, sh := s.Size()
				size = fmt.Sprintf("%dx%d", sw, sh)
			}
		}

		status := "ok"
		if r.Err != nil {
			status = r.Err.Error()
			failed++
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Name, cfg.Assets.Sprites[r.Name], size, status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d sprites failed to load", failed, len(reports))
	}
	return nil
}
