package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dhanesh.dev/internal/export"
	"dhanesh.dev/internal/handlers"
	"dhanesh.dev/internal/render"
	"dhanesh.dev/internal/theme"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the portfolio as a static site",
	Long: `The build command renders every page to <output>/<path>/index.html,
writes 404.html and theme.css, and copies the static assets. The output
directory is replaced.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringP("output", "o", "public", "output directory")
	if err := v.BindPFlag("output_dir", buildCmd.Flags().Lookup("output")); err != nil {
		panic(err)
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}
	renderer, err := render.New()
	if err != nil {
		return err
	}

	var pages []export.Page
	for _, r := range handlers.PageRoutes(cfg.ShowExperience) {
		pages = append(pages, export.Page{Path: r.Path, Page: r.Page})
	}

	res, err := export.Run(export.Options{
		OutputDir: cfg.OutputDir,
		StaticDir: cfg.StaticDir,
		Pages:     pages,
		NavItems:  handlers.NavItems(cfg.ShowExperience),
		Site:      store.Site(),
		Renderer:  renderer,
		Theme:     theme.Default(),
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	logger.Info("export complete",
		zap.String("output", cfg.OutputDir),
		zap.Int("pages", res.Pages),
		zap.Int("assets", res.Assets))
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d pages and %d assets to %s\n", res.Pages, res.Assets, cfg.OutputDir)
	return nil
}
