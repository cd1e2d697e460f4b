package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rvrdev/portfolio/internal/logging"
	"github.com/rvrdev/portfolio/internal/site"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the site as static files",
	Long:  `Renders index.html and 404.html and copies the selected static assets into the output directory, ready for a static file host.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().String("output", "", "override output directory")
	exportCmd.Flags().String("build-id", "", "asset cache-busting id (random when empty)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}

	buildID, _ := cmd.Flags().GetString("build-id")
	if buildID == "" {
		buildID = site.NewBuildID()
	}

	renderer, err := newRenderer(cfg, buildID)
	if err != nil {
		return err
	}
	static, err := staticFS()
	if err != nil {
		return err
	}
	if !cfg.Production() {
		logging.For("export").Warn("exporting a development build; base_path is ignored")
	}

	exporter := &site.Exporter{
		Renderer:  renderer,
		OutputDir: cfg.OutputDir,
		Static:    static,
		Assets:    cfg.Assets,
	}
	res, err := exporter.Export()
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Printf("Static site exported: %s (%d pages, %d assets, build %s)\n", cfg.OutputDir, len(res.Pages), len(res.Assets), buildID)
	return nil
}
