package cmd

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/rvrdev/portfolio/internal/logging"
	"github.com/rvrdev/portfolio/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Preview the site locally",
	Long:  `Serves the rendered page and its assets from memory, under the configured base path, the way a static host would serve an export.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (defaults to config addr or :$PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	renderer, err := newRenderer(cfg, site.NewBuildID())
	if err != nil {
		return err
	}
	static, err := staticFS()
	if err != nil {
		return err
	}

	srv := site.NewServer(renderer, cfg.BasePath(), static)
	logging.For("server").WithField("addr", cfg.Addr).Infof("serving portfolio at http://localhost%s%s/", cfg.Addr, cfg.BasePath())
	return srv.Run(cfg.Addr)
}
