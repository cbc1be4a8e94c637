package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/htmlkit-dev/htmlkit/internal/config"
	"github.com/htmlkit-dev/htmlkit/pkg/document"
	"github.com/htmlkit-dev/htmlkit/pkg/server"
)

func serveCmd() *cobra.Command {
	var manifestPath, addr string
	var noReload bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview a page manifest in the browser",
		Long: `Serve renders the manifest on every request and, unless disabled,
reloads connected browsers when the manifest file changes. Prometheus
metrics are exposed at /metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			source := func(ctx context.Context) (*document.Document, error) {
				m, err := config.Load(manifestPath)
				if err != nil {
					return nil, err
				}
				return m.Document()
			}

			srv := server.New(server.Config{
				Addr:       addr,
				LiveReload: !noReload,
			}, source)

			if !noReload {
				go server.WatchFile(ctx, manifestPath, 0, func() {
					logrus.WithField("manifest", manifestPath).Debug("manifest changed")
					srv.Reload()
				})
			}

			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "f", "page.yaml", "page manifest file")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "disable live reload")

	return cmd
}
