package cmd

import (
	"context"
	"net/http"
	"time"

	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"boscoin.io/sebak-gov/cmd/sebak-gov/common"
	"boscoin.io/sebak-gov/lib/api"
	sebakcommon "boscoin.io/sebak-gov/lib/common"
	"boscoin.io/sebak-gov/lib/metrics"
)

const UrlPathPrefixMetric = "/metrics"

var (
	flagBind string = sebakcommon.GetENVValue("SEBAK_GOV_BIND", "127.0.0.1:12345")
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the read only governance api and the metrics",
	Run: func(c *cobra.Command, args []string) {
		prepareEngine(c)
		defer closeEngine()

		metrics.InitPrometheusMetrics()
		metrics.SetVersion()

		server := &http.Server{
			Addr:    flagBind,
			Handler: newServeHandler(),
		}

		var g run.Group
		{
			g.Add(func() error {
				log.Info("start serving", "bind", flagBind, "height", height)
				if err := server.ListenAndServe(); err != http.ErrServerClosed {
					log.Crit("failed to serve", "error", err)
					return err
				}
				return nil
			}, func(error) {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				server.Shutdown(ctx)
			})
		}
		{
			cancel := make(chan struct{})
			g.Add(func() error {
				return common.Interrupt(cancel)
			}, func(error) {
				close(cancel)
			})
		}

		if err := g.Run(); err != nil {
			log.Info("stopped", "reason", err)
		}
	},
}

func newServeHandler() http.Handler {
	router := api.NewGovernanceHandlerAPI(engine, roll).Router(nil)
	router.Handle(UrlPathPrefixMetric, promhttp.Handler()).Methods("GET")

	return api.CORS(router)
}

func init() {
	serveCmd.Flags().StringVar(&flagBind, "bind", flagBind, "address to listen on")

	rootCmd.AddCommand(serveCmd)
}
