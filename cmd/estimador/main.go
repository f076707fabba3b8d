package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"estimador/internal/clock"
	"estimador/internal/config"
	"estimador/internal/export"
	"estimador/internal/httpmw"
	"estimador/internal/quote"
	"estimador/internal/rules"
	"estimador/internal/serverapp"
	"estimador/internal/urlstate"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "estimador",
		Short: "Estimador de presupuesto - time and cost quotes for web projects",
		Long: `estimador serves the budget estimator: a task catalog, the rules that decide
which tasks can be picked together, and a quote with totals and dates whose whole
state travels in the page URL.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadDotEnv()
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the configuration file")

	root.AddCommand(
		newServeCmd(&configPath),
		newQuoteCmd(&configPath),
		newCatalogCmd(&configPath),
		newVersionCmd(),
	)
	return root
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			cat, err := serverapp.LoadCatalog(cfg.Catalog.Path)
			if err != nil {
				return err
			}

			logger := log.New(os.Stdout, "", 0)
			handler, err := serverapp.NewHandler(serverapp.Options{
				Config:  cfg,
				Catalog: cat,
				Clock:   clock.Real{},
				Logger:  logger,
			})
			if err != nil {
				return fmt.Errorf("build server: %w", err)
			}

			srv := &http.Server{
				Addr:              cfg.Server.Addr,
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() {
				httpmw.Log(logger, "info", "listening", httpmw.Fields{
					"addr":    cfg.Server.Addr,
					"tasks":   cat.Len(),
					"policy":  cfg.Rules.Policy,
					"version": version,
				})
				errc <- srv.ListenAndServe()
			}()

			select {
			case err := <-errc:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			httpmw.Log(logger, "info", "shutting_down", nil)
			return srv.Shutdown(shutdownCtx)
		},
	}
}

func newQuoteCmd(configPath *string) *cobra.Command {
	var s, d string
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print the text document for an encoded estimate",
		Long: `Print the downloadable budget for the estimate carried by the s and d URL
parameters. Without --s the catalog defaults are used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			cat, err := serverapp.LoadCatalog(cfg.Catalog.Path)
			if err != nil {
				return err
			}
			policy, err := rules.ParsePolicy(cfg.Rules.Policy)
			if err != nil {
				return err
			}

			now := clock.Real{}.Now()
			state, start := urlstate.Decode(cat, s, d, now)
			q := quote.Build(rules.New(cat, policy), state, start)
			_, err = fmt.Fprint(cmd.OutOrStdout(), export.Document(q, now))
			return err
		},
	}
	cmd.Flags().StringVar(&s, urlstate.ParamSelection, "", "Encoded selection (the s URL parameter)")
	cmd.Flags().StringVar(&d, urlstate.ParamDate, "", "Start date as YYYY-MM-DD (the d URL parameter)")
	return cmd
}

func newCatalogCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Dump the active task catalog as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			cat, err := serverapp.LoadCatalog(cfg.Catalog.Path)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cat); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of estimador",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "estimador %s\n", version)
		},
	}
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
