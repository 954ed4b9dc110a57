package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/priyamvada/skillscope/internal/analysis"
	"github.com/priyamvada/skillscope/internal/app"
	"github.com/priyamvada/skillscope/internal/config"
	"github.com/priyamvada/skillscope/internal/store"
)

// runApp opens the journal, builds the service client, and launches the
// TUI.
func runApp(cmd *cobra.Command) error {
	cfg, client, st, err := buildDeps(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(app.Options{
		Client: client,
		UseRAG: cfg.UseRAG,
	})
}

// buildDeps wires config, journal store, and the logging-decorated
// service client shared by the TUI and the management subcommands.
func buildDeps(cmd *cobra.Command) (*config.Config, analysis.Client, *store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	serverURL := cfg.ServerURL
	if flag, _ := cmd.Flags().GetString("server"); flag != "" {
		serverURL = flag
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("resolve journal path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open journal: %w", err)
	}

	httpClient, err := analysis.NewHTTPClient(serverURL, analysis.WithTimeout(cfg.HTTPTimeout))
	if err != nil {
		st.Close()
		return nil, nil, nil, fmt.Errorf("build service client: %w", err)
	}

	return cfg, analysis.WithLogging(httpClient, st.EventRepo()), st, nil
}
