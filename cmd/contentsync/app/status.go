package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hopebridge/contentsync/internal/config"
	"github.com/hopebridge/contentsync/internal/httpclient"
	"github.com/hopebridge/contentsync/internal/status"
)

const statusRequestTimeout = 5 * time.Second

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print the connection state",
		Long: `Status asks a running instance for its live connection state. When no instance answers
it prints the status recorded by the last run.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			address, _ := cmd.Flags().GetString("address")
			dataDir, _ := cmd.Flags().GetString("data-dir")
			return printStatus(cmd.Context(), cmd.OutOrStdout(), httpclient.NewDefaultClient(statusRequestTimeout),
				address, dataDir)
		},
	}

	cmd.Flags().String("address", config.DefaultObserverAddress, "Observer API address of the running instance")
	cmd.Flags().String("data-dir", config.DefaultDataDir, "Data directory of the last run")
	return cmd
}

func printStatus(ctx context.Context, out io.Writer, client httpclient.Client, address, dataDir string) error {
	body, err := client.Get(ctx, "http://"+address+"/v1/state")
	if err == nil {
		return writeIndented(out, body)
	}
	zap.S().Debugw("Observer API not reachable, reading recorded status", "address", address, "error", err)

	dir, err := homedir.Expand(dataDir)
	if err != nil {
		return fmt.Errorf("failed to expand data directory: %w", err)
	}

	recorded, err := status.NewFileStatusPersistence(filepath.Clean(dir)).LoadStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to load recorded status: %w", err)
	}
	if recorded.IsZero() {
		return fmt.Errorf("no running instance at %s and no recorded status in %s", address, dataDir)
	}

	data, err := json.Marshal(recorded)
	if err != nil {
		return err
	}
	return writeIndented(out, data)
}

func writeIndented(out io.Writer, data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid status document: %w", err)
	}
	formatted, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(formatted))
	return err
}
