package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AndreCode112/FinanceMartins/internal/config"
)

const emptySnapshot = `{
  "today": "",
  "banks": [],
  "categories": [],
  "transactions": [],
  "payables": [],
  "events": []
}
`

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a findash workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir)
		},
	}

	return cmd
}

func runInit(dir string) error {
	if err := os.MkdirAll(filepath.Join(dir, "data"), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	cfg := config.Default(filepath.Join("data", "snapshot.json"))
	if err := config.Save(filepath.Join(dir, "findash.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	snapshotPath := filepath.Join(dir, "data", "snapshot.json")
	if _, err := os.Stat(snapshotPath); os.IsNotExist(err) {
		if err := os.WriteFile(snapshotPath, []byte(emptySnapshot), 0o644); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}
	}

	fmt.Printf("Initialized findash workspace in %s\n", dir)
	return nil
}
