package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/charlieparkes/shapes/app"
	"github.com/charlieparkes/shapes/report"
)

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "shapes",
		Short:         "Print the area and perimeter of a circle and a rectangle",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	cmd.Flags().StringP("filepath", "f", "", "write the report to a file or gs://bucket/object instead of stdout")
	cmd.Flags().BoolP("verbose", "v", false, "log debug output to stderr")
	return cmd
}

func main() {
	cmd := NewCmd()
	err := cmd.Execute()
	app.Sync()
	if err != nil {
		cmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}

func run(c *cobra.Command, args []string) error {
	path, err := c.Flags().GetString("filepath")
	if err != nil {
		return err
	}
	verbose, err := c.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	if err := app.Setup(verbose); err != nil {
		return err
	}

	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	lines := report.Measure(report.Default())
	if path == "" {
		return report.Write(c.OutOrStdout(), lines)
	}

	f, err := report.Open(ctx, path)
	if err != nil {
		return err
	}
	if err := report.Write(f, lines); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	app.Log.Debug("report written", zap.String("path", path), zap.Int("lines", len(lines)))
	return nil
}
