// Command numat is a thin CLI boundary around package mat: load a matrix
// file, run one decomposition or query, print the result, and exit 0 on
// success or 1 on any returned or recovered error.
package main

import (
	"fmt"
	"os"

	"github.com/b-io/io.barras-sub007/diag"
	"github.com/b-io/io.barras-sub007/mat"
	"github.com/b-io/io.barras-sub007/numatcfg"
	"github.com/b-io/io.barras-sub007/schedule"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logger     = diag.NewDefault()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "numat",
		Short:         "numat drives package mat's matrix operations from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := numatcfg.Load(configPath)
			if err != nil {
				return err
			}
			mat.SetDiagnostics(logger)
			schedule.SetDiagnostics(logger)
			schedule.SetMinSliceSize(cfg.Scheduler.MinSliceSize)
			mat.SetDefaultEqualTolerance(cfg.Tolerance.Equal)
			mat.SetTinyTolerance(cfg.Tolerance.Tiny)
			schedule.Parallelize(cfg.Scheduler.Workers)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "numat.yaml", "path to the scheduler/tolerance config file")

	root.AddCommand(
		newDetCmd(),
		newLUCmd(),
		newQRCmd(),
		newCholeskyCmd(),
		newSVDCmd(),
		newEigenCmd(),
		newSolveCmd(),
		newInverseCmd(),
	)
	return root
}

// loadMatrix reads a matrix from path, using the text literal grammar for
// ".mat"/".txt" files and the CSV grammar otherwise.
func loadMatrix(path string) (*Dense, error) {
	switch ext(path) {
	case ".mat", ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return mat.Parse(string(data))
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return mat.LoadCSV(f, false)
	}
}

type Dense = mat.Dense

func ext(path string) string {
	for i := len(path) - 1; i >= 0 && path[i] != '/'; i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}

func mustRecoverErr(fn func()) (err error) {
	e := mat.Maybe(fn)
	return e
}
