package main

import (
	"fmt"

	"github.com/b-io/io.barras-sub007/mat"
	"github.com/spf13/cobra"
)

func newDetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "det FILE",
		Short: "print the determinant of the matrix in FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMatrix(args[0])
			if err != nil {
				return err
			}
			var d float64
			err = mustRecoverErr(func() {
				d = (&mat.LU{}).Factorize(m).Det()
			})
			if err != nil {
				return err
			}
			fmt.Println(d)
			return nil
		},
	}
}
