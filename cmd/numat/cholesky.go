package main

import (
	"fmt"

	"github.com/b-io/io.barras-sub007/mat"
	"github.com/spf13/cobra"
)

func newCholeskyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cholesky FILE",
		Short: "print the lower-triangular Cholesky factor of the matrix in FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMatrix(args[0])
			if err != nil {
				return err
			}
			ch := (&mat.Cholesky{}).Factorize(m)
			fmt.Println("SPD:", ch.IsSPD())
			fmt.Println(ch.GetL())
			return nil
		},
	}
}
