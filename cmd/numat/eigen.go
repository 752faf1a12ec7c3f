package main

import (
	"fmt"

	"github.com/b-io/io.barras-sub007/mat"
	"github.com/spf13/cobra"
)

func newEigenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eigen FILE",
		Short: "print the eigenvalues of the matrix in FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMatrix(args[0])
			if err != nil {
				return err
			}
			eig := (&mat.Eigen{}).Factorize(m)
			fmt.Println("symmetric:", eig.IsSymmetric())
			fmt.Println("real:", eig.RealPart())
			fmt.Println("imag:", eig.ImagPart())
			return nil
		},
	}
}
