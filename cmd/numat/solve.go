package main

import (
	"fmt"

	"github.com/b-io/io.barras-sub007/mat"
	"github.com/spf13/cobra"
)

func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve A B",
		Short: "solve A·X = B and print X",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadMatrix(args[0])
			if err != nil {
				return err
			}
			b, err := loadMatrix(args[1])
			if err != nil {
				return err
			}
			var x *mat.Dense
			err = mustRecoverErr(func() {
				x = (&mat.LU{}).Factorize(a).Solve(b)
			})
			if err != nil {
				return err
			}
			fmt.Println(x)
			return nil
		},
	}
}

func newInverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inverse FILE",
		Short: "print the inverse of the matrix in FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMatrix(args[0])
			if err != nil {
				return err
			}
			inv, err := (&mat.LU{}).Factorize(m).Inverse()
			if err != nil {
				return err
			}
			fmt.Println(inv)
			return nil
		},
	}
}
