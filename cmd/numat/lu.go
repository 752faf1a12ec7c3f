package main

import (
	"fmt"

	"github.com/b-io/io.barras-sub007/mat"
	"github.com/spf13/cobra"
)

func newLUCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lu FILE",
		Short: "print the L and U factors of the matrix in FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMatrix(args[0])
			if err != nil {
				return err
			}
			lu := (&mat.LU{}).Factorize(m)
			fmt.Println("nonsingular:", lu.IsNonsingular())
			fmt.Println("L:")
			fmt.Println(lu.GetL())
			fmt.Println("U:")
			fmt.Println(lu.GetU())
			return nil
		},
	}
}
