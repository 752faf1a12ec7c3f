package main

import (
	"fmt"

	"github.com/b-io/io.barras-sub007/mat"
	"github.com/spf13/cobra"
)

func newSVDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "svd FILE",
		Short: "print the singular values, condition number and rank of the matrix in FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMatrix(args[0])
			if err != nil {
				return err
			}
			svd := mat.NewSVD(m)
			fmt.Println("singular values:", svd.GetSingularValues())
			fmt.Println("cond:", svd.Cond())
			fmt.Println("rank:", svd.Rank(0))
			return nil
		},
	}
}
