package main

import (
	"fmt"

	"github.com/b-io/io.barras-sub007/mat"
	"github.com/spf13/cobra"
)

func newQRCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "qr FILE",
		Short: "print the Q and R factors of the matrix in FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMatrix(args[0])
			if err != nil {
				return err
			}
			qr := (&mat.QR{}).Factorize(m)
			fmt.Println("full rank:", qr.IsFullRank())
			fmt.Println("Q:")
			fmt.Println(qr.GetQ())
			fmt.Println("R:")
			fmt.Println(qr.GetR())
			return nil
		},
	}
}
