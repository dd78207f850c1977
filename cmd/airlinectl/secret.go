package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/airlineadmin/internal/shared"
)

func newSecretCmd() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Print a random key suitable for AIRLINE_SECRET_KEY",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if size < 16 {
				return fmt.Errorf("key size %d is too small, use at least 16 bytes", size)
			}
			key, err := shared.RandomHex(size)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), key)
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "bytes", 32, "number of random bytes")
	return cmd
}
