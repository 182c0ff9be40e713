package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inodb/genemap/internal/mapping"
)

func newBuildsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "builds",
		Short: "List supported genome builds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, b := range mapping.Builds() {
				t, err := mapping.Load(b)
				if err != nil {
					return err
				}
				fmt.Printf("%s\t%d genes\n", b, t.Len())
			}
			return nil
		},
	}
}
