package commands

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/AlexanderYastrebov/xed25519"
)

func genkeyCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genkey",
		Short: "Generate a curve25519 key pair, prints secret and public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, public, err := xed25519.GenerateKey(opts.rand)
			if err != nil {
				return errors.Wrap(err, "generate key")
			}
			opts.log.WithField("public", opts.encode(public[:])).Debug("generated key pair")

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", opts.encode(secret[:]), opts.encode(public[:]))
			return nil
		},
	}
	return cmd
}
