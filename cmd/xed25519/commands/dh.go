package commands

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/AlexanderYastrebov/xed25519"
)

func dhCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dh SECRET PUBLIC",
		Short: "Print the Diffie-Hellman shared secret of a secret key and a peer public key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := opts.secretKey(args[0])
			if err != nil {
				return err
			}
			peer, err := opts.publicKey(args[1])
			if err != nil {
				return err
			}

			shared, err := xed25519.DiffieHellman(secret, peer)
			if err != nil {
				return errors.Wrapf(err, "diffie-hellman with %s", opts.encode(peer[:]))
			}
			opts.log.WithField("peer", opts.encode(peer[:])).Debug("computed shared secret")

			fmt.Fprintln(cmd.OutOrStdout(), opts.encode(shared[:]))
			return nil
		},
	}
	return cmd
}
