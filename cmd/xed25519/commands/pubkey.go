package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlexanderYastrebov/xed25519"
)

func pubkeyCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pubkey SECRET",
		Short: "Print the curve25519 public key of a secret key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := opts.secretKey(args[0])
			if err != nil {
				return err
			}
			public := xed25519.DerivePublic(secret)
			opts.log.WithField("public", opts.encode(public[:])).Debug("derived public key")

			fmt.Fprintln(cmd.OutOrStdout(), opts.encode(public[:]))
			return nil
		},
	}
	return cmd
}

func (o *options) secretKey(s string) (xed25519.SecretKey, error) {
	b, err := o.decode("secret key", s)
	if err != nil {
		return xed25519.SecretKey{}, err
	}
	return xed25519.NewSecretKey(b)
}

func (o *options) publicKey(s string) (xed25519.PublicKey, error) {
	b, err := o.decode("public key", s)
	if err != nil {
		return xed25519.PublicKey{}, err
	}
	return xed25519.NewPublicKey(b)
}

func (o *options) edwardsPublicKey(s string) (xed25519.EdwardsPublicKey, error) {
	b, err := o.decode("edwards public key", s)
	if err != nil {
		return xed25519.EdwardsPublicKey{}, err
	}
	return xed25519.NewEdwardsPublicKey(b)
}
