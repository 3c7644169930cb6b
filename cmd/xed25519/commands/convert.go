package commands

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/AlexanderYastrebov/xed25519"
)

func compressCmd(opts *options) *cobra.Command {
	var sign int

	cmd := &cobra.Command{
		Use:   "compress PUBLIC",
		Short: "Convert a curve25519 public key to an edwards25519 public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			public, err := opts.publicKey(args[0])
			if err != nil {
				return err
			}

			edwards, err := xed25519.ToEdwards(public, sign)
			if err != nil {
				return errors.Wrapf(err, "compress %s", opts.encode(public[:]))
			}
			opts.log.WithFields(logrus.Fields{
				"public":  opts.encode(public[:]),
				"edwards": opts.encode(edwards[:]),
			}).Debug("converted to edwards25519")

			fmt.Fprintln(cmd.OutOrStdout(), opts.encode(edwards[:]))
			return nil
		},
	}
	cmd.Flags().IntVar(&sign, "sign", 0, "sign of the edwards25519 x-coordinate, 0 or 1")
	return cmd
}

func decompressCmd(opts *options) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "decompress EDWARDS",
		Short: "Convert an edwards25519 public key to a curve25519 public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edwards, err := opts.edwardsPublicKey(args[0])
			if err != nil {
				return err
			}

			var decodeOpts []xed25519.DecodeOption
			if strict {
				decodeOpts = append(decodeOpts, xed25519.Strict())
			}

			public, err := xed25519.DecompressPublic(edwards, decodeOpts...)
			if err != nil {
				return errors.Wrapf(err, "decompress %s", opts.encode(edwards[:]))
			}
			opts.log.WithFields(logrus.Fields{
				"edwards": opts.encode(edwards[:]),
				"public":  opts.encode(public[:]),
				"strict":  strict,
			}).Debug("converted to curve25519")

			fmt.Fprintln(cmd.OutOrStdout(), opts.encode(public[:]))
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "reject non-canonical y-coordinates")
	return cmd
}
