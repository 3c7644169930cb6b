package commands

import (
	"crypto/rand"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	hex      bool
	logLevel string

	rand io.Reader
	log  *logrus.Logger
}

// Execute runs the root command with os.Args.
func Execute() error {
	return newRootCmd(rand.Reader).Execute()
}

func newRootCmd(rand io.Reader) *cobra.Command {
	opts := &options{
		rand: rand,
		log:  logrus.New(),
	}

	root := &cobra.Command{
		Use:           "xed25519",
		Short:         "Generate curve25519 keys and convert them to and from edwards25519",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return errors.Wrap(err, "invalid --log-level")
			}
			opts.log.SetOutput(cmd.ErrOrStderr())
			opts.log.SetLevel(level)
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&opts.hex, "hex", false, "read and write keys as hex instead of base64")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		genkeyCmd(opts),
		pubkeyCmd(opts),
		compressCmd(opts),
		decompressCmd(opts),
		dhCmd(opts),
	)
	return root
}
