package cli

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nestjam/astrotools/internal/base58"
)

// ErrNotInteger is returned for arguments that are not decimal integers.
var ErrNotInteger = errors.New("not a decimal integer")

// Base58Cmd returns the flickr58 root command.
func Base58Cmd() *cobra.Command {
	var decode bool

	cmd := &cobra.Command{
		Use:   "flickr58 [-d] <value>",
		Short: "Encode a number as a flic.kr base58 string",
		Long: `Encode a non-negative decimal integer with the flic.kr base58 alphabet:

  123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ

With -d the argument is decoded back to a decimal integer.

Examples:
  flickr58 4379822687
  flickr58 -d 7F2JGg`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				s   string
				err error
			)

			if decode {
				s, err = decodeArg(args[0])
			} else {
				s, err = encodeArg(args[0])
			}

			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.Flags().BoolVarP(&decode, "decode", "d", false, "decode a base58 string")

	return cmd
}

func encodeArg(arg string) (string, error) {
	n, ok := new(big.Int).SetString(arg, 10)
	if !ok {
		return "", errors.Wrapf(ErrNotInteger, "%q", arg)
	}

	s, err := base58.EncodeBig(n)
	if err != nil {
		return "", errors.Wrapf(err, "%q", arg)
	}

	return s, nil
}

func decodeArg(arg string) (string, error) {
	n, err := base58.DecodeBig(arg)
	if err != nil {
		return "", err
	}

	return n.String(), nil
}
