package cmd

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	chronoerr "github.com/msto63/chrono/core/error"
	"github.com/msto63/chrono/utils/mathx"
)

var decimalUnsigned bool

var decimalCmd = &cobra.Command{
	Use:   "decimal <integer>...",
	Short: "Convert integers up to 128 bits through the word-based decimal converter",
	Long: `Reads integers (decimal, or 0x hex), splits them into 64-bit words and
writes them back in decimal. Negative values are stored in two's complement.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			hi, lo, err := splitWords(arg, decimalUnsigned)
			if err != nil {
				printError("reading integer", err)
				return err
			}
			var s string
			if decimalUnsigned {
				s = mathx.FormatUint128(hi, lo)
			} else {
				s = mathx.FormatInt128(int64(hi), lo)
			}
			fmt.Println(renderRows(arg,
				row{"words", fmt.Sprintf("%#016x %#016x", hi, lo)},
				row{"decimal", s},
			))
		}
		return nil
	},
}

func init() {
	decimalCmd.Flags().BoolVarP(&decimalUnsigned, "unsigned", "u", false, "treat the words as unsigned")
	rootCmd.AddCommand(decimalCmd)
}

var (
	twoTo128  = new(big.Int).Lsh(big.NewInt(1), 128)
	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minInt128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	wordMask  = new(big.Int).SetUint64(^uint64(0))
)

// splitWords returns the high and low 64-bit words of s.
func splitWords(s string, unsigned bool) (hi, lo uint64, err error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return 0, 0, chronoerr.New("not an integer").
			WithCode(chronoerr.CodeInvalidInput).
			WithOperation("decimal").
			WithDetail("input", s)
	}
	outOfRange := v.Cmp(minInt128) < 0 || v.Cmp(maxInt128) > 0
	if unsigned {
		outOfRange = v.Sign() < 0 || v.BitLen() > 128
	}
	if outOfRange {
		return 0, 0, chronoerr.New("integer does not fit in 128 bits").
			WithCode(chronoerr.CodeValueOutOfRange).
			WithOperation("decimal").
			WithDetail("input", s)
	}
	if v.Sign() < 0 {
		v.Add(v, twoTo128)
	}
	lo = new(big.Int).And(v, wordMask).Uint64()
	hi = new(big.Int).Rsh(v, 64).Uint64()
	return hi, lo, nil
}
