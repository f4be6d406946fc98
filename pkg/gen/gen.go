package gen

import (
	"crypto/rand"
	"math/big"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
)

var Module = fx.Module("gen",
	fx.Provide(NewNode),
)

func NewNode() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Suffix returns n random lowercase base36 characters, used for the tail of
// tenant identifiers.
func Suffix(n int) string {
	out := make([]byte, n)
	max := big.NewInt(int64(len(suffixAlphabet)))
	for i := range out {
		v, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform source is broken.
			out[i] = suffixAlphabet[0]
			continue
		}
		out[i] = suffixAlphabet[v.Int64()]
	}
	return string(out)
}
