package marketplace

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrentPrice_DecaysLinearly(t *testing.T) {
	starting := big.NewInt(1000)
	ending := big.NewInt(100)

	assert.Equal(t, big.NewInt(1000), CurrentPrice(starting, ending, 900, 0))
	assert.Equal(t, big.NewInt(550), CurrentPrice(starting, ending, 900, 450))
	assert.Equal(t, big.NewInt(100), CurrentPrice(starting, ending, 900, 900))
}

func TestCurrentPrice_ClampsAfterDuration(t *testing.T) {
	price := CurrentPrice(big.NewInt(1000), big.NewInt(100), 900, 5000)

	assert.Equal(t, big.NewInt(100), price)
}

func TestCurrentPrice_TruncatesTowardZero(t *testing.T) {
	starting := big.NewInt(100)
	ending := big.NewInt(0)

	// The raw deltas are -33.3 and -66.6.
	assert.Equal(t, big.NewInt(67), CurrentPrice(starting, ending, 3, 1))
	assert.Equal(t, big.NewInt(34), CurrentPrice(starting, ending, 3, 2))
}

func TestCurrentPrice_AscendingSchedule(t *testing.T) {
	price := CurrentPrice(big.NewInt(100), big.NewInt(1000), 900, 450)

	assert.Equal(t, big.NewInt(550), price)
}

func TestCurrentPrice_LargeValues(t *testing.T) {
	starting, _ := new(big.Int).SetString("340282366920938463463374607431768211455", 10)
	ending := big.NewInt(0)

	assert.Equal(t, starting, CurrentPrice(starting, ending, 900, 0))
	assert.Equal(t, ending, CurrentPrice(starting, ending, 900, 900))
}
