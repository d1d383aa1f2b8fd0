package ledger

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransfer_MovesFunds(t *testing.T) {
	l := NewMemoryLedger()
	l.Deposit("0xa", big.NewInt(100))

	require.NoError(t, l.Transfer("0xa", "0xb", big.NewInt(40)))

	assert.Equal(t, big.NewInt(60), l.Balance("0xa"))
	assert.Equal(t, big.NewInt(40), l.Balance("0xb"))
}

func TestTransfer_RejectsOverdraft(t *testing.T) {
	l := NewMemoryLedger()
	l.Deposit("0xa", big.NewInt(100))

	err := l.Transfer("0xa", "0xb", big.NewInt(101))
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	err = l.Transfer("0xunknown", "0xb", big.NewInt(1))
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	assert.Equal(t, big.NewInt(100), l.Balance("0xa"))
}

func TestTransfer_RejectsBadAmounts(t *testing.T) {
	l := NewMemoryLedger()
	l.Deposit("0xa", big.NewInt(100))

	assert.ErrorIs(t, l.Transfer("0xa", "0xb", nil), ErrBadAmount)
	assert.ErrorIs(t, l.Transfer("0xa", "0xb", big.NewInt(-1)), ErrBadAmount)

	// A zero transfer is a no-op, not an error.
	assert.NoError(t, l.Transfer("0xa", "0xb", new(big.Int)))
	assert.Equal(t, big.NewInt(100), l.Balance("0xa"))
}

func TestFreeze_BlocksTransfers(t *testing.T) {
	l := NewMemoryLedger()
	l.Deposit("0xa", big.NewInt(100))

	l.Freeze("0xa")
	assert.ErrorIs(t, l.Transfer("0xa", "0xb", big.NewInt(10)), ErrAccountFrozen)

	l.Unfreeze("0xa")
	l.Freeze("0xb")
	assert.ErrorIs(t, l.Transfer("0xa", "0xb", big.NewInt(10)), ErrAccountFrozen)

	l.Unfreeze("0xb")
	assert.NoError(t, l.Transfer("0xa", "0xb", big.NewInt(10)))
}

func TestBalance_ReturnsACopy(t *testing.T) {
	l := NewMemoryLedger()
	l.Deposit("0xa", big.NewInt(100))

	balance := l.Balance("0xa")
	balance.SetInt64(0)

	assert.Equal(t, big.NewInt(100), l.Balance("0xa"))
}
