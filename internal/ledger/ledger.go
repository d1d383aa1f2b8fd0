package ledger

import (
	"errors"
	"math/big"
	"sync"

	"go.uber.org/zap"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAccountFrozen     = errors.New("account frozen")
	ErrBadAmount         = errors.New("amount must be positive")
)

// Ledger moves marketplace funds between accounts. Escrowed offer and bid
// amounts sit in the marketplace holding account until they are refunded or
// paid out at settlement.
type Ledger interface {
	Transfer(from, to string, amount *big.Int) error
	Balance(addr string) *big.Int
	Deposit(addr string, amount *big.Int)
	Freeze(addr string)
	Unfreeze(addr string)
}

type memoryLedger struct {
	mu       sync.Mutex
	balances map[string]*big.Int
	frozen   map[string]struct{}
}

func NewMemoryLedger() Ledger {
	return &memoryLedger{
		balances: make(map[string]*big.Int),
		frozen:   make(map[string]struct{}),
	}
}

func (l *memoryLedger) Transfer(from, to string, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return ErrBadAmount
	}
	if amount.Sign() == 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, frozen := l.frozen[from]; frozen {
		return ErrAccountFrozen
	}
	if _, frozen := l.frozen[to]; frozen {
		return ErrAccountFrozen
	}

	balance, ok := l.balances[from]
	if !ok || balance.Cmp(amount) < 0 {
		return ErrInsufficientFunds
	}

	balance.Sub(balance, amount)
	l.credit(to, amount)

	zap.L().With(
		zap.String("from", from),
		zap.String("to", to),
		zap.String("amount", amount.String()),
	).Debug("Ledger: Transfer")

	return nil
}

func (l *memoryLedger) Balance(addr string) *big.Int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if balance, ok := l.balances[addr]; ok {
		return new(big.Int).Set(balance)
	}

	return new(big.Int)
}

func (l *memoryLedger) Deposit(addr string, amount *big.Int) {
	if amount == nil || amount.Sign() <= 0 {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.credit(addr, amount)
}

func (l *memoryLedger) Freeze(addr string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.frozen[addr] = struct{}{}
}

func (l *memoryLedger) Unfreeze(addr string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.frozen, addr)
}

func (l *memoryLedger) credit(addr string, amount *big.Int) {
	if balance, ok := l.balances[addr]; ok {
		balance.Add(balance, amount)
		return
	}

	l.balances[addr] = new(big.Int).Set(amount)
}
