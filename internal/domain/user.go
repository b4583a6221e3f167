// internal/domain/user.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Balances are stored as NUMERIC(20, 4).
const (
	MoneyScale     = 4
	moneyIntDigits = 16
)

var maxMoney = decimal.New(1, moneyIntDigits)

// ValidAmount reports whether amount fits the balance column exactly: at most
// MoneyScale fractional digits and an absolute value below 10^16.
func ValidAmount(amount decimal.Decimal) bool {
	if !amount.Equal(amount.Round(MoneyScale)) {
		return false
	}
	return amount.Abs().LessThan(maxMoney)
}

// User represents a store customer.
type User struct {
	ID           int64           `db:"id" json:"-"`                 // Primary key, BIGSERIAL in DB
	Username     string          `db:"username" json:"username"`    // Unique, case-sensitive
	PasswordHash string          `db:"password_hash" json:"-"`      // bcrypt hash, never sent to clients
	Balance      decimal.Decimal `db:"balance" json:"balance"`      // NUMERIC(20, 4) in DB
	CreatedAt    time.Time       `db:"created_at" json:"createdAt"` // Timestamp of creation
	UpdatedAt    time.Time       `db:"updated_at" json:"updatedAt"` // Timestamp of last balance change
}

// NewUser creates a new User with a zero balance.
func NewUser(username, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		Balance:      decimal.Zero,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// CanAfford reports whether the balance covers price.
func (u *User) CanAfford(price decimal.Decimal) bool {
	return u.Balance.GreaterThanOrEqual(price)
}
