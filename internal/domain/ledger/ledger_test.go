package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starforge/starforge-go/internal/domain/ledger"
	"github.com/starforge/starforge-go/internal/domain/shared"
)

func TestLedger_Debit_AllOrNothing(t *testing.T) {
	// Arrange - enough orichalkum, not enough titanium
	led := ledger.New(map[shared.Resource]int{
		shared.ResourceOrichalkum: 500,
		shared.ResourceTitanium:   50,
	})

	// Act
	err := led.Debit(map[shared.Resource]int{
		shared.ResourceOrichalkum: 100,
		shared.ResourceTitanium:   100,
	})

	// Assert - neither balance moved
	var insufficient *ledger.ErrInsufficientResources
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, shared.ResourceTitanium, insufficient.Resource)
	assert.Equal(t, 100, insufficient.Required)
	assert.Equal(t, 50, insufficient.Available)

	assert.Equal(t, 500, led.Balance(shared.ResourceOrichalkum))
	assert.Equal(t, 50, led.Balance(shared.ResourceTitanium))
}

func TestLedger_Debit_AppliesAllCosts(t *testing.T) {
	// Arrange
	led := ledger.New(map[shared.Resource]int{
		shared.ResourceOrichalkum: 500,
		shared.ResourceTitanium:   200,
	})

	// Act
	err := led.Debit(map[shared.Resource]int{
		shared.ResourceOrichalkum: 300,
		shared.ResourceTitanium:   200,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 200, led.Balance(shared.ResourceOrichalkum))
	assert.Equal(t, 0, led.Balance(shared.ResourceTitanium))
}

func TestLedger_Debit_ExactBalanceSucceeds(t *testing.T) {
	led := ledger.New(map[shared.Resource]int{shared.ResourceCredits: 100})

	require.NoError(t, led.Debit(map[shared.Resource]int{shared.ResourceCredits: 100}))
	assert.Equal(t, 0, led.Balance(shared.ResourceCredits))

	// And nothing further
	err := led.Debit(map[shared.Resource]int{shared.ResourceCredits: 1})
	var insufficient *ledger.ErrInsufficientResources
	assert.ErrorAs(t, err, &insufficient)
}

func TestLedger_Credit_RejectsNegative(t *testing.T) {
	// Arrange
	led := ledger.New(nil)

	// Act
	err := led.Credit(shared.ResourceOrichalkum, -5)

	// Assert
	var negative *ledger.ErrNegativeAmount
	require.ErrorAs(t, err, &negative)
	assert.Equal(t, 0, led.Balance(shared.ResourceOrichalkum))
}

func TestLedger_CreditAll(t *testing.T) {
	// Arrange
	led := ledger.New(map[shared.Resource]int{shared.ResourceCredits: 10})

	// Act
	err := led.CreditAll(map[shared.Resource]int{
		shared.ResourceCredits:   90,
		shared.ResourceDeuterium: 40,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 100, led.Balance(shared.ResourceCredits))
	assert.Equal(t, 40, led.Balance(shared.ResourceDeuterium))

	// A negative entry fails without partial application
	err = led.CreditAll(map[shared.Resource]int{
		shared.ResourceCredits:   5,
		shared.ResourceDeuterium: -1,
	})
	var negative *ledger.ErrNegativeAmount
	require.ErrorAs(t, err, &negative)
	assert.Equal(t, 100, led.Balance(shared.ResourceCredits))
	assert.Equal(t, 40, led.Balance(shared.ResourceDeuterium))
}

func TestLedger_StockReturnsCopy(t *testing.T) {
	// Arrange
	led := ledger.New(map[shared.Resource]int{shared.ResourceTitanium: 7})

	// Act
	stock := led.Stock()
	stock[shared.ResourceTitanium] = 9999

	// Assert
	assert.Equal(t, 7, led.Balance(shared.ResourceTitanium))
}
