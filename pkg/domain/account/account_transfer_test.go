package account_test

import (
	"sync"
	"testing"

	domainaccount "github.com/amirasaad/bankcore/pkg/domain/account"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTransferPair(t *testing.T, sourceBalance, destBalance int64) (src, dest *domainaccount.Account) {
	t.Helper()
	src, err := domainaccount.New().
		WithOwner("John Doe").
		WithBalance(decimal.NewFromInt(sourceBalance)).
		Build()
	require.NoError(t, err)
	dest, err = domainaccount.New().
		WithOwner("Jane Smith").
		WithBalance(decimal.NewFromInt(destBalance)).
		Build()
	require.NoError(t, err)
	return src, dest
}

func TestTransferTo(t *testing.T) {
	t.Parallel()

	t.Run("successful transfer", func(t *testing.T) {
		src, dest := newTransferPair(t, 100, 50)

		out, in, err := src.TransferTo(dest, decimal.NewFromInt(30))
		require.NoError(t, err)

		assert.True(t, src.Balance().Equal(decimal.NewFromInt(70)))
		assert.True(t, dest.Balance().Equal(decimal.NewFromInt(80)))

		assert.Equal(t, domainaccount.KindTransferOut, out.Kind)
		assert.True(t, out.Amount.Equal(decimal.NewFromInt(30)))
		assert.True(t, out.Balance.Equal(decimal.NewFromInt(70)))
		require.NotNil(t, out.Counterparty)
		assert.Equal(t, dest.ID, *out.Counterparty)

		assert.Equal(t, domainaccount.KindTransferIn, in.Kind)
		assert.True(t, in.Amount.Equal(decimal.NewFromInt(30)))
		assert.True(t, in.Balance.Equal(decimal.NewFromInt(80)))
		require.NotNil(t, in.Counterparty)
		assert.Equal(t, src.ID, *in.Counterparty)

		assert.True(t, out.CreatedAt.Equal(in.CreatedAt), "both legs share one timestamp")

		require.Len(t, src.History(), 1)
		require.Len(t, dest.History(), 1)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		src, dest := newTransferPair(t, 100, 50)

		_, _, err := src.TransferTo(dest, decimal.NewFromInt(200))
		assert.ErrorIs(t, err, domainaccount.ErrInsufficientFunds)
		assert.True(t, src.Balance().Equal(decimal.NewFromInt(100)))
		assert.True(t, dest.Balance().Equal(decimal.NewFromInt(50)))
		assert.Empty(t, src.History())
		assert.Empty(t, dest.History())
	})

	t.Run("invalid amount", func(t *testing.T) {
		src, dest := newTransferPair(t, 100, 50)
		_, _, err := src.TransferTo(dest, decimal.Zero)
		assert.ErrorIs(t, err, domainaccount.ErrInvalidAmount)
	})

	t.Run("transfer to same account", func(t *testing.T) {
		src, _ := newTransferPair(t, 100, 50)
		_, _, err := src.TransferTo(src, decimal.NewFromInt(10))
		assert.ErrorIs(t, err, domainaccount.ErrSelfTransfer)
		assert.ErrorIs(t, err, domainaccount.ErrInvalidTarget)
		assert.True(t, src.Balance().Equal(decimal.NewFromInt(100)))
	})

	t.Run("nil target", func(t *testing.T) {
		src, _ := newTransferPair(t, 100, 50)
		_, _, err := src.TransferTo(nil, decimal.NewFromInt(10))
		assert.ErrorIs(t, err, domainaccount.ErrInvalidTarget)
	})

	t.Run("inactive target", func(t *testing.T) {
		src, _ := newTransferPair(t, 100, 50)
		dest, err := domainaccount.New().
			WithOwner("Jane Smith").
			WithStatus(domainaccount.StatusInactive).
			Build()
		require.NoError(t, err)

		_, _, err = src.TransferTo(dest, decimal.NewFromInt(10))
		assert.ErrorIs(t, err, domainaccount.ErrInvalidTarget)
		assert.True(t, src.Balance().Equal(decimal.NewFromInt(100)))
		assert.True(t, dest.Balance().IsZero())
	})

	t.Run("entire balance", func(t *testing.T) {
		src, dest := newTransferPair(t, 100, 50)
		_, _, err := src.TransferTo(dest, decimal.NewFromInt(100))
		require.NoError(t, err)
		assert.True(t, src.Balance().IsZero())
		assert.True(t, dest.Balance().Equal(decimal.NewFromInt(150)))
	})
}

// TestTransferConcurrent runs transfers in both directions at once. The
// locks are acquired in uuid order, so this must neither deadlock nor
// lose money.
func TestTransferConcurrent(t *testing.T) {
	t.Parallel()
	src, dest := newTransferPair(t, 1000, 1000)
	one := decimal.NewFromInt(1)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _, _ = src.TransferTo(dest, one)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _, _ = dest.TransferTo(src, one)
			}
		}()
	}
	wg.Wait()

	total := src.Balance().Add(dest.Balance())
	assert.True(t, total.Equal(decimal.NewFromInt(2000)), "money must be conserved, got %s", total)
	assert.False(t, src.Balance().IsNegative())
	assert.False(t, dest.Balance().IsNegative())
	assert.Len(t, src.History(), 400)
	assert.Len(t, dest.History(), 400)
}
