package questions

import (
	"strings"
	"testing"

	"github.com/Adams-404/Between/domain/core/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBank(t *testing.T) {
	bank := Default()
	require.Equal(t, 60, bank.Len())

	for _, q := range bank.All() {
		assert.NotEmpty(t, q.Text)
		assert.Equal(t, strings.ToLower(q.Category), q.Category, "category tags are lowercase")

		found, ok := bank.ByID(q.ID)
		require.True(t, ok)
		assert.Equal(t, q, found)
	}
}

func TestNewBankRejectsBadInput(t *testing.T) {
	_, err := NewBank(nil)
	assert.Error(t, err)

	_, err = NewBank([]entities.Question{{ID: 1}, {ID: 1}})
	assert.Error(t, err)
}

func TestAllReturnsCopy(t *testing.T) {
	bank := Default()
	all := bank.All()
	all[0].Text = "changed"
	assert.NotEqual(t, "changed", bank.At(0).Text)
}

func TestByIDUnknown(t *testing.T) {
	_, ok := Default().ByID(-1)
	assert.False(t, ok)
}
