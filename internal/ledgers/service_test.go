package ledgers

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bahikhata-dev/bahikhata/internal/model"
)

func TestService_CaseInsensitiveLookup(t *testing.T) {
	svc := NewService([]model.LedgerAccount{
		{ID: "id-1", Name: "HDFC Bank", Category: "Assets", Group: "Current Assets"},
	})

	a, ok := svc.ByName("hdfc bank")
	require.True(t, ok)
	assert.Equal(t, "HDFC Bank", a.Name)
	assert.True(t, svc.Exists("HDFC BANK"))
	assert.False(t, svc.Exists("ICICI Bank"))
}

func TestService_AddRejectsDuplicateName(t *testing.T) {
	svc := NewService([]model.LedgerAccount{{ID: "id-1", Name: "Cash"}})

	_, err := svc.Add(model.LedgerAccount{Name: "CASH"})
	assert.Error(t, err)
}

func TestService_AddAssignsID(t *testing.T) {
	svc := NewService(nil)

	a, err := svc.Add(model.LedgerAccount{Name: "Freight Outward", Category: "Expenditure"})
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)

	got, ok := svc.ByID(a.ID)
	require.True(t, ok)
	assert.Equal(t, "Freight Outward", got.Name)
}

func TestService_AddRejectsOrphanParent(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.Add(model.LedgerAccount{Name: "Nested", ParentLedgerID: "missing"})
	assert.Error(t, err)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	svc := NewService(DefaultLedgers())
	_, err := svc.Add(model.LedgerAccount{Name: "Site Expenses", Category: "Expenditure", Group: "Direct Expenses"})
	require.NoError(t, err)
	require.NoError(t, svc.Save(dir))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Len(t, loaded.All(), len(DefaultLedgers())+1)
	assert.True(t, loaded.Exists("site expenses"))
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	svc, err := Load(filepath.Join(t.TempDir(), "nowhere"))
	require.NoError(t, err)
	assert.Empty(t, svc.All())
}
