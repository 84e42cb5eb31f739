package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sacco-backend/internal/models"
)

func TestExportImportRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	member := addTestMember(t, store, "Joseph Ngamau")
	loan := addTestLoan(t, store, member.ID)
	_, err := store.RecordPayment(models.PaymentInput{LoanID: loan.ID, Amount: 4000})
	require.NoError(t, err)

	exported := store.ExportSnapshot()
	require.NotNil(t, exported.ExportDate)
	require.Len(t, exported.Members, 1)
	require.Len(t, exported.Loans, 1)
	require.Len(t, exported.Payments, 1)

	// Import into a fresh store and compare observable state
	restored, _ := newTestStore(t)
	require.NoError(t, restored.ImportSnapshot(exported))

	assert.Equal(t, store.Members(), restored.Members())
	assert.Equal(t, store.Loans(), restored.Loans())
	assert.Equal(t, store.Payments(), restored.Payments())

	reloaded, err := restored.LoanByID(loan.ID)
	require.NoError(t, err)
	assert.Equal(t, 7000.0, reloaded.PendingBalance)
}

func TestExportStampsLastBackup(t *testing.T) {
	store, _ := newTestStore(t)

	require.Nil(t, store.Settings().LastBackup)
	exported := store.ExportSnapshot()

	settings := store.Settings()
	require.NotNil(t, settings.LastBackup)
	assert.Equal(t, *exported.ExportDate, *settings.LastBackup)
}

func TestImportReplacesOnlyProvidedSections(t *testing.T) {
	store, _ := newTestStore(t)
	member := addTestMember(t, store, "Joseph Ngamau")
	addTestLoan(t, store, member.ID)

	err := store.ImportSnapshot(&models.Snapshot{
		Members: []*models.Member{
			{ID: "MEM010", FullName: "Gerald Gitau", Status: models.MemberStatusActive},
		},
	})
	require.NoError(t, err)

	members := store.Members()
	require.Len(t, members, 1)
	assert.Equal(t, "MEM010", members[0].ID)
	// Loans were absent from the snapshot and are untouched
	assert.Len(t, store.Loans(), 1)
}

func TestImportNilSnapshot(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.ImportSnapshot(nil)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestResetData(t *testing.T) {
	store, _ := newTestStore(t)
	member := addTestMember(t, store, "Joseph Ngamau")
	addTestLoan(t, store, member.ID)

	store.ResetData()

	assert.Empty(t, store.Members())
	assert.Empty(t, store.Loans())
	assert.Empty(t, store.Payments())

	logs := store.ActivityLogs(0)
	require.NotEmpty(t, logs)
	assert.Equal(t, "Data Cleared", logs[0].Action)
}

func TestUpdateSettings(t *testing.T) {
	store, _ := newTestStore(t)

	name := "Umoja SACCO"
	rate := 12.5
	_, err := store.UpdateSettings(models.SettingsUpdate{
		SaccoName:           &name,
		DefaultInterestRate: &rate,
	})
	require.NoError(t, err)

	settings := store.Settings()
	assert.Equal(t, "Umoja SACCO", settings.SaccoName)
	assert.Equal(t, 12.5, settings.DefaultInterestRate)
	assert.Equal(t, "KES", settings.Currency)
}

func TestUpdateSettingsValidation(t *testing.T) {
	store, _ := newTestStore(t)

	rate := -1.0
	_, err := store.UpdateSettings(models.SettingsUpdate{DefaultInterestRate: &rate})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	// A rejected update leaves settings untouched
	assert.Equal(t, 10.0, store.Settings().DefaultInterestRate)
}
