package service

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "nexdeal_backend/internals/features/diagnostics/model"
)

func TestCSVFilename(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "base_donnees_nexdeal_2025-03-14.csv", CSVFilename(now))
}

func TestExportCSVHeadersOnlyWhenEmpty(t *testing.T) {
	data, err := ExportCSV(nil)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{
		"Date", "Nom", "Titre", "Entreprise", "Site Web", "Score", "Synthese", "Compte Rendu Detaille",
	}, rows[0])
}

func TestExportCSVQuotesCommasAndNewlines(t *testing.T) {
	website := "https://exemple.fr"
	entries := []model.DiagnosticEntryModel{
		{
			DiagnosticEntryUserName:   `Jeanne "JM" Martin`,
			DiagnosticEntryTitle:      "Directrice, Générale",
			DiagnosticEntryCompany:    "Medium",
			DiagnosticEntryWebsite:    &website,
			DiagnosticEntryScore:      85,
			DiagnosticEntryDiagnostic: "Ligne 1\n\nLigne 2",
			DiagnosticEntryTranscript: "Q: prix ?\nR: Premium",
			DiagnosticEntryCreatedAt:  time.Date(2025, 3, 14, 9, 30, 5, 0, time.UTC),
		},
		{
			DiagnosticEntryUserName:   "Paul",
			DiagnosticEntryTitle:      "CEO",
			DiagnosticEntryCompany:    "Small",
			DiagnosticEntryWebsite:    nil,
			DiagnosticEntryScore:      32,
			DiagnosticEntryDiagnostic: "Synthèse",
			DiagnosticEntryTranscript: "",
			DiagnosticEntryCreatedAt:  time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC),
		},
	}

	data, err := ExportCSV(entries)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// champs à virgules, guillemets et sauts de ligne restitués intacts
	assert.Equal(t, "2025-03-14 09:30:05", rows[1][0])
	assert.Equal(t, `Jeanne "JM" Martin`, rows[1][1])
	assert.Equal(t, "Directrice, Générale", rows[1][2])
	assert.Equal(t, "https://exemple.fr", rows[1][4])
	assert.Equal(t, "85", rows[1][5])
	assert.Equal(t, "Ligne 1\n\nLigne 2", rows[1][6])
	assert.Equal(t, "Q: prix ?\nR: Premium", rows[1][7])

	// site web absent → colonne vide
	assert.Equal(t, "", rows[2][4])
	assert.Equal(t, "32", rows[2][5])
}
