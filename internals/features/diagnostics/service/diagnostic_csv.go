// internals/features/diagnostics/service/diagnostic_csv.go
package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	model "nexdeal_backend/internals/features/diagnostics/model"
)

// En-têtes du format d'export partenaire (ordre contractuel)
var csvHeaders = []string{
	"Date", "Nom", "Titre", "Entreprise", "Site Web", "Score", "Synthese", "Compte Rendu Detaille",
}

func CSVFilename(now time.Time) string {
	return fmt.Sprintf("base_donnees_nexdeal_%s.csv", now.Format("2006-01-02"))
}

// ExportCSV sérialise les entrées en CSV RFC-4180 (guillemets doublés par encoding/csv).
func ExportCSV(entries []model.DiagnosticEntryModel) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write(csvHeaders); err != nil {
		return nil, err
	}
	for i := range entries {
		e := &entries[i]
		website := ""
		if e.DiagnosticEntryWebsite != nil {
			website = *e.DiagnosticEntryWebsite
		}
		rec := []string{
			e.DiagnosticEntryCreatedAt.Format("2006-01-02 15:04:05"),
			e.DiagnosticEntryUserName,
			e.DiagnosticEntryTitle,
			e.DiagnosticEntryCompany,
			website,
			strconv.Itoa(e.DiagnosticEntryScore),
			e.DiagnosticEntryDiagnostic,
			e.DiagnosticEntryTranscript,
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
