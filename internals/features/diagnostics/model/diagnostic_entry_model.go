// internals/features/diagnostics/model/diagnostic_entry_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DiagnosticEntryModel: un enregistrement par session complétée. Créé une seule
// fois, jamais mis à jour, supprimé uniquement par action admin.
type DiagnosticEntryModel struct {
	// PK
	DiagnosticEntryID uuid.UUID `json:"diagnostic_entry_id" gorm:"column:diagnostic_entry_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Lead
	DiagnosticEntryUserName string  `json:"diagnostic_entry_user_name" gorm:"column:diagnostic_entry_user_name;type:varchar(120);not null"`
	DiagnosticEntryTitle    string  `json:"diagnostic_entry_title"     gorm:"column:diagnostic_entry_title;type:varchar(120);not null"`
	DiagnosticEntryCompany  string  `json:"diagnostic_entry_company"   gorm:"column:diagnostic_entry_company;type:varchar(20);not null"`
	DiagnosticEntryWebsite  *string `json:"diagnostic_entry_website,omitempty" gorm:"column:diagnostic_entry_website;type:varchar(255)"`

	// Résultat
	DiagnosticEntryScore      int    `json:"diagnostic_entry_score"      gorm:"column:diagnostic_entry_score;not null"`
	DiagnosticEntryDiagnostic string `json:"diagnostic_entry_diagnostic" gorm:"column:diagnostic_entry_diagnostic;type:text;not null"`
	DiagnosticEntryTranscript string `json:"diagnostic_entry_transcript" gorm:"column:diagnostic_entry_transcript;type:text;not null"`
	DiagnosticEntrySector     string `json:"diagnostic_entry_sector"     gorm:"column:diagnostic_entry_sector;type:varchar(20);not null"`

	// Détail structuré des réponses (en plus du compte rendu texte)
	DiagnosticEntryAnswers datatypes.JSON `json:"diagnostic_entry_answers,omitempty" gorm:"column:diagnostic_entry_answers;type:jsonb"`

	DiagnosticEntryCreatedAt time.Time `json:"diagnostic_entry_created_at" gorm:"column:diagnostic_entry_created_at;type:timestamptz;not null;autoCreateTime;index:idx_diagnostic_entries_created_at,sort:desc"`
}

func (DiagnosticEntryModel) TableName() string { return "diagnostic_entries" }
