// internals/features/diagnostics/dto/diagnostic_dto.go
package dto

import (
	"encoding/json"
	"time"

	model "nexdeal_backend/internals/features/diagnostics/model"
)

/* =========================
   RESPONSE (liste/détail admin)
   ========================= */

type DiagnosticEntryResponse struct {
	ID         string          `json:"id"`
	CreatedAt  string          `json:"created_at"` // ISO-8601
	UserName   string          `json:"user_name"`
	Title      string          `json:"title"`
	Company    string          `json:"company"`
	Website    string          `json:"website,omitempty"`
	Score      int             `json:"score"`
	Diagnostic string          `json:"diagnostic"`
	Transcript string          `json:"transcript"`
	Sector     string          `json:"sector"`
	Answers    json.RawMessage `json:"answers,omitempty"`
}

func ToDiagnosticEntryResponse(m *model.DiagnosticEntryModel) DiagnosticEntryResponse {
	website := ""
	if m.DiagnosticEntryWebsite != nil {
		website = *m.DiagnosticEntryWebsite
	}
	return DiagnosticEntryResponse{
		ID:         m.DiagnosticEntryID.String(),
		CreatedAt:  m.DiagnosticEntryCreatedAt.Format(time.RFC3339),
		UserName:   m.DiagnosticEntryUserName,
		Title:      m.DiagnosticEntryTitle,
		Company:    m.DiagnosticEntryCompany,
		Website:    website,
		Score:      m.DiagnosticEntryScore,
		Diagnostic: m.DiagnosticEntryDiagnostic,
		Transcript: m.DiagnosticEntryTranscript,
		Sector:     m.DiagnosticEntrySector,
		Answers:    json.RawMessage(m.DiagnosticEntryAnswers),
	}
}

func ToDiagnosticEntryResponses(ms []model.DiagnosticEntryModel) []DiagnosticEntryResponse {
	out := make([]DiagnosticEntryResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToDiagnosticEntryResponse(&ms[i]))
	}
	return out
}
