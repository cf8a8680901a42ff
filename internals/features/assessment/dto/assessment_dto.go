// internals/features/assessment/dto/assessment_dto.go
package dto

import (
	"time"

	"nexdeal_backend/internals/features/assessment/engine"
	"nexdeal_backend/internals/features/assessment/service"
)

/* =========================
   REQUEST
   ========================= */

type SectorRequest struct {
	Sector string `json:"sector" validate:"required"`
}

type SizeRequest struct {
	Size string `json:"size" validate:"required"`
}

// Option est un index dans les trois réponses de la question courante.
type AnswerRequest struct {
	Option *int `json:"option" validate:"required,min=0,max=2"`
}

type LeadRequest struct {
	Name    string `json:"name" validate:"required"`
	Role    string `json:"role" validate:"required"`
	Website string `json:"website"`
}

/* =========================
   RESPONSE
   ========================= */

var prompts = map[service.Step]string{
	service.StepIntro:  "Bonjour ! Je suis l'IA de NexDeal. Analysons votre compétitivité réelle.",
	service.StepSector: "Pour commencer, quel est votre secteur d'activité principal ?",
	service.StepSize:   "Quelle est la taille de votre entreprise (CA annuel) ?",
}

const (
	promptLeadForm = "Analyse presque terminée ! Pour générer votre rapport personnalisé, j'ai besoin de quelques infos :"
	promptResult   = "Analyse complétée. Voici mon diagnostic stratégique :"
)

type SessionView struct {
	SessionID string `json:"session_id"`
	Step      int    `json:"step"`

	// Typing: le délai conversationnel n'est pas écoulé; les affordances de
	// saisie de l'étape sont masquées tant qu'il est vrai.
	Typing    bool  `json:"typing"`
	ReadyInMs int64 `json:"ready_in_ms,omitempty"`

	Prompt  string                `json:"prompt,omitempty"`
	Sectors []engine.SectorChoice `json:"sectors,omitempty"`
	Sizes   []engine.SizeChoice   `json:"sizes,omitempty"`
	Options []engine.Option       `json:"options,omitempty"`

	Result *service.Outcome `json:"result,omitempty"`
}

func NewSessionView(s service.Session, now time.Time) SessionView {
	v := SessionView{
		SessionID: s.ID.String(),
		Step:      int(s.Step),
		Typing:    now.Before(s.ReadyAt),
	}
	if v.Typing {
		v.ReadyInMs = s.ReadyAt.Sub(now).Milliseconds()
		return v
	}

	switch {
	case s.Step == service.StepIntro, s.Step == service.StepSector, s.Step == service.StepSize:
		v.Prompt = prompts[s.Step]
		if s.Step == service.StepSector {
			v.Sectors = engine.Sectors
		}
		if s.Step == service.StepSize {
			v.Sizes = engine.Sizes
		}
	case s.Step >= 3 && s.Step < service.StepLeadForm:
		q := engine.Battery[int(s.Step)-3]
		v.Prompt = q.Text
		v.Options = q.Options
	case s.Step == service.StepLeadForm:
		v.Prompt = promptLeadForm
	case s.Step == service.StepResult:
		v.Prompt = promptResult
		v.Result = s.Outcome
	}
	return v
}
