// internals/features/assessment/service/session_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"nexdeal_backend/internals/features/assessment/engine"
)

/* =========================
   Étapes (ordre strict, jamais de retour arrière hors Reset)
   ========================= */

type Step int

const (
	StepIntro         Step = 0
	StepSector        Step = 1
	StepSize          Step = 2
	stepFirstQuestion Step = 3
)

// 3..7 = questions, 8 = formulaire lead, 9 = résultat
var (
	StepLeadForm = stepFirstQuestion + Step(len(engine.Battery))
	StepResult   = StepLeadForm + 1
)

/* =========================
   Erreurs de transition
   ========================= */

var (
	ErrSessionNotFound = errors.New("session introuvable")
	ErrWrongStep       = errors.New("action impossible à cette étape")
	ErrNotReady        = errors.New("l'analyste est en train d'écrire")
	ErrInvalidChoice   = errors.New("choix invalide")
	ErrMissingField    = errors.New("champ requis manquant")
)

/* =========================
   Session (transiente, en mémoire)
   ========================= */

type AnswerRecord struct {
	QuestionID int     `json:"question_id"`
	Question   string  `json:"question"`
	Option     string  `json:"option"`
	Score      int     `json:"score"`
	Weight     float64 `json:"weight"`
}

type Lead struct {
	Name    string
	Role    string
	Website string
}

type Outcome struct {
	Score          int    `json:"score"`
	Title          string `json:"title"`
	Recommendation string `json:"recommendation"`
	Narrative      string `json:"narrative"`
}

type Session struct {
	ID         uuid.UUID
	Step       Step
	Sector     engine.Sector
	Size       engine.CompanySize
	Tally      engine.Tally
	Answers    []AnswerRecord
	Transcript string
	Lead       Lead
	Outcome    *Outcome
	ReadyAt    time.Time
	CreatedAt  time.Time
	LastSeen   time.Time
}

/* =========================
   Passerelle de persistance (collaborateur externe)
   ========================= */

type RecordInput struct {
	CreatedAt  time.Time
	UserName   string
	Title      string
	Company    string
	Website    string
	Score      int
	Diagnostic string
	Transcript string
	Sector     string
	Answers    []AnswerRecord
}

type LeadRecorder interface {
	RecordDiagnostic(ctx context.Context, in RecordInput) error
}

/* =========================
   Store
   ========================= */

// Délai conversationnel entre deux étapes : les affordances de saisie de la
// nouvelle étape restent bloquées tant qu'il n'est pas écoulé.
const botDelay = 800 * time.Millisecond

const sessionTTL = 30 * time.Minute

type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	recorder LeadRecorder

	now   func() time.Time
	delay time.Duration
	ttl   time.Duration
}

func NewStore(recorder LeadRecorder) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		recorder: recorder,
		now:      time.Now,
		delay:    botDelay,
		ttl:      sessionTTL,
	}
}

// StartReaper purge périodiquement les sessions abandonnées.
func (st *Store) StartReaper() {
	go func() {
		for {
			time.Sleep(5 * time.Minute)
			st.mu.Lock()
			cutoff := st.now().Add(-st.ttl)
			pruned := 0
			for id, s := range st.sessions {
				if s.LastSeen.Before(cutoff) {
					delete(st.sessions, id)
					pruned++
				}
			}
			st.mu.Unlock()
			if pruned > 0 {
				log.Printf("[CLEANUP] %d session(s) d'évaluation purgée(s)", pruned)
			}
		}
	}()
}

/* =========================
   Transitions
   ========================= */

func (st *Store) Create() Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	s := &Session{
		ID:        uuid.New(),
		Step:      StepIntro,
		ReadyAt:   now,
		CreatedAt: now,
		LastSeen:  now,
	}
	st.sessions[s.ID] = s
	return *s
}

func (st *Store) Get(id uuid.UUID) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	s.LastSeen = st.now()
	return *s, nil
}

// guard vérifie existence, étape attendue et délai de frappe écoulé.
func (st *Store) guard(id uuid.UUID, want Step) (*Session, error) {
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.Step != want {
		return nil, ErrWrongStep
	}
	if st.now().Before(s.ReadyAt) {
		return nil, ErrNotReady
	}
	return s, nil
}

func (st *Store) advance(s *Session, to Step) {
	now := st.now()
	s.Step = to
	s.ReadyAt = now.Add(st.delay)
	s.LastSeen = now
}

func (st *Store) Start(id uuid.UUID) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, err := st.guard(id, StepIntro)
	if err != nil {
		return Session{}, err
	}
	st.advance(s, StepSector)
	return *s, nil
}

func (st *Store) SelectSector(id uuid.UUID, raw string) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, err := st.guard(id, StepSector)
	if err != nil {
		return Session{}, err
	}
	sector, ok := engine.ParseSector(raw)
	if !ok {
		return Session{}, ErrInvalidChoice
	}
	s.Sector = sector
	st.advance(s, StepSize)
	return *s, nil
}

func (st *Store) SelectSize(id uuid.UUID, raw string) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, err := st.guard(id, StepSize)
	if err != nil {
		return Session{}, err
	}
	size, ok := engine.ParseSize(raw)
	if !ok {
		return Session{}, ErrInvalidChoice
	}
	s.Size = size
	st.advance(s, stepFirstQuestion)
	return *s, nil
}

func (st *Store) Answer(id uuid.UUID, optionIdx int) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if s.Step < stepFirstQuestion || s.Step >= StepLeadForm {
		return Session{}, ErrWrongStep
	}
	if st.now().Before(s.ReadyAt) {
		return Session{}, ErrNotReady
	}

	q := engine.Battery[s.Step-stepFirstQuestion]
	if optionIdx < 0 || optionIdx >= len(q.Options) {
		return Session{}, ErrInvalidChoice
	}
	opt := q.Options[optionIdx]
	weight := q.Weight[s.Sector]

	s.Tally.Add(weight, opt.Score)
	s.Answers = append(s.Answers, AnswerRecord{
		QuestionID: q.ID,
		Question:   q.Text,
		Option:     opt.Label,
		Score:      opt.Score,
		Weight:     weight,
	})
	s.Transcript += fmt.Sprintf("\nQ: %s\nR: %s\n", q.Text, opt.Label)

	st.advance(s, s.Step+1)
	return *s, nil
}

func (st *Store) SubmitLead(id uuid.UUID, name, role, website string) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, err := st.guard(id, StepLeadForm)
	if err != nil {
		return Session{}, err
	}

	name = strings.TrimSpace(name)
	role = strings.TrimSpace(role)
	website = strings.TrimSpace(website)
	if name == "" || role == "" {
		return Session{}, ErrMissingField
	}
	s.Lead = Lead{Name: name, Role: role, Website: website}

	ratio := s.Tally.Ratio()
	diag := engine.Diagnose(ratio)
	s.Outcome = &Outcome{
		Score:          s.Tally.FinalScore(),
		Title:          diag.Title,
		Recommendation: diag.Recommendation,
		Narrative:      engine.ComposeNarrative(ratio, s.Sector, s.Size),
	}
	st.advance(s, StepResult)

	// Persistance fire-and-forget : un échec est loggé, jamais bloquant pour
	// l'affichage du résultat.
	in := RecordInput{
		CreatedAt:  st.now(),
		UserName:   s.Lead.Name,
		Title:      s.Lead.Role,
		Company:    string(s.Size),
		Website:    s.Lead.Website,
		Score:      s.Outcome.Score,
		Diagnostic: s.Outcome.Narrative,
		Transcript: s.Transcript,
		Sector:     string(s.Sector),
		Answers:    append([]AnswerRecord(nil), s.Answers...),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := st.recorder.RecordDiagnostic(ctx, in); err != nil {
			log.Printf("[DIAG] enregistrement du lead échoué (résultat affiché quand même): %v", err)
		}
	}()

	return *s, nil
}

// Reset: disponible depuis n'importe quelle étape, retour inconditionnel à Intro
// avec remise à zéro complète.
func (st *Store) Reset(id uuid.UUID) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	now := st.now()
	*s = Session{
		ID:        s.ID,
		Step:      StepIntro,
		ReadyAt:   now,
		CreatedAt: s.CreatedAt,
		LastSeen:  now,
	}
	return *s, nil
}
