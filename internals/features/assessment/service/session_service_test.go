package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexdeal_backend/internals/features/assessment/engine"
)

type fakeRecorder struct {
	err  error
	got  RecordInput
	done chan struct{}
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{done: make(chan struct{}, 1)}
}

func (f *fakeRecorder) RecordDiagnostic(_ context.Context, in RecordInput) error {
	f.got = in
	f.done <- struct{}{}
	return f.err
}

// newTestStore neutralise le délai de frappe pour dérouler le parcours sans attente.
func newTestStore(rec LeadRecorder) *Store {
	st := NewStore(rec)
	st.delay = 0
	return st
}

func TestFullJourneyTechMedium(t *testing.T) {
	rec := newFakeRecorder()
	st := newTestStore(rec)

	s := st.Create()
	require.Equal(t, StepIntro, s.Step)

	s, err := st.Start(s.ID)
	require.NoError(t, err)
	require.Equal(t, StepSector, s.Step)

	s, err = st.SelectSector(s.ID, "Tech")
	require.NoError(t, err)
	s, err = st.SelectSize(s.ID, "Medium")
	require.NoError(t, err)

	for i := 0; i < len(engine.Battery); i++ {
		s, err = st.Answer(s.ID, 2)
		require.NoError(t, err)
	}
	require.Equal(t, StepLeadForm, s.Step)
	require.Len(t, s.Answers, len(engine.Battery))

	s, err = st.SubmitLead(s.ID, "Jeanne Martin", "DG", "https://exemple.fr")
	require.NoError(t, err)
	require.Equal(t, StepResult, s.Step)
	require.NotNil(t, s.Outcome)

	assert.Equal(t, 85, s.Outcome.Score)
	assert.Equal(t, "Leader de marché", s.Outcome.Title)
	assert.Equal(t, "Stratégie : Devenez un consolidateur sectoriel.", s.Outcome.Recommendation)
	assert.NotEmpty(t, s.Outcome.Narrative)

	select {
	case <-rec.done:
	case <-time.After(2 * time.Second):
		t.Fatal("l'enregistrement du lead n'a jamais été déclenché")
	}
	assert.Equal(t, "Jeanne Martin", rec.got.UserName)
	assert.Equal(t, "DG", rec.got.Title)
	assert.Equal(t, "Medium", rec.got.Company)
	assert.Equal(t, "Tech", rec.got.Sector)
	assert.Equal(t, 85, rec.got.Score)
	assert.Len(t, rec.got.Answers, len(engine.Battery))
	assert.Contains(t, rec.got.Transcript, engine.Battery[0].Text)
}

func TestPacingBlocksEarlyInput(t *testing.T) {
	st := newTestStore(newFakeRecorder())
	st.delay = time.Hour

	s := st.Create()
	s, err := st.Start(s.ID)
	require.NoError(t, err)

	_, err = st.SelectSector(s.ID, "Tech")
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestWrongStepRejected(t *testing.T) {
	st := newTestStore(newFakeRecorder())
	s := st.Create()

	_, err := st.SelectSector(s.ID, "Tech")
	assert.ErrorIs(t, err, ErrWrongStep)

	_, err = st.Answer(s.ID, 0)
	assert.ErrorIs(t, err, ErrWrongStep)

	_, err = st.SubmitLead(s.ID, "A", "B", "")
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestInvalidChoicesDoNotAdvance(t *testing.T) {
	st := newTestStore(newFakeRecorder())
	s := st.Create()
	s, err := st.Start(s.ID)
	require.NoError(t, err)

	_, err = st.SelectSector(s.ID, "Agriculture")
	assert.ErrorIs(t, err, ErrInvalidChoice)
	cur, err := st.Get(s.ID)
	require.NoError(t, err)
	assert.Equal(t, StepSector, cur.Step)

	s, err = st.SelectSector(s.ID, "Retail")
	require.NoError(t, err)
	_, err = st.SelectSize(s.ID, "Huge")
	assert.ErrorIs(t, err, ErrInvalidChoice)

	s, err = st.SelectSize(s.ID, "Small")
	require.NoError(t, err)
	_, err = st.Answer(s.ID, 3)
	assert.ErrorIs(t, err, ErrInvalidChoice)
	_, err = st.Answer(s.ID, -1)
	assert.ErrorIs(t, err, ErrInvalidChoice)

	cur, err = st.Get(s.ID)
	require.NoError(t, err)
	assert.Empty(t, cur.Answers)
	assert.Zero(t, cur.Tally.Raw)
}

func TestSubmitLeadRequiresNameAndRole(t *testing.T) {
	st := newTestStore(newFakeRecorder())
	s := runToLeadForm(t, st)

	_, err := st.SubmitLead(s.ID, "   ", "DG", "")
	assert.ErrorIs(t, err, ErrMissingField)
	_, err = st.SubmitLead(s.ID, "Jeanne", "", "")
	assert.ErrorIs(t, err, ErrMissingField)

	cur, err := st.Get(s.ID)
	require.NoError(t, err)
	assert.Equal(t, StepLeadForm, cur.Step)
	assert.Nil(t, cur.Outcome)

	// site web optionnel
	s, err = st.SubmitLead(s.ID, "Jeanne", "DG", "")
	require.NoError(t, err)
	assert.Equal(t, StepResult, s.Step)
}

func TestRecorderFailureStillShowsResult(t *testing.T) {
	rec := newFakeRecorder()
	rec.err = errors.New("base indisponible")
	st := newTestStore(rec)

	s := runToLeadForm(t, st)
	s, err := st.SubmitLead(s.ID, "Paul", "CEO", "")
	require.NoError(t, err)
	require.NotNil(t, s.Outcome)

	select {
	case <-rec.done:
	case <-time.After(2 * time.Second):
		t.Fatal("l'enregistrement du lead n'a jamais été déclenché")
	}
}

func TestResetFromAnyStep(t *testing.T) {
	st := newTestStore(newFakeRecorder())
	s := runToLeadForm(t, st)
	created := s.CreatedAt

	s, err := st.Reset(s.ID)
	require.NoError(t, err)
	assert.Equal(t, StepIntro, s.Step)
	assert.Equal(t, created, s.CreatedAt)
	assert.Empty(t, s.Answers)
	assert.Zero(t, s.Tally)
	assert.Empty(t, s.Sector)
	assert.Nil(t, s.Outcome)

	// le parcours repart proprement
	s, err = st.Start(s.ID)
	require.NoError(t, err)
	assert.Equal(t, StepSector, s.Step)
}

func TestUnknownSession(t *testing.T) {
	st := newTestStore(newFakeRecorder())
	_, err := st.Get(uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = st.Reset(uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = st.Start(uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func runToLeadForm(t *testing.T, st *Store) Session {
	t.Helper()
	s := st.Create()
	s, err := st.Start(s.ID)
	require.NoError(t, err)
	s, err = st.SelectSector(s.ID, "Services")
	require.NoError(t, err)
	s, err = st.SelectSize(s.ID, "Medium")
	require.NoError(t, err)
	for i := 0; i < len(engine.Battery); i++ {
		s, err = st.Answer(s.ID, 1)
		require.NoError(t, err)
	}
	require.Equal(t, StepLeadForm, s.Step)
	return s
}
