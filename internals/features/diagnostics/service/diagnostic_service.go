// internals/features/diagnostics/service/diagnostic_service.go
package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	assessService "nexdeal_backend/internals/features/assessment/service"
	model "nexdeal_backend/internals/features/diagnostics/model"
)

// DiagnosticService implémente la passerelle de persistance des leads
// (assessService.LeadRecorder) et les opérations admin list/get/delete.
type DiagnosticService struct {
	DB *gorm.DB
}

func NewDiagnosticService(db *gorm.DB) *DiagnosticService {
	return &DiagnosticService{DB: db}
}

// RecordDiagnostic: création unique par session complétée. L'appelant (le bot)
// n'attend pas le résultat; l'erreur est renvoyée pour être loggée.
func (s *DiagnosticService) RecordDiagnostic(ctx context.Context, in assessService.RecordInput) error {
	answers, err := json.Marshal(in.Answers)
	if err != nil {
		return err
	}

	var website *string
	if in.Website != "" {
		website = &in.Website
	}

	m := model.DiagnosticEntryModel{
		DiagnosticEntryUserName:   in.UserName,
		DiagnosticEntryTitle:      in.Title,
		DiagnosticEntryCompany:    in.Company,
		DiagnosticEntryWebsite:    website,
		DiagnosticEntryScore:      in.Score,
		DiagnosticEntryDiagnostic: in.Diagnostic,
		DiagnosticEntryTranscript: in.Transcript,
		DiagnosticEntrySector:     in.Sector,
		DiagnosticEntryAnswers:    datatypes.JSON(answers),
		DiagnosticEntryCreatedAt:  in.CreatedAt,
	}
	return s.DB.WithContext(ctx).Create(&m).Error
}

// List: tri garanti par date de création décroissante (les plus récents d'abord).
func (s *DiagnosticService) List(ctx context.Context) ([]model.DiagnosticEntryModel, error) {
	var entries []model.DiagnosticEntryModel
	err := s.DB.WithContext(ctx).
		Order("diagnostic_entry_created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (s *DiagnosticService) GetByID(ctx context.Context, id uuid.UUID) (*model.DiagnosticEntryModel, error) {
	var m model.DiagnosticEntryModel
	if err := s.DB.WithContext(ctx).
		First(&m, "diagnostic_entry_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *DiagnosticService) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Delete(&model.DiagnosticEntryModel{}, "diagnostic_entry_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
