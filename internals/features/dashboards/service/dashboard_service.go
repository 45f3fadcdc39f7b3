package service

import (
	"context"

	"ftth_backend/internals/configs"
	"ftth_backend/internals/features/dashboards/repository"
	"ftth_backend/internals/features/projects/project/model"
)

type ProjectSource interface {
	ActiveProjects(ctx context.Context, f repository.Filter) ([]model.ProjectModel, error)
}

type DashboardService struct {
	Source ProjectSource
	// nil = selalu mode lokal
	AI Summarizer
}

func NewDashboardService(src ProjectSource, ai Summarizer) *DashboardService {
	return &DashboardService{Source: src, AI: ai}
}

func (s *DashboardService) Snapshot(ctx context.Context, f repository.Filter) (Snapshot, error) {
	rows, err := s.Source.ActiveProjects(ctx, f)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Summary:    Summarize(rows),
		ByRegional: ByRegional(rows),
		ByStatus:   ByStatus(rows),
		ByUIC:      ByUIC(rows),
		ByProgress: ByProgress(rows),
	}, nil
}

// AISummary: gagal/tanpa key → ringkasan lokal, bukan error.
func (s *DashboardService) AISummary(ctx context.Context, f repository.Filter) (AISummary, error) {
	snap, err := s.Snapshot(ctx, f)
	if err != nil {
		return AISummary{}, err
	}
	if s.AI != nil {
		text, err := s.AI.Summarize(ctx, snap)
		if err == nil {
			return AISummary{Source: SourceAI, Text: text}, nil
		}
		configs.Log.Warnf("[DASHBOARD] AI summary gagal, pakai lokal: %v", err)
	}
	return AISummary{Source: SourceLocal, Text: LocalSummary(snap)}, nil
}
