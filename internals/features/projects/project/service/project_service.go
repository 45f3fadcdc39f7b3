package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"ftth_backend/internals/configs"
	"ftth_backend/internals/features/projects/importer"
	logModel "ftth_backend/internals/features/projects/logs/model"
	logRepo "ftth_backend/internals/features/projects/logs/repository"
	"ftth_backend/internals/features/projects/project/dto"
	"ftth_backend/internals/features/projects/project/model"
	"ftth_backend/internals/features/projects/project/repository"
)

// Store: subset repository yang dipakai service (sqlmock/fake friendly).
type Store interface {
	importer.ProjectStore
	Create(ctx context.Context, p *model.ProjectModel) error
	Update(ctx context.Context, p *model.ProjectModel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ProjectModel, error)
	SetArchived(ctx context.Context, id uuid.UUID, archived bool, now time.Time) (*model.ProjectModel, error)
}

type LogStore interface {
	Append(ctx context.Context, entries ...logModel.ProjectLogModel) error
}

type ProjectService struct {
	Projects Store
	Logs     LogStore
	Profiles importer.ProfileStore
	Pipeline *importer.Pipeline
	Now      func() time.Time
}

func NewProjectService(projects Store, logs LogStore, profiles importer.ProfileStore) *ProjectService {
	p := importer.NewPipeline(projects, profiles)
	return &ProjectService{
		Projects: projects,
		Logs:     logs,
		Profiles: profiles,
		Pipeline: p,
		Now:      time.Now,
	}
}

// Compile-time check
var _ Store = (*repository.ProjectRepository)(nil)

func (s *ProjectService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// prepare: validasi & hitung turunan memakai aturan yang sama dengan import.
func (s *ProjectService) prepare(ctx context.Context, actor uuid.UUID, req dto.ProjectRequest) (model.ProjectModel, string, error) {
	division, err := s.Profiles.DivisionOf(ctx, actor)
	if err != nil {
		return model.ProjectModel{}, "", err
	}
	res := importer.NormalizeRow(req.ToRow(), division)
	if !res.OK() {
		return model.ProjectModel{}, division, &importer.ValidationError{Messages: res.Errors}
	}
	return importer.BuildRecord(res.Row, division, s.now()), division, nil
}

func (s *ProjectService) Create(ctx context.Context, actor uuid.UUID, req dto.ProjectRequest) (*model.ProjectModel, error) {
	rec, _, err := s.prepare(ctx, actor, req)
	if err != nil {
		return nil, err
	}
	rec.CreatedBy = &actor
	if err := s.Projects.Create(ctx, &rec); err != nil {
		return nil, err
	}
	s.appendLog(ctx, rec.ID, logModel.ActionCreate, nil, rec, &actor)
	return &rec, nil
}

// Update: PUT penuh. update_progress hanya di-stamp ulang bila progress berubah.
func (s *ProjectService) Update(ctx context.Context, actor, id uuid.UUID, req dto.ProjectRequest) (*model.ProjectModel, error) {
	current, err := s.Projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rec, _, err := s.prepare(ctx, actor, req)
	if err != nil {
		return nil, err
	}

	rec.ID = current.ID
	rec.CreatedBy = current.CreatedBy
	rec.CreatedAt = current.CreatedAt
	rec.IsArchived = current.IsArchived
	rec.ArchivedAt = current.ArchivedAt
	if current.Division != nil {
		rec.Division = current.Division
	}
	if sameProgress(current.Progress, rec.Progress) {
		rec.UpdateProgress = current.UpdateProgress
	}

	changed, err := logRepo.ChangedFields(current, rec)
	if err != nil {
		configs.Log.Warnf("[PROJECT] diff gagal: %v", err)
	}
	if err := s.Projects.Update(ctx, &rec); err != nil {
		return nil, err
	}
	s.appendLog(ctx, rec.ID, logModel.ActionUpdate, changed, rec, &actor)
	return &rec, nil
}

func sameProgress(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (s *ProjectService) SetArchived(ctx context.Context, actor, id uuid.UUID, archived bool) (*model.ProjectModel, error) {
	p, err := s.Projects.SetArchived(ctx, id, archived, s.now())
	if err != nil {
		return nil, err
	}
	action := logModel.ActionRestore
	if archived {
		action = logModel.ActionArchive
	}
	s.appendLog(ctx, p.ID, action, []string{"is_archived", "archived_at"}, p, &actor)
	return p, nil
}

// Import menjalankan pipeline lalu mencatat log per project yang masuk.
func (s *ProjectService) Import(ctx context.Context, actor uuid.UUID, filename string, r io.Reader) (*importer.Result, error) {
	res, err := s.Pipeline.Run(ctx, actor, filename, r)
	if err != nil {
		return nil, err
	}

	entries := make([]logModel.ProjectLogModel, 0, len(res.Inserted))
	for _, p := range res.Inserted {
		e, err := logRepo.NewEntry(p.ID, logModel.ActionImport, nil, p, &actor)
		if err != nil {
			continue
		}
		entries = append(entries, e)
	}
	if s.Logs != nil {
		if err := s.Logs.Append(ctx, entries...); err != nil {
			configs.Log.WithField("rows", len(entries)).Warnf("[PROJECT] log import gagal: %v", err)
		}
	}
	return res, nil
}

// Validate: cek file tanpa menyimpan (dry-run).
func (s *ProjectService) Validate(ctx context.Context, actor uuid.UUID, filename string, r io.Reader) (*importer.Plan, error) {
	wb, err := importer.ReadWorkbook(filename, r)
	if err != nil {
		return nil, err
	}
	division, err := s.Profiles.DivisionOf(ctx, actor)
	if err != nil {
		return nil, err
	}
	return s.Pipeline.Validate(wb, division)
}

// appendLog: kegagalan log tidak membatalkan operasi utama.
func (s *ProjectService) appendLog(ctx context.Context, projectID uuid.UUID, action string, changed []string, snapshot any, actor *uuid.UUID) {
	if s.Logs == nil {
		return
	}
	e, err := logRepo.NewEntry(projectID, action, changed, snapshot, actor)
	if err == nil {
		err = s.Logs.Append(ctx, e)
	}
	if err != nil {
		configs.Log.WithFields(configs.Fields{"project_id": projectID, "action": action}).
			Warnf("[PROJECT] gagal menulis log: %v", err)
	}
}

// IsNotFound untuk controller.
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrProjectNotFound)
}
