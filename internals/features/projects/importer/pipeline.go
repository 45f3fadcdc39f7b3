package importer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"ftth_backend/internals/configs"
	"ftth_backend/internals/features/projects/project/model"
)

const DefaultMaxRows = 1000

// ProjectStore: bulk insert semua-atau-tidak-sama-sekali.
type ProjectStore interface {
	InsertBatch(ctx context.Context, rows []model.ProjectModel) ([]model.ProjectModel, error)
}

// ProfileStore: divisi user yang sedang mengimport.
type ProfileStore interface {
	DivisionOf(ctx context.Context, userID uuid.UUID) (string, error)
}

type Pipeline struct {
	Store    ProjectStore
	Profiles ProfileStore
	MaxRows  int
	Now      func() time.Time
}

// Plan adalah hasil validasi: batch siap insert beserta info sheet.
type Plan struct {
	Sheet    string
	Division string
	Total    int // baris data non-kosong di sheet
	Skipped  int // baris tanpa no_project dan nama_project
	Records  []model.ProjectModel
}

type Result struct {
	Plan
	Inserted []model.ProjectModel
}

func NewPipeline(store ProjectStore, profiles ProfileStore) *Pipeline {
	return &Pipeline{
		Store:    store,
		Profiles: profiles,
		MaxRows:  configs.App.ImportMaxRows,
		Now:      time.Now,
	}
}

func (p *Pipeline) maxRows() int {
	if p.MaxRows <= 0 {
		return DefaultMaxRows
	}
	return p.MaxRows
}

func (p *Pipeline) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}

// Validate tidak melakukan I/O: pilih sheet, cek batas baris, validasi semua baris.
// Satu error pada baris mana pun menggagalkan seluruh batch.
func (p *Pipeline) Validate(wb *Workbook, division string) (*Plan, error) {
	sheet, err := DiscoverSheet(wb)
	if err != nil {
		return nil, err
	}

	plan := &Plan{Sheet: sheet.Name, Division: strings.ToUpper(strings.TrimSpace(division)), Total: len(sheet.Rows)}
	if limit := p.maxRows(); plan.Total > limit {
		return nil, &RowLimitError{Rows: plan.Total, Limit: limit}
	}

	var (
		messages []string
		valid    []NormalizedRow
	)
	for _, row := range sheet.Rows {
		if IsFiller(row) {
			if res := CheckFillerRow(row, plan.Division); !res.OK() {
				messages = append(messages, res.Errors...)
				continue
			}
			plan.Skipped++
			continue
		}
		res := NormalizeRow(row, plan.Division)
		if !res.OK() {
			messages = append(messages, res.Errors...)
			continue
		}
		valid = append(valid, res.Row)
	}
	if len(messages) > 0 {
		return nil, &ValidationError{Messages: messages}
	}
	if len(valid) == 0 {
		return nil, ErrEmptyBatch
	}

	now := p.now()
	plan.Records = make([]model.ProjectModel, 0, len(valid))
	for _, r := range valid {
		plan.Records = append(plan.Records, BuildRecord(r, plan.Division, now))
	}
	return plan, nil
}

// Run: baca file → divisi user (1x read) → Validate → InsertBatch (1x write).
func (p *Pipeline) Run(ctx context.Context, userID uuid.UUID, filename string, r io.Reader) (*Result, error) {
	wb, err := ReadWorkbook(filename, r)
	if err != nil {
		return nil, err
	}

	division, err := p.Profiles.DivisionOf(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("gagal membaca divisi user: %w", err)
	}

	plan, err := p.Validate(wb, division)
	if err != nil {
		configs.Log.WithFields(configs.Fields{"user_id": userID, "file": filename}).
			Warnf("[IMPORT] ditolak: %v", err)
		return nil, err
	}

	for i := range plan.Records {
		plan.Records[i].CreatedBy = &userID
	}

	inserted, err := p.Store.InsertBatch(ctx, plan.Records)
	if err != nil {
		configs.Log.WithFields(configs.Fields{"user_id": userID, "rows": len(plan.Records)}).
			Errorf("[IMPORT] insert gagal: %v", err)
		return nil, &StoreError{Err: err}
	}

	configs.Log.WithFields(configs.Fields{
		"user_id": userID,
		"sheet":   plan.Sheet,
		"rows":    len(inserted),
		"skipped": plan.Skipped,
	}).Info("[IMPORT] ✅ selesai")

	return &Result{Plan: *plan, Inserted: inserted}, nil
}
