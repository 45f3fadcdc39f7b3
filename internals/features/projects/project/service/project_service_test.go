package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftth_backend/internals/features/projects/importer"
	logModel "ftth_backend/internals/features/projects/logs/model"
	"ftth_backend/internals/features/projects/project/dto"
	"ftth_backend/internals/features/projects/project/model"
	"ftth_backend/internals/features/projects/project/repository"
)

type memStore struct {
	byID    map[uuid.UUID]model.ProjectModel
	updated []model.ProjectModel
}

func newMemStore() *memStore { return &memStore{byID: map[uuid.UUID]model.ProjectModel{}} }

func (m *memStore) InsertBatch(_ context.Context, rows []model.ProjectModel) ([]model.ProjectModel, error) {
	for i := range rows {
		rows[i].ID = uuid.New()
		m.byID[rows[i].ID] = rows[i]
	}
	return rows, nil
}

func (m *memStore) Create(_ context.Context, p *model.ProjectModel) error {
	p.ID = uuid.New()
	m.byID[p.ID] = *p
	return nil
}

func (m *memStore) Update(_ context.Context, p *model.ProjectModel) error {
	m.byID[p.ID] = *p
	m.updated = append(m.updated, *p)
	return nil
}

func (m *memStore) FindByID(_ context.Context, id uuid.UUID) (*model.ProjectModel, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrProjectNotFound
	}
	return &p, nil
}

func (m *memStore) SetArchived(_ context.Context, id uuid.UUID, archived bool, now time.Time) (*model.ProjectModel, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrProjectNotFound
	}
	p.IsArchived = archived
	p.ArchivedAt = nil
	if archived {
		p.ArchivedAt = &now
	}
	m.byID[id] = p
	return &p, nil
}

type memLogs struct{ entries []logModel.ProjectLogModel }

func (m *memLogs) Append(_ context.Context, entries ...logModel.ProjectLogModel) error {
	m.entries = append(m.entries, entries...)
	return nil
}

type staticProfiles struct{ division string }

func (s staticProfiles) DivisionOf(context.Context, uuid.UUID) (string, error) { return s.division, nil }

var t0 = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func newService(division string) (*ProjectService, *memStore, *memLogs) {
	store, logs := newMemStore(), &memLogs{}
	svc := NewProjectService(store, logs, staticProfiles{division: division})
	svc.Now = func() time.Time { return t0 }
	return svc, store, logs
}

func request(progress string) dto.ProjectRequest {
	return dto.ProjectRequest{
		Regional:    "2. jatim",
		NoProject:   "PRJ-9",
		NamaProject: "Perumahan Asri",
		Pop:         "POP-SBY",
		Port:        "64",
		PortTerisi:  "16",
		Revenue:     "1000000",
		Progress:    dto.FlexString(progress),
	}
}

func TestCreateDerivesFields(t *testing.T) {
	svc, store, logs := newService("PLANNING")
	actor := uuid.New()

	p, err := svc.Create(context.Background(), actor, request("3. created boq"))
	require.NoError(t, err)

	assert.Equal(t, "JATIM", p.Regional)
	require.NotNil(t, p.Progress)
	assert.Equal(t, "CREATED BOQ", *p.Progress)
	assert.Equal(t, "PLAN", p.Status)
	assert.Equal(t, "PLANNING", p.UIC)
	assert.Equal(t, "5", p.Persentase)
	assert.Equal(t, "25", p.Occupancy)
	require.NotNil(t, p.Division)
	assert.Equal(t, "PLANNING", *p.Division)
	assert.Equal(t, &actor, p.CreatedBy)

	assert.Contains(t, store.byID, p.ID)
	require.Len(t, logs.entries, 1)
	assert.Equal(t, logModel.ActionCreate, logs.entries[0].Action)
}

func TestCreateRejectsForeignStage(t *testing.T) {
	svc, store, _ := newService("PLANNING")

	_, err := svc.Create(context.Background(), uuid.New(), request("CONST"))
	var verr *importer.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Messages, 1)
	// input manual tidak memakai prefix "Baris N"
	assert.False(t, strings.HasPrefix(verr.Messages[0], "Baris"))
	assert.Empty(t, store.byID)
}

func TestUpdateKeepsProgressStampWhenUnchanged(t *testing.T) {
	svc, store, logs := newService("DEPLOYMENT")
	created, err := svc.Create(context.Background(), uuid.New(), request("SPK"))
	require.NoError(t, err)

	later := t0.Add(48 * time.Hour)
	svc.Now = func() time.Time { return later }

	req := request("SPK")
	req.Mitra = "PT Mitra Baru"
	upd, err := svc.Update(context.Background(), uuid.New(), created.ID, req)
	require.NoError(t, err)
	require.NotNil(t, upd.UpdateProgress)
	assert.Equal(t, t0, *upd.UpdateProgress)

	req.Progress = "mos"
	upd, err = svc.Update(context.Background(), uuid.New(), created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, later, *upd.UpdateProgress)
	assert.Equal(t, "50", upd.Persentase)

	require.Len(t, store.updated, 2)
	require.Len(t, logs.entries, 3)
	assert.Equal(t, logModel.ActionUpdate, logs.entries[1].Action)
	assert.Contains(t, []string(logs.entries[1].ChangedFields), "mitra")
}

func TestUpdateNotFound(t *testing.T) {
	svc, _, _ := newService("DEPLOYMENT")
	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), request("SPK"))
	assert.True(t, IsNotFound(err))
}

func TestArchiveRestore(t *testing.T) {
	svc, _, logs := newService("ADMIN")
	created, err := svc.Create(context.Background(), uuid.New(), request(""))
	require.NoError(t, err)

	p, err := svc.SetArchived(context.Background(), uuid.New(), created.ID, true)
	require.NoError(t, err)
	assert.True(t, p.IsArchived)
	require.NotNil(t, p.ArchivedAt)

	p, err = svc.SetArchived(context.Background(), uuid.New(), created.ID, false)
	require.NoError(t, err)
	assert.False(t, p.IsArchived)
	assert.Nil(t, p.ArchivedAt)

	require.Len(t, logs.entries, 3)
	assert.Equal(t, logModel.ActionArchive, logs.entries[1].Action)
	assert.Equal(t, logModel.ActionRestore, logs.entries[2].Action)
}

func TestRankLookup(t *testing.T) {
	rows := []repository.LookupRow{
		{ID: uuid.New(), NoProject: "PRJ-001", NamaProject: "Griya Indah"},
		{ID: uuid.New(), NoProject: "PRJ-002", NamaProject: "Taman Sari"},
		{ID: uuid.New(), NoProject: "GRY-77", NamaProject: "Griya Asri"},
	}

	got := RankLookup("griya", rows, 10)
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Contains(t, strings.ToLower(r.NamaProject), "griya")
	}

	got = RankLookup("prj", rows, 1)
	assert.Len(t, got, 1)

	assert.Empty(t, RankLookup("  ", rows, 10))
	assert.Empty(t, RankLookup("zzz", rows, 10))
}
