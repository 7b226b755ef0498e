package service

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/davidly-empire/security-verifier-server/internal/model"
	"github.com/davidly-empire/security-verifier-server/internal/repository"
)

// Hand-written in-memory repositories for service tests. They mirror the
// GORM implementations' observable behavior: gorm.ErrRecordNotFound on a
// miss, scan lists sorted ascending by scan_time.

// ── scan repo ──

type mockScanRepo struct {
	mu     sync.Mutex
	nextID int64
	scans  map[int64]model.ScanEvent

	// ids whose UpdateStatus calls should fail
	failStatus map[int64]bool
}

func newMockScanRepo() *mockScanRepo {
	return &mockScanRepo{
		scans:      make(map[int64]model.ScanEvent),
		failStatus: make(map[int64]bool),
	}
}

func (r *mockScanRepo) Create(_ context.Context, scan *model.ScanEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	scan.ID = r.nextID
	r.scans[scan.ID] = *scan
	return nil
}

func (r *mockScanRepo) GetByID(_ context.Context, id int64) (*model.ScanEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	scan, ok := r.scans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &scan, nil
}

func (r *mockScanRepo) List(_ context.Context, filter repository.ScanFilter) ([]model.ScanEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []model.ScanEvent
	for _, scan := range r.scans {
		if filter.FactoryCode != "" && scan.FactoryCode != filter.FactoryCode {
			continue
		}
		if filter.GuardName != "" && scan.GuardName != filter.GuardName {
			continue
		}
		if !filter.From.IsZero() && scan.ScanTime.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && scan.ScanTime.After(filter.To) {
			continue
		}
		out = append(out, scan)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ScanTime.Before(out[j].ScanTime) })
	return out, nil
}

func (r *mockScanRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failStatus[id] {
		return gorm.ErrInvalidTransaction
	}
	scan, ok := r.scans[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	scan.Status = status
	r.scans[id] = scan
	return nil
}

func (r *mockScanRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.scans, id)
	return nil
}

func (r *mockScanRepo) status(id int64) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scans[id].Status
}

// ── factory repo ──

type mockFactoryRepo struct {
	factories map[string]model.Factory
}

func newMockFactoryRepo() *mockFactoryRepo {
	return &mockFactoryRepo{factories: make(map[string]model.Factory)}
}

func (r *mockFactoryRepo) Create(_ context.Context, factory *model.Factory) error {
	r.factories[factory.FactoryCode] = *factory
	return nil
}

func (r *mockFactoryRepo) GetByCode(_ context.Context, code string) (*model.Factory, error) {
	factory, ok := r.factories[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &factory, nil
}

func (r *mockFactoryRepo) Update(_ context.Context, factory *model.Factory) error {
	r.factories[factory.FactoryCode] = *factory
	return nil
}

func (r *mockFactoryRepo) Delete(_ context.Context, code string) error {
	delete(r.factories, code)
	return nil
}

func (r *mockFactoryRepo) List(_ context.Context, includeInactive bool) ([]model.Factory, error) {
	var out []model.Factory
	for _, factory := range r.factories {
		if !includeInactive && !factory.IsActive {
			continue
		}
		out = append(out, factory)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FactoryCode < out[j].FactoryCode })
	return out, nil
}

// ── checkpoint repo ──

type mockCheckpointRepo struct {
	checkpoints map[string]model.Checkpoint
}

func newMockCheckpointRepo() *mockCheckpointRepo {
	return &mockCheckpointRepo{checkpoints: make(map[string]model.Checkpoint)}
}

func (r *mockCheckpointRepo) Create(_ context.Context, cp *model.Checkpoint) error {
	r.checkpoints[cp.CheckpointID] = *cp
	return nil
}

func (r *mockCheckpointRepo) GetByID(_ context.Context, id string) (*model.Checkpoint, error) {
	cp, ok := r.checkpoints[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &cp, nil
}

func (r *mockCheckpointRepo) Update(_ context.Context, cp *model.Checkpoint) error {
	r.checkpoints[cp.CheckpointID] = *cp
	return nil
}

func (r *mockCheckpointRepo) Delete(_ context.Context, id string) error {
	delete(r.checkpoints, id)
	return nil
}

func (r *mockCheckpointRepo) ListByFactory(_ context.Context, factoryCode string) ([]model.Checkpoint, error) {
	var out []model.Checkpoint
	for _, cp := range r.checkpoints {
		if cp.FactoryCode != factoryCode || !cp.IsActive {
			continue
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CheckpointID < out[j].CheckpointID })
	return out, nil
}

// ── user repo ──

type mockUserRepo struct {
	nextID int
	users  map[string]model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]model.User)}
}

func (r *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		r.nextID++
		user.UserID = "user-" + time.Now().Format("150405") + "-" + string(rune('a'+r.nextID))
	}
	r.users[user.UserID] = *user
	return nil
}

func (r *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockUserRepo) Update(_ context.Context, user *model.User) error {
	r.users[user.UserID] = *user
	return nil
}

func (r *mockUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *mockUserRepo) List(_ context.Context, role string, offset, limit int) ([]model.User, int64, error) {
	var out []model.User
	for _, user := range r.users {
		if role != "" && user.Role != role {
			continue
		}
		out = append(out, user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })

	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

// ── report audit repo ──

type mockReportAuditRepo struct {
	nextID int
	audits []model.ReportAudit
}

func newMockReportAuditRepo() *mockReportAuditRepo {
	return &mockReportAuditRepo{}
}

func (r *mockReportAuditRepo) Create(_ context.Context, audit *model.ReportAudit) error {
	r.nextID++
	audit.AuditID = "audit-" + string(rune('0'+r.nextID))
	r.audits = append(r.audits, *audit)
	return nil
}

func (r *mockReportAuditRepo) ListByFactory(_ context.Context, factoryCode string, from, to time.Time) ([]model.ReportAudit, error) {
	var out []model.ReportAudit
	for _, audit := range r.audits {
		if audit.FactoryCode != factoryCode {
			continue
		}
		if !from.IsZero() && audit.ReportDate.Before(from) {
			continue
		}
		if !to.IsZero() && audit.ReportDate.After(to) {
			continue
		}
		out = append(out, audit)
	}
	return out, nil
}

// ── wiring helper ──

type mockRepos struct {
	scan       *mockScanRepo
	factory    *mockFactoryRepo
	checkpoint *mockCheckpointRepo
	user       *mockUserRepo
	audit      *mockReportAuditRepo
}

func newMockRepository() (*repository.Repository, *mockRepos) {
	mocks := &mockRepos{
		scan:       newMockScanRepo(),
		factory:    newMockFactoryRepo(),
		checkpoint: newMockCheckpointRepo(),
		user:       newMockUserRepo(),
		audit:      newMockReportAuditRepo(),
	}
	repo := &repository.Repository{
		User:        mocks.user,
		Factory:     mocks.factory,
		Checkpoint:  mocks.checkpoint,
		Scan:        mocks.scan,
		ReportAudit: mocks.audit,
	}
	return repo, mocks
}

func testCalendar() *ShiftCalendar {
	loc := time.FixedZone("IST", 5*3600+30*60)
	return NewShiftCalendar(loc, 10*time.Minute)
}

func mustTime(t *testing.T, loc *time.Location, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02T15:04:05", value, loc)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}
