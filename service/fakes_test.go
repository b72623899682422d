package service

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

// In-memory stores used by the workflow tests. Failure injection happens
// through the *Err fields.

type fakeDrivers struct {
	mu       sync.Mutex
	drivers  map[string]*model.Driver
	incErr   error
	blackErr error
}

func newFakeDrivers(ds ...*model.Driver) *fakeDrivers {
	f := &fakeDrivers{drivers: make(map[string]*model.Driver)}
	for _, d := range ds {
		f.drivers[d.ID] = d
	}
	return f
}

func (f *fakeDrivers) Create(d *model.Driver) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.Status == "" {
		d.Status = model.DriverActive
	}
	f.drivers[d.ID] = d
	return nil
}

func (f *fakeDrivers) Get(id string) (*model.Driver, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.drivers[id]
	if !ok {
		return nil, model.NotFoundErrorFmt("driver not found: %s", id)
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDrivers) List(franchiseID *string) ([]model.Driver, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Driver
	for _, d := range f.drivers {
		if franchiseID == nil || d.FranchiseID == *franchiseID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDrivers) Update(d *model.Driver) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.drivers[d.ID] = d
	return nil
}

func (f *fakeDrivers) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.drivers[id]; !ok {
		return model.NotFoundErrorFmt("driver not found: %s", id)
	}
	delete(f.drivers, id)
	return nil
}

func (f *fakeDrivers) UpdateStatus(id string, status model.DriverStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.drivers[id]
	if !ok {
		return model.NotFoundErrorFmt("driver not found: %s", id)
	}
	d.Status = status
	return nil
}

func (f *fakeDrivers) IncrementWarningCount(id string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.incErr != nil {
		return 0, f.incErr
	}
	d, ok := f.drivers[id]
	if !ok {
		return 0, model.NotFoundErrorFmt("driver not found: %s", id)
	}
	d.WarningCount++
	return d.WarningCount, nil
}

func (f *fakeDrivers) IncrementComplaintCount(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.incErr != nil {
		return f.incErr
	}
	d, ok := f.drivers[id]
	if !ok {
		return model.NotFoundErrorFmt("driver not found: %s", id)
	}
	d.ComplaintCount++
	return nil
}

func (f *fakeDrivers) Blacklist(id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.blackErr != nil {
		return false, f.blackErr
	}
	d, ok := f.drivers[id]
	if !ok {
		return false, model.NotFoundErrorFmt("driver not found: %s", id)
	}
	if d.Terminal() {
		return false, nil
	}
	d.Status = model.DriverTerminated
	d.Blacklisted = true
	return true, nil
}

func (f *fakeDrivers) CountByFranchise(franchiseID string) (int64, error) {
	ds, _ := f.List(&franchiseID)
	return int64(len(ds)), nil
}

func (f *fakeDrivers) CountTerminatedSince(franchiseID string, _ time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, d := range f.drivers {
		if d.FranchiseID == franchiseID && d.Status == model.DriverTerminated {
			n++
		}
	}
	return n, nil
}

type fakeFranchises struct {
	mu         sync.Mutex
	franchises map[string]*model.Franchise
}

func newFakeFranchises(fs ...*model.Franchise) *fakeFranchises {
	f := &fakeFranchises{franchises: make(map[string]*model.Franchise)}
	for _, fr := range fs {
		f.franchises[fr.ID] = fr
	}
	return f
}

func (f *fakeFranchises) Create(fr *model.Franchise) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if fr.ID == "" {
		fr.ID = uuid.NewString()
	}
	f.franchises[fr.ID] = fr
	return nil
}

func (f *fakeFranchises) Get(id string) (*model.Franchise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fr, ok := f.franchises[id]
	if !ok {
		return nil, model.NotFoundError("Franchise not found")
	}
	cp := *fr
	return &cp, nil
}

func (f *fakeFranchises) List() ([]model.Franchise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Franchise
	for _, fr := range f.franchises {
		out = append(out, *fr)
	}
	return out, nil
}

func (f *fakeFranchises) Update(fr *model.Franchise) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.franchises[fr.ID] = fr
	return nil
}

func (f *fakeFranchises) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.franchises, id)
	return nil
}

type fakeStaff struct {
	mu    sync.Mutex
	staff map[string]*model.Staff
}

func newFakeStaff(sts ...*model.Staff) *fakeStaff {
	f := &fakeStaff{staff: make(map[string]*model.Staff)}
	for _, st := range sts {
		f.staff[st.ID] = st
	}
	return f
}

func (f *fakeStaff) Create(st *model.Staff) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	if st.Status == "" {
		st.Status = model.StaffActive
	}
	f.staff[st.ID] = st
	return nil
}

func (f *fakeStaff) Get(id string) (*model.Staff, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.staff[id]
	if !ok {
		return nil, model.NotFoundErrorFmt("staff not found: %s", id)
	}
	cp := *st
	return &cp, nil
}

func (f *fakeStaff) List(franchiseID *string) ([]model.Staff, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Staff
	for _, st := range f.staff {
		if franchiseID == nil || st.FranchiseID == *franchiseID {
			out = append(out, *st)
		}
	}
	return out, nil
}

func (f *fakeStaff) Update(st *model.Staff) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.staff[st.ID] = st
	return nil
}

func (f *fakeStaff) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.staff[id]; !ok {
		return model.NotFoundErrorFmt("staff not found: %s", id)
	}
	delete(f.staff, id)
	return nil
}

func (f *fakeStaff) UpdateStatus(id string, status model.StaffStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.staff[id]
	if !ok {
		return model.NotFoundErrorFmt("staff not found: %s", id)
	}
	st.Status = status
	return nil
}

func (f *fakeStaff) IncrementWarningCount(id string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.staff[id]
	if !ok {
		return 0, model.NotFoundErrorFmt("staff not found: %s", id)
	}
	st.WarningCount++
	return st.WarningCount, nil
}

func (f *fakeStaff) Fire(id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.staff[id]
	if !ok {
		return false, model.NotFoundErrorFmt("staff not found: %s", id)
	}
	if st.Status.Terminal() {
		return false, nil
	}
	st.Status = model.StaffFired
	return true, nil
}

func (f *fakeStaff) CountByFranchise(franchiseID string) (int64, error) {
	sts, _ := f.List(&franchiseID)
	return int64(len(sts)), nil
}

type fakeWarnings struct {
	mu       sync.Mutex
	warnings map[string]*model.Warning
	order    []string
}

func newFakeWarnings() *fakeWarnings {
	return &fakeWarnings{warnings: make(map[string]*model.Warning)}
}

func (f *fakeWarnings) matches(w *model.Warning, filter model.WarningFilter) bool {
	if filter.DriverID != nil && (w.DriverID == nil || *w.DriverID != *filter.DriverID) {
		return false
	}
	if filter.StaffID != nil && (w.StaffID == nil || *w.StaffID != *filter.StaffID) {
		return false
	}
	if filter.FranchiseID != nil && w.FranchiseID != *filter.FranchiseID {
		return false
	}
	return true
}

func (f *fakeWarnings) Create(w *model.Warning) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	f.warnings[w.ID] = w
	f.order = append(f.order, w.ID)
	return nil
}

func (f *fakeWarnings) Get(id string) (*model.Warning, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, ok := f.warnings[id]
	if !ok {
		return nil, model.NotFoundError("Warning not found")
	}
	cp := *w
	return &cp, nil
}

func (f *fakeWarnings) List(filter model.WarningFilter) ([]model.Warning, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Warning
	for _, id := range f.order {
		if w, ok := f.warnings[id]; ok && f.matches(w, filter) {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (f *fakeWarnings) ListPage(filter model.WarningFilter, p model.PageParams) (
	[]model.Warning, model.Pagination, error,
) {
	p = p.Normalize()
	all, _ := f.List(filter)
	total := int64(len(all))
	start := p.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + p.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], model.NewPagination(p, total), nil
}

func (f *fakeWarnings) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.warnings[id]; !ok {
		return model.NotFoundError("Warning not found")
	}
	delete(f.warnings, id)
	return nil
}

func (f *fakeWarnings) Count(filter model.WarningFilter) (int64, error) {
	all, _ := f.List(filter)
	return int64(len(all)), nil
}

type fakeComplaints struct {
	mu         sync.Mutex
	complaints map[string]*model.Complaint
	order      []string
}

func newFakeComplaints() *fakeComplaints {
	return &fakeComplaints{complaints: make(map[string]*model.Complaint)}
}

func (f *fakeComplaints) matches(c *model.Complaint, filter model.ComplaintFilter) bool {
	if filter.DriverID != nil && (c.DriverID == nil || *c.DriverID != *filter.DriverID) {
		return false
	}
	if filter.StaffID != nil && (c.StaffID == nil || *c.StaffID != *filter.StaffID) {
		return false
	}
	if filter.FranchiseID != nil && c.FranchiseID != *filter.FranchiseID {
		return false
	}
	if filter.Status != nil && c.Status != *filter.Status {
		return false
	}
	return true
}

func (f *fakeComplaints) Create(c *model.Complaint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	f.complaints[c.ID] = c
	f.order = append(f.order, c.ID)
	return nil
}

func (f *fakeComplaints) Get(id string) (*model.Complaint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.complaints[id]
	if !ok {
		return nil, model.NotFoundError("Complaint not found")
	}
	cp := *c
	return &cp, nil
}

func (f *fakeComplaints) List(filter model.ComplaintFilter) ([]model.Complaint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Complaint
	for _, id := range f.order {
		if c, ok := f.complaints[id]; ok && f.matches(c, filter) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeComplaints) ListPage(filter model.ComplaintFilter, p model.PageParams) (
	[]model.Complaint, model.Pagination, error,
) {
	p = p.Normalize()
	all, _ := f.List(filter)
	total := int64(len(all))
	start := p.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + p.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], model.NewPagination(p, total), nil
}

func (f *fakeComplaints) Update(c *model.Complaint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.complaints[c.ID]; !ok {
		return model.NotFoundError("Complaint not found")
	}
	f.complaints[c.ID] = c
	return nil
}

func (f *fakeComplaints) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.complaints[id]; !ok {
		return model.NotFoundError("Complaint not found")
	}
	delete(f.complaints, id)
	return nil
}

func (f *fakeComplaints) Count(filter model.ComplaintFilter) (int64, error) {
	all, _ := f.List(filter)
	return int64(len(all)), nil
}

type fakeActivity struct {
	mu      sync.Mutex
	entries []model.ActivityLog
	err     error
}

func (f *fakeActivity) Append(e *model.ActivityLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, *e)
	return nil
}

func (f *fakeActivity) ListPage(franchiseID *string, p model.PageParams) (
	[]model.ActivityLog, model.Pagination, error,
) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p = p.Normalize()
	var out []model.ActivityLog
	for _, e := range f.entries {
		if franchiseID == nil || e.FranchiseID == *franchiseID {
			out = append(out, e)
		}
	}
	return out, model.NewPagination(p, int64(len(out))), nil
}

func (f *fakeActivity) snapshot() []model.ActivityLog {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.ActivityLog(nil), f.entries...)
}

type fakeSettings struct {
	mu     sync.Mutex
	values map[string]datatypes.JSON
}

func newFakeSettings() *fakeSettings {
	return &fakeSettings{values: make(map[string]datatypes.JSON)}
}

func (f *fakeSettings) Get(scope, key string) (datatypes.JSON, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[scope+"/"+key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (f *fakeSettings) GetAs(scope, key string, target any) (bool, error) {
	raw, err := f.Get(scope, key)
	if err != nil || raw == nil {
		return false, err
	}
	return true, json.Unmarshal(raw, target)
}

func (f *fakeSettings) Set(scope, key string, value datatypes.JSON) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[scope+"/"+key] = value
	return nil
}

func (f *fakeSettings) SetAny(scope, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return f.Set(scope, key, b)
}

func (f *fakeSettings) Delete(scope, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, scope+"/"+key)
	return nil
}
