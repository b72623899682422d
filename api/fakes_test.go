package api

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

// In-memory stores backing the handler tests.

type memDrivers struct {
	mu      sync.Mutex
	drivers map[string]*model.Driver
}

func newMemDrivers(ds ...*model.Driver) *memDrivers {
	m := &memDrivers{drivers: make(map[string]*model.Driver)}
	for _, d := range ds {
		m.drivers[d.ID] = d
	}
	return m
}

func (m *memDrivers) Create(d *model.Driver) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	m.drivers[d.ID] = d
	return nil
}

func (m *memDrivers) Get(id string) (*model.Driver, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drivers[id]
	if !ok {
		return nil, model.NotFoundErrorFmt("driver not found: %s", id)
	}
	cp := *d
	return &cp, nil
}

func (m *memDrivers) List(franchiseID *string) ([]model.Driver, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Driver
	for _, d := range m.drivers {
		if franchiseID == nil || d.FranchiseID == *franchiseID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (m *memDrivers) Update(d *model.Driver) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[d.ID] = d
	return nil
}

func (m *memDrivers) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drivers, id)
	return nil
}

func (m *memDrivers) UpdateStatus(id string, status model.DriverStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drivers[id]
	if !ok {
		return model.NotFoundErrorFmt("driver not found: %s", id)
	}
	d.Status = status
	return nil
}

func (m *memDrivers) IncrementWarningCount(id string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drivers[id]
	if !ok {
		return 0, model.NotFoundErrorFmt("driver not found: %s", id)
	}
	d.WarningCount++
	return d.WarningCount, nil
}

func (m *memDrivers) IncrementComplaintCount(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drivers[id]
	if !ok {
		return model.NotFoundErrorFmt("driver not found: %s", id)
	}
	d.ComplaintCount++
	return nil
}

func (m *memDrivers) Blacklist(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drivers[id]
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

func (m *memDrivers) CountByFranchise(franchiseID string) (int64, error) {
	ds, _ := m.List(&franchiseID)
	return int64(len(ds)), nil
}

func (m *memDrivers) CountTerminatedSince(franchiseID string, _ time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, d := range m.drivers {
		if d.FranchiseID == franchiseID && d.Status == model.DriverTerminated {
			n++
		}
	}
	return n, nil
}

type memStaff struct {
	mu    sync.Mutex
	staff map[string]*model.Staff
}

func newMemStaff(sts ...*model.Staff) *memStaff {
	m := &memStaff{staff: make(map[string]*model.Staff)}
	for _, st := range sts {
		m.staff[st.ID] = st
	}
	return m
}

func (m *memStaff) Create(st *model.Staff) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	m.staff[st.ID] = st
	return nil
}

func (m *memStaff) Get(id string) (*model.Staff, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.staff[id]
	if !ok {
		return nil, model.NotFoundErrorFmt("staff not found: %s", id)
	}
	cp := *st
	return &cp, nil
}

func (m *memStaff) List(franchiseID *string) ([]model.Staff, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Staff
	for _, st := range m.staff {
		if franchiseID == nil || st.FranchiseID == *franchiseID {
			out = append(out, *st)
		}
	}
	return out, nil
}

func (m *memStaff) Update(st *model.Staff) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.staff[st.ID] = st
	return nil
}

func (m *memStaff) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.staff, id)
	return nil
}

func (m *memStaff) UpdateStatus(id string, status model.StaffStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.staff[id]
	if !ok {
		return model.NotFoundErrorFmt("staff not found: %s", id)
	}
	st.Status = status
	return nil
}

func (m *memStaff) IncrementWarningCount(id string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.staff[id]
	if !ok {
		return 0, model.NotFoundErrorFmt("staff not found: %s", id)
	}
	st.WarningCount++
	return st.WarningCount, nil
}

func (m *memStaff) Fire(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.staff[id]
	if !ok {
		return false, model.NotFoundErrorFmt("staff not found: %s", id)
	}
	if st.Status.Terminal() {
		return false, nil
	}
	st.Status = model.StaffFired
	return true, nil
}

func (m *memStaff) CountByFranchise(franchiseID string) (int64, error) {
	sts, _ := m.List(&franchiseID)
	return int64(len(sts)), nil
}

type memWarnings struct {
	mu       sync.Mutex
	warnings map[string]*model.Warning
	order    []string
}

func newMemWarnings() *memWarnings {
	return &memWarnings{warnings: make(map[string]*model.Warning)}
}

func (m *memWarnings) matches(w *model.Warning, f model.WarningFilter) bool {
	if f.DriverID != nil && (w.DriverID == nil || *w.DriverID != *f.DriverID) {
		return false
	}
	if f.StaffID != nil && (w.StaffID == nil || *w.StaffID != *f.StaffID) {
		return false
	}
	if f.FranchiseID != nil && w.FranchiseID != *f.FranchiseID {
		return false
	}
	return true
}

func (m *memWarnings) Create(w *model.Warning) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	m.warnings[w.ID] = w
	m.order = append(m.order, w.ID)
	return nil
}

func (m *memWarnings) Get(id string) (*model.Warning, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.warnings[id]
	if !ok {
		return nil, model.NotFoundError("Warning not found")
	}
	cp := *w
	return &cp, nil
}

func (m *memWarnings) List(f model.WarningFilter) ([]model.Warning, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Warning
	for _, id := range m.order {
		if w, ok := m.warnings[id]; ok && m.matches(w, f) {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (m *memWarnings) ListPage(f model.WarningFilter, p model.PageParams) (
	[]model.Warning, model.Pagination, error,
) {
	p = p.Normalize()
	all, _ := m.List(f)
	start := p.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + p.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], model.NewPagination(p, int64(len(all))), nil
}

func (m *memWarnings) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.warnings[id]; !ok {
		return model.NotFoundError("Warning not found")
	}
	delete(m.warnings, id)
	return nil
}

func (m *memWarnings) Count(f model.WarningFilter) (int64, error) {
	all, _ := m.List(f)
	return int64(len(all)), nil
}

type memComplaints struct {
	mu         sync.Mutex
	complaints map[string]*model.Complaint
	order      []string
}

func newMemComplaints() *memComplaints {
	return &memComplaints{complaints: make(map[string]*model.Complaint)}
}

func (m *memComplaints) matches(c *model.Complaint, f model.ComplaintFilter) bool {
	if f.DriverID != nil && (c.DriverID == nil || *c.DriverID != *f.DriverID) {
		return false
	}
	if f.StaffID != nil && (c.StaffID == nil || *c.StaffID != *f.StaffID) {
		return false
	}
	if f.FranchiseID != nil && c.FranchiseID != *f.FranchiseID {
		return false
	}
	if f.Status != nil && c.Status != *f.Status {
		return false
	}
	return true
}

func (m *memComplaints) Create(c *model.Complaint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	m.complaints[c.ID] = c
	m.order = append(m.order, c.ID)
	return nil
}

func (m *memComplaints) Get(id string) (*model.Complaint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.complaints[id]
	if !ok {
		return nil, model.NotFoundError("Complaint not found")
	}
	cp := *c
	return &cp, nil
}

func (m *memComplaints) List(f model.ComplaintFilter) ([]model.Complaint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Complaint
	for _, id := range m.order {
		if c, ok := m.complaints[id]; ok && m.matches(c, f) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *memComplaints) ListPage(f model.ComplaintFilter, p model.PageParams) (
	[]model.Complaint, model.Pagination, error,
) {
	p = p.Normalize()
	all, _ := m.List(f)
	start := p.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + p.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], model.NewPagination(p, int64(len(all))), nil
}

func (m *memComplaints) Update(c *model.Complaint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.complaints[c.ID]; !ok {
		return model.NotFoundError("Complaint not found")
	}
	m.complaints[c.ID] = c
	return nil
}

func (m *memComplaints) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.complaints[id]; !ok {
		return model.NotFoundError("Complaint not found")
	}
	delete(m.complaints, id)
	return nil
}

func (m *memComplaints) Count(f model.ComplaintFilter) (int64, error) {
	all, _ := m.List(f)
	return int64(len(all)), nil
}

type memActivity struct {
	mu      sync.Mutex
	entries []model.ActivityLog
}

func (m *memActivity) Append(e *model.ActivityLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, *e)
	return nil
}

func (m *memActivity) ListPage(franchiseID *string, p model.PageParams) (
	[]model.ActivityLog, model.Pagination, error,
) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p = p.Normalize()
	var out []model.ActivityLog
	for _, e := range m.entries {
		if franchiseID == nil || e.FranchiseID == *franchiseID {
			out = append(out, e)
		}
	}
	return out, model.NewPagination(p, int64(len(out))), nil
}

type memFranchises struct {
	mu         sync.Mutex
	franchises map[string]*model.Franchise
}

func newMemFranchises(fs ...*model.Franchise) *memFranchises {
	m := &memFranchises{franchises: make(map[string]*model.Franchise)}
	for _, f := range fs {
		m.franchises[f.ID] = f
	}
	return m
}

func (m *memFranchises) Create(f *model.Franchise) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	m.franchises[f.ID] = f
	return nil
}

func (m *memFranchises) Get(id string) (*model.Franchise, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.franchises[id]
	if !ok {
		return nil, model.NotFoundError("Franchise not found")
	}
	cp := *f
	return &cp, nil
}

func (m *memFranchises) List() ([]model.Franchise, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Franchise
	for _, f := range m.franchises {
		out = append(out, *f)
	}
	return out, nil
}

func (m *memFranchises) Update(f *model.Franchise) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.franchises[f.ID] = f
	return nil
}

func (m *memFranchises) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.franchises, id)
	return nil
}

type memSettings struct {
	mu     sync.Mutex
	values map[string]datatypes.JSON
}

func newMemSettings() *memSettings {
	return &memSettings{values: make(map[string]datatypes.JSON)}
}

func (m *memSettings) Get(scope, key string) (datatypes.JSON, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[scope+"/"+key], nil
}

func (m *memSettings) GetAs(scope, key string, target any) (bool, error) {
	raw, err := m.Get(scope, key)
	if err != nil || raw == nil {
		return false, err
	}
	return true, json.Unmarshal(raw, target)
}

func (m *memSettings) Set(scope, key string, value datatypes.JSON) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[scope+"/"+key] = value
	return nil
}

func (m *memSettings) SetAny(scope, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return m.Set(scope, key, b)
}

func (m *memSettings) Delete(scope, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, scope+"/"+key)
	return nil
}

// memUsers stores plaintext passwords; hashing is covered by the storage
// package's tests.
type memUsers struct {
	mu        sync.Mutex
	users     map[string]*model.User
	passwords map[string]string
	nextID    uint
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[string]*model.User), passwords: make(map[string]string)}
}

func (m *memUsers) Count() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

func (m *memUsers) List() ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memUsers) Get(username string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[username]
	if !ok {
		return nil, model.NotFoundErrorFmt("user not found: %s", username)
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) Create(
	username, password, displayName string, role model.UserRole, franchiseID *string,
) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if username == "" || password == "" {
		return nil, model.ValidationError("username and password are required")
	}
	if _, ok := m.users[username]; ok {
		return nil, model.AlreadyExistsErrorFmt("user already exists: %s", username)
	}
	m.nextID++
	u := &model.User{
		ID:          m.nextID,
		Username:    username,
		DisplayName: displayName,
		Role:        role,
		FranchiseID: franchiseID,
	}
	m.users[username] = u
	m.passwords[username] = password
	cp := *u
	return &cp, nil
}

func (m *memUsers) Update(
	username string, displayName *string, newPassword *string, disabled *bool,
) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[username]
	if !ok {
		return nil, model.NotFoundErrorFmt("user not found: %s", username)
	}
	if displayName != nil {
		u.DisplayName = *displayName
	}
	if newPassword != nil {
		m.passwords[username] = *newPassword
	}
	if disabled != nil {
		u.Disabled = *disabled
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) Delete(username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[username]; !ok {
		return model.NotFoundErrorFmt("user not found: %s", username)
	}
	delete(m.users, username)
	delete(m.passwords, username)
	return nil
}

func (m *memUsers) Authenticate(username, password string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[username]
	if !ok || m.passwords[username] != password || u.Disabled {
		return nil, model.NotFoundError("invalid credentials")
	}
	cp := *u
	return &cp, nil
}
