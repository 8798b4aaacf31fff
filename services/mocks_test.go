package services_test

import (
	"context"
	"sync"
	"time"

	"stitchworks-api/models"
	"stitchworks-api/notifier"
	"stitchworks-api/repository"

	"github.com/google/uuid"
)

// ---- in-memory order repo ----

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*models.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*models.Order)}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	cp := *order
	f.orders[order.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) FindAll(_ context.Context, _, _ int) ([]models.Order, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (f *fakeOrderRepo) FindByStatus(_ context.Context, status string) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Order
	for _, o := range f.orders {
		if o.Status == status {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) Update(_ context.Context, order *models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *order
	f.orders[order.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return repository.ErrNotFound
	}
	o.Status = status
	return nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.orders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepo) SumTotalsBetween(_ context.Context, from, to time.Time) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sum float64
	for _, o := range f.orders {
		if !o.CreatedAt.Before(from) && o.CreatedAt.Before(to) {
			sum += o.Price.Total
		}
	}
	return sum, nil
}

// ---- in-memory delivery repo ----

type fakeDeliveryRepo struct {
	mu         sync.Mutex
	deliveries map[uuid.UUID]*models.Delivery
	byOrder    map[uuid.UUID]uuid.UUID
}

func newFakeDeliveryRepo() *fakeDeliveryRepo {
	return &fakeDeliveryRepo{
		deliveries: make(map[uuid.UUID]*models.Delivery),
		byOrder:    make(map[uuid.UUID]uuid.UUID),
	}
}

func (f *fakeDeliveryRepo) CreateIfAbsent(_ context.Context, d *models.Delivery) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.byOrder[d.OrderID]; exists {
		return false, nil
	}
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	cp := *d
	f.deliveries[d.ID] = &cp
	f.byOrder[d.OrderID] = d.ID
	return true, nil
}

func (f *fakeDeliveryRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Delivery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.deliveries[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDeliveryRepo) FindByOrderID(_ context.Context, orderID uuid.UUID) (*models.Delivery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.byOrder[orderID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *f.deliveries[id]
	return &cp, nil
}

func (f *fakeDeliveryRepo) FindAll(_ context.Context, _, _ int) ([]models.Delivery, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Delivery, 0, len(f.deliveries))
	for _, d := range f.deliveries {
		out = append(out, *d)
	}
	return out, int64(len(out)), nil
}

func (f *fakeDeliveryRepo) Update(_ context.Context, d *models.Delivery) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *d
	f.deliveries[d.ID] = &cp
	return nil
}

func (f *fakeDeliveryRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.deliveries[id]
	if !ok {
		return repository.ErrNotFound
	}
	delete(f.byOrder, d.OrderID)
	delete(f.deliveries, id)
	return nil
}

// ---- in-memory inventory repo ----

type fakeInventoryRepo struct {
	mu    sync.Mutex
	items map[string]*models.InventoryItem
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{items: make(map[string]*models.InventoryItem)}
}

func (f *fakeInventoryRepo) Create(_ context.Context, item *models.InventoryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.items[item.Code]; exists {
		return repository.ErrDuplicate
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	cp := *item
	f.items[item.Code] = &cp
	return nil
}

func (f *fakeInventoryRepo) FindByCode(_ context.Context, code string) (*models.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[code]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (f *fakeInventoryRepo) FindAll(_ context.Context, _, _ int) ([]models.InventoryItem, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.InventoryItem, 0, len(f.items))
	for _, item := range f.items {
		out = append(out, *item)
	}
	return out, int64(len(out)), nil
}

func (f *fakeInventoryRepo) FindLow(_ context.Context) ([]models.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var low []models.InventoryItem
	for _, item := range f.items {
		if item.IsLow() {
			low = append(low, *item)
		}
	}
	return low, nil
}

func (f *fakeInventoryRepo) Update(_ context.Context, item *models.InventoryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *item
	f.items[item.Code] = &cp
	return nil
}

func (f *fakeInventoryRepo) Delete(_ context.Context, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[code]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, code)
	return nil
}

func (f *fakeInventoryRepo) AddStock(_ context.Context, code string, amount float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[code]
	if !ok {
		return repository.ErrNotFound
	}
	item.Quantity += amount
	item.LastUpdated = time.Now().UTC()
	return nil
}

// RemoveStock mirrors the conditional single-statement decrement: the check
// and the mutation happen under one lock.
func (f *fakeInventoryRepo) RemoveStock(_ context.Context, code string, amount float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[code]
	if !ok {
		return repository.ErrNotFound
	}
	if item.Quantity < amount {
		return repository.ErrInsufficientStock
	}
	item.Quantity -= amount
	item.LastUpdated = time.Now().UTC()
	return nil
}

func (f *fakeInventoryRepo) TotalValuation(_ context.Context) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sum float64
	for _, item := range f.items {
		sum += item.Quantity * item.UnitPrice
	}
	return sum, nil
}

// ---- in-memory salary repo ----

type fakeSalaryRepo struct {
	mu      sync.Mutex
	records map[string]*models.SalaryRecord
}

func newFakeSalaryRepo() *fakeSalaryRepo {
	return &fakeSalaryRepo{records: make(map[string]*models.SalaryRecord)}
}

func (f *fakeSalaryRepo) Create(_ context.Context, rec *models.SalaryRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.records[rec.Code]; exists {
		return repository.ErrDuplicate
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	cp := *rec
	f.records[rec.Code] = &cp
	return nil
}

func (f *fakeSalaryRepo) FindByCode(_ context.Context, code string) (*models.SalaryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[code]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeSalaryRepo) FindAll(_ context.Context, _, _ int) ([]models.SalaryRecord, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.SalaryRecord, 0, len(f.records))
	for _, rec := range f.records {
		out = append(out, *rec)
	}
	return out, int64(len(out)), nil
}

func (f *fakeSalaryRepo) SetPaid(_ context.Context, code string, paid bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[code]
	if !ok {
		return repository.ErrNotFound
	}
	rec.Paid = paid
	return nil
}

func (f *fakeSalaryRepo) Delete(_ context.Context, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.records[code]; !ok {
		return repository.ErrNotFound
	}
	delete(f.records, code)
	return nil
}

func (f *fakeSalaryRepo) SumAmountBetween(_ context.Context, from, to time.Time) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sum float64
	for _, rec := range f.records {
		if !rec.PaymentDate.Before(from) && rec.PaymentDate.Before(to) {
			sum += rec.Amount
		}
	}
	return sum, nil
}

// ---- in-memory employee repo ----

type fakeEmployeeRepo struct {
	mu         sync.Mutex
	employees  map[uuid.UUID]*models.Employee
	attendance map[string]*models.Attendance
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees:  make(map[uuid.UUID]*models.Employee),
		attendance: make(map[string]*models.Attendance),
	}
}

func attendanceKey(employeeID uuid.UUID, date time.Time) string {
	return employeeID.String() + "/" + date.Format("2006-01-02")
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e *models.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	cp := *e
	f.employees[e.ID] = &cp
	return nil
}

func (f *fakeEmployeeRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.employees[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEmployeeRepo) FindAll(_ context.Context, _, _ int) ([]models.Employee, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Employee, 0, len(f.employees))
	for _, e := range f.employees {
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e *models.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *e
	f.employees[e.ID] = &cp
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.employees[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) UpsertAttendance(_ context.Context, rec *models.Attendance) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	cp := *rec
	f.attendance[attendanceKey(rec.EmployeeID, rec.Date)] = &cp
	return nil
}

func (f *fakeEmployeeRepo) ListAttendance(_ context.Context, employeeID uuid.UUID) ([]models.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Attendance
	for _, rec := range f.attendance {
		if rec.EmployeeID == employeeID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

// ---- mock collaborators ----

type mockMailer struct {
	mu       sync.Mutex
	sendErr  error
	sent     []string
	subjects []string
}

func (m *mockMailer) SendEmail(_ context.Context, to, subject, _ string) (notifier.SendResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return notifier.SendResult{}, m.sendErr
	}
	m.sent = append(m.sent, to)
	m.subjects = append(m.subjects, subject)
	return notifier.SendResult{MessageID: "test", SentAt: time.Now()}, nil
}

type mockArtworkStore struct {
	mu        sync.Mutex
	deleteErr error
	deleted   []string
}

func (m *mockArtworkStore) Delete(_ context.Context, ref string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, ref)
	return nil
}
