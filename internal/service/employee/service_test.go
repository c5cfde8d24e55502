package employee

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-data-service/internal/domain/company"
	"github.com/cmlabs-hris/hr-data-service/internal/domain/employee"
	"github.com/cmlabs-hris/hr-data-service/internal/pkg/apperror"
	"github.com/cmlabs-hris/hr-data-service/internal/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) GetByID(ctx context.Context, id int64) (*company.Company, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*company.Company)
	return c, args.Error(1)
}

func (m *MockCompanyRepository) GetByName(ctx context.Context, name string) (*company.Company, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(*company.Company)
	return c, args.Error(1)
}

func (m *MockCompanyRepository) Create(ctx context.Context, c company.Company) (company.Company, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(company.Company), args.Error(1)
}

func (m *MockCompanyRepository) Update(ctx context.Context, c company.Company) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCompanyRepository) Remove(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// memEmployeeRepository keeps rows in memory with the same visibility rules as
// the postgres repository: deleted rows only count towards the last number.
type memEmployeeRepository struct {
	rows    []employee.Employee
	nextID  int64
	creates int
	failOn  string
}

func (r *memEmployeeRepository) fail(op string) error {
	if r.failOn == op {
		return apperror.Store(op, errors.New("connection lost"))
	}
	return nil
}

func (r *memEmployeeRepository) live(companyID int64, keep func(employee.Employee) bool) []employee.Employee {
	out := []employee.Employee{}
	for _, e := range r.rows {
		if e.CompanyID == companyID && !e.Deleted && keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func (r *memEmployeeRepository) List(_ context.Context, companyID int64) ([]employee.Employee, error) {
	if err := r.fail("List"); err != nil {
		return nil, err
	}
	return r.live(companyID, func(employee.Employee) bool { return true }), nil
}

func (r *memEmployeeRepository) ListByLastName(_ context.Context, companyID int64, lastName string) ([]employee.Employee, error) {
	return r.live(companyID, func(e employee.Employee) bool { return e.LastName == lastName }), nil
}

func (r *memEmployeeRepository) GetByID(_ context.Context, id int64) (*employee.Employee, error) {
	for _, e := range r.rows {
		if e.ID == id && !e.Deleted {
			found := e
			return &found, nil
		}
	}
	return nil, nil
}

func (r *memEmployeeRepository) GetByEmployeeNumber(_ context.Context, companyID int64, employeeNumber int) (*employee.Employee, error) {
	matches := r.live(companyID, func(e employee.Employee) bool { return e.EmployeeNumber == employeeNumber })
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

func (r *memEmployeeRepository) ListByManagerNumber(_ context.Context, companyID int64, managerNumber int) ([]employee.Employee, error) {
	return r.live(companyID, func(e employee.Employee) bool {
		return e.ManagerEmployeeNumber != nil && *e.ManagerEmployeeNumber == managerNumber
	}), nil
}

func (r *memEmployeeRepository) LastEmployeeNumberForCompany(_ context.Context, companyID int64) (int, error) {
	last := 0
	for _, e := range r.rows {
		if e.CompanyID == companyID && e.EmployeeNumber > last {
			last = e.EmployeeNumber
		}
	}
	return last, nil
}

func (r *memEmployeeRepository) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	if err := r.fail("Create"); err != nil {
		return employee.Employee{}, err
	}
	r.creates++
	r.nextID++
	e.ID = r.nextID
	e.LastModifiedAt = time.Now().UTC()
	r.rows = append(r.rows, e)
	return e, nil
}

func (r *memEmployeeRepository) Update(_ context.Context, e employee.Employee) (employee.Employee, error) {
	for i := range r.rows {
		if r.rows[i].ID == e.ID && !r.rows[i].Deleted {
			r.rows[i].ApplyChanges(e)
			r.rows[i].LastModifiedAt = time.Now().UTC()
			return r.rows[i], nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *memEmployeeRepository) Remove(_ context.Context, id int64) error {
	for i := range r.rows {
		if r.rows[i].ID == id && !r.rows[i].Deleted {
			r.rows[i].Deleted = true
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

type passthroughTx struct {
	calls int
}

func (p *passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type recordingPublisher struct {
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) {
	p.events = append(p.events, e)
}

func (p *recordingPublisher) Close() error { return nil }

type fixture struct {
	svc       employee.EmployeeService
	companies *MockCompanyRepository
	employees *memEmployeeRepository
	tx        *passthroughTx
	published *recordingPublisher
}

var acme = &company.Company{ID: 1, Name: "Acme"}

func newFixture(t *testing.T, rows ...employee.Employee) *fixture {
	t.Helper()
	f := &fixture{
		companies: new(MockCompanyRepository),
		employees: &memEmployeeRepository{rows: rows, nextID: int64(len(rows))},
		tx:        &passthroughTx{},
		published: &recordingPublisher{},
	}
	f.companies.On("GetByName", mock.Anything, "Acme").Return(acme, nil).Maybe()
	f.companies.On("GetByName", mock.Anything, "Nowhere").Return(nil, nil).Maybe()
	f.svc = NewEmployeeService(f.tx, f.employees, f.companies, f.published)
	return f
}

func row(id int64, number int, first, last string) employee.Employee {
	return employee.Employee{ID: id, CompanyID: acme.ID, EmployeeNumber: number, FirstName: first, LastName: last}
}

func intPtr(n int) *int { return &n }

func TestCreateEmployee_FirstEmployeeGetsNumberOne(t *testing.T) {
	f := newFixture(t)

	got, err := f.svc.CreateEmployee(context.Background(), employee.EmployeeModel{CompanyName: "Acme", FirstName: "Ann"})
	require.NoError(t, err)
	assert.Equal(t, 1, got.EmployeeNumber)
	assert.Equal(t, "Acme", got.CompanyName)
	assert.Equal(t, "Ann", got.FirstName)
	assert.Equal(t, 1, f.tx.calls)

	require.Len(t, f.published.events, 1)
	assert.Equal(t, events.EmployeeCreated, f.published.events[0].Type)
	assert.Equal(t, 1, *f.published.events[0].EmployeeNumber)
}

func TestCreateEmployee_DeletedNumbersAreNotReissued(t *testing.T) {
	deleted := row(2, 2, "Del", "Eted")
	deleted.Deleted = true
	f := newFixture(t, row(1, 1, "Ann", "Lee"), deleted)

	got, err := f.svc.CreateEmployee(context.Background(), employee.EmployeeModel{CompanyName: "Acme", FirstName: "Bo"})
	require.NoError(t, err)
	assert.Equal(t, 3, got.EmployeeNumber)
}

func TestCreateEmployee_UnknownManager(t *testing.T) {
	f := newFixture(t, row(1, 1, "Ann", "Lee"))

	_, err := f.svc.CreateEmployee(context.Background(), employee.EmployeeModel{
		CompanyName:           "Acme",
		ManagerEmployeeNumber: intPtr(99),
	})
	assert.ErrorIs(t, err, employee.ErrInvalidManager)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Zero(t, f.employees.creates)
	assert.Empty(t, f.published.events)
}

func TestCreateEmployee_DeletedManagerIsInvalid(t *testing.T) {
	gone := row(1, 1, "Ann", "Lee")
	gone.Deleted = true
	f := newFixture(t, gone)

	_, err := f.svc.CreateEmployee(context.Background(), employee.EmployeeModel{
		CompanyName:           "Acme",
		ManagerEmployeeNumber: intPtr(1),
	})
	assert.ErrorIs(t, err, employee.ErrInvalidManager)
}

func TestCreateEmployee_WithManager(t *testing.T) {
	f := newFixture(t, row(1, 1, "Ann", "Lee"))
	hired := "2023-04-01"

	got, err := f.svc.CreateEmployee(context.Background(), employee.EmployeeModel{
		CompanyName:           "Acme",
		FirstName:             "Bo",
		HireDate:              &hired,
		ManagerEmployeeNumber: intPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, got.EmployeeNumber)
	require.NotNil(t, got.HireDate)
	assert.Equal(t, hired, *got.HireDate)
	assert.Equal(t, 1, *got.ManagerEmployeeNumber)
}

func TestCreateEmployee_UnknownCompany(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateEmployee(context.Background(), employee.EmployeeModel{CompanyName: "Nowhere"})
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
	assert.Zero(t, f.employees.creates)
}

func TestCreateEmployee_BlankCompanyName(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateEmployee(context.Background(), employee.EmployeeModel{CompanyName: "  "})
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Zero(t, f.tx.calls)
	f.companies.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
}

func TestCreateEmployee_StoreFailurePublishesNothing(t *testing.T) {
	f := newFixture(t)
	f.employees.failOn = "Create"

	_, err := f.svc.CreateEmployee(context.Background(), employee.EmployeeModel{CompanyName: "Acme"})
	assert.ErrorIs(t, err, apperror.ErrStore)
	assert.Empty(t, f.published.events)
}

func TestGetEmployeesByCompanyName_SortedByNumber(t *testing.T) {
	f := newFixture(t, row(3, 3, "C", "Three"), row(1, 1, "A", "One"), row(2, 2, "B", "Two"))

	got, err := f.svc.GetEmployeesByCompanyName(context.Background(), "Acme")
	require.NoError(t, err)

	numbers := make([]int, 0, len(got))
	for _, m := range got {
		numbers = append(numbers, m.EmployeeNumber)
		assert.Equal(t, "Acme", m.CompanyName)
	}
	assert.Equal(t, []int{1, 2, 3}, numbers)
}

func TestGetEmployeesByCompanyName_UnknownCompany(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetEmployeesByCompanyName(context.Background(), "Nowhere")
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
}

func TestGetEmployeesByCompanyName_StoreFailure(t *testing.T) {
	f := newFixture(t)
	f.employees.failOn = "List"

	_, err := f.svc.GetEmployeesByCompanyName(context.Background(), "Acme")
	assert.ErrorIs(t, err, apperror.ErrStore)
}

func TestGetEmployeesByLastName(t *testing.T) {
	f := newFixture(t, row(2, 2, "B", "Smith"), row(1, 1, "A", "Jones"), row(3, 3, "C", "Smith"))

	got, err := f.svc.GetEmployeesByLastName(context.Background(), "Acme", "Smith")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].EmployeeNumber)
	assert.Equal(t, 3, got[1].EmployeeNumber)
}

func TestRemoveEmployee_ThenGetFails(t *testing.T) {
	f := newFixture(t, row(1, 1, "Ann", "Lee"))

	require.NoError(t, f.svc.RemoveEmployee(context.Background(), "Acme", 1))

	_, err := f.svc.GetEmployeeByEmployeeNumber(context.Background(), "Acme", 1)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	list, err := f.svc.GetEmployeesByCompanyName(context.Background(), "Acme")
	require.NoError(t, err)
	assert.Empty(t, list)

	require.Len(t, f.published.events, 1)
	assert.Equal(t, events.EmployeeRemoved, f.published.events[0].Type)
}

func TestRemoveEmployee_Missing(t *testing.T) {
	f := newFixture(t)

	err := f.svc.RemoveEmployee(context.Background(), "Acme", 5)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Empty(t, f.published.events)
}

func TestUpdateEmployee_KeepsIdentity(t *testing.T) {
	f := newFixture(t, row(1, 1, "Ann", "Lee"), row(2, 2, "Bo", "Chan"))

	got, err := f.svc.UpdateEmployee(context.Background(), employee.EmployeeModel{
		CompanyName:           "Acme",
		EmployeeNumber:        2,
		FirstName:             "Bob",
		LastName:              "Chan",
		SocialSecurityNumber:  "999",
		ManagerEmployeeNumber: intPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, got.EmployeeNumber)
	assert.Equal(t, "Bob", got.FirstName)

	stored := f.employees.rows[1]
	assert.Equal(t, int64(2), stored.ID)
	assert.Equal(t, acme.ID, stored.CompanyID)
	assert.Equal(t, 2, stored.EmployeeNumber)
	assert.Equal(t, "999", stored.SocialSecurityNumber)
	assert.Equal(t, 1, *stored.ManagerEmployeeNumber)

	require.Len(t, f.published.events, 1)
	assert.Equal(t, events.EmployeeUpdated, f.published.events[0].Type)
}

func TestUpdateEmployee_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     employee.EmployeeModel
		wantErr error
	}{
		{
			name:    "missing employee number",
			req:     employee.EmployeeModel{CompanyName: "Acme"},
			wantErr: apperror.ErrValidation,
		},
		{
			name:    "unknown employee",
			req:     employee.EmployeeModel{CompanyName: "Acme", EmployeeNumber: 7},
			wantErr: employee.ErrEmployeeNotFound,
		},
		{
			name:    "unknown manager",
			req:     employee.EmployeeModel{CompanyName: "Acme", EmployeeNumber: 1, ManagerEmployeeNumber: intPtr(42)},
			wantErr: employee.ErrInvalidManager,
		},
		{
			name:    "self managed",
			req:     employee.EmployeeModel{CompanyName: "Acme", EmployeeNumber: 1, ManagerEmployeeNumber: intPtr(1)},
			wantErr: employee.ErrSelfManaged,
		},
		{
			name:    "unknown company",
			req:     employee.EmployeeModel{CompanyName: "Nowhere", EmployeeNumber: 1},
			wantErr: company.ErrCompanyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, row(1, 1, "Ann", "Lee"))

			_, err := f.svc.UpdateEmployee(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, "Ann", f.employees.rows[0].FirstName)
			assert.Empty(t, f.published.events)
		})
	}
}

func TestGetDirectReports(t *testing.T) {
	report := func(id int64, number int) employee.Employee {
		e := row(id, number, "R", "Report")
		e.ManagerEmployeeNumber = intPtr(1)
		return e
	}
	removed := report(4, 4)
	removed.Deleted = true
	f := newFixture(t, row(1, 1, "Boss", "Lee"), report(3, 3), report(2, 2), removed)

	got, err := f.svc.GetDirectReports(context.Background(), "Acme", 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].EmployeeNumber)
	assert.Equal(t, 3, got[1].EmployeeNumber)

	_, err = f.svc.GetDirectReports(context.Background(), "Acme", 9)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
