package employee

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/employee"
	"github.com/cmlabs-hris/hris-attendance/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	e.CreatedAt = time.Date(2024, time.April, 1, 9, 0, 0, 0, time.UTC)
	f.employees = append(f.employees, e)
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	_, err := f.GetByID(ctx, id)
	return err == nil, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEmployeeRepo{}
	svc := NewEmployeeService(repo, time.UTC)

	resp, err := svc.Create(ctx, employee.CreateEmployeeRequest{EmployeeID: " E1 ", Name: "Asha", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, "E1", resp.EmployeeID)
	assert.Equal(t, "2024-04-01T09:00:00Z", resp.CreatedAt)

	require.Len(t, repo.employees, 1)
	assert.NotEqual(t, "hunter22", repo.employees[0].PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.employees[0].PasswordHash), []byte("hunter22")))

	_, err = svc.Create(ctx, employee.CreateEmployeeRequest{EmployeeID: "E1", Name: "Other", Password: "x"})
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)

	_, err = svc.Create(ctx, employee.CreateEmployeeRequest{EmployeeID: "bad id", Name: "", Password: ""})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs.ToMap(), 3)
}

func TestList(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{}, time.UTC)

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}
