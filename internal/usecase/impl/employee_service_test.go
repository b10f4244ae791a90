package impl

import (
	"context"
	"testing"
	"time"

	"hrcore/internal/domain/entity"
	domainerrors "hrcore/internal/domain/errors"
	"hrcore/internal/domain/repository"
	mockRepo "hrcore/internal/mocks/repository"
	"hrcore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validEmployeeInput() usecase.CreateEmployeeInput {
	return usecase.CreateEmployeeInput{
		FirstName:     "Laura",
		LastName:      "Mendoza",
		HireDate:      time.Date(2020, time.June, 15, 0, 0, 0, 0, time.UTC),
		BirthDate:     time.Date(1990, time.March, 12, 0, 0, 0, 0, time.UTC),
		NSS:           "12345678901",
		CURP:          "MELA900312MDFNRR08",
		Department:    "Accounting",
		MonthlySalary: 15000,
	}
}

func TestEmployeeService_CreateEmployee_Success(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()
	input := validEmployeeInput()
	createdID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockEmpRepo := mockRepo.NewMockEmployeeRepository(t)

			mockFactory.EXPECT().EmployeeRepo().Return(mockEmpRepo)

			mockEmpRepo.EXPECT().NSSExists(ctx, input.NSS, uuid.Nil).Return(false, nil)
			mockEmpRepo.EXPECT().CURPExists(ctx, input.CURP, uuid.Nil).Return(false, nil)
			mockEmpRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Employee")).
				RunAndReturn(func(ctx context.Context, emp *entity.Employee) (*entity.Employee, error) {
					created := *emp
					created.ID = createdID
					return &created, nil
				})

			_ = fn(mockFactory)
		}).
		Return(nil)

	created, err := fx.service.CreateEmployee(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, createdID, created.ID)
	assert.Equal(t, "Laura Mendoza", created.FullName())
}

func TestEmployeeService_CreateEmployee_DuplicateNSS(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()
	input := validEmployeeInput()
	wantErr := errors.Wrap(domainerrors.ErrDuplicateNSS, "NSS already registered")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockEmpRepo := mockRepo.NewMockEmployeeRepository(t)

			mockFactory.EXPECT().EmployeeRepo().Return(mockEmpRepo)
			mockEmpRepo.EXPECT().NSSExists(ctx, input.NSS, uuid.Nil).Return(true, nil)

			_ = fn(mockFactory)
		}).
		Return(wantErr)

	created, err := fx.service.CreateEmployee(ctx, input)

	assert.Nil(t, created)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateNSS))
}

func TestEmployeeService_CreateEmployee_ValidationRejectsBeforeTransaction(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*usecase.CreateEmployeeInput)
	}{
		{"empty first name", func(in *usecase.CreateEmployeeInput) { in.FirstName = "" }},
		{"future hire date", func(in *usecase.CreateEmployeeInput) { in.HireDate = time.Now().AddDate(0, 0, 1) }},
		{"underage employee", func(in *usecase.CreateEmployeeInput) { in.BirthDate = time.Now().AddDate(-13, 0, 0) }},
		{"short NSS", func(in *usecase.CreateEmployeeInput) { in.NSS = "12345" }},
		{"lowercase CURP normalizes but wrong length fails", func(in *usecase.CreateEmployeeInput) { in.CURP = "short" }},
		{"zero salary", func(in *usecase.CreateEmployeeInput) { in.MonthlySalary = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validEmployeeInput()
			tt.mutate(&input)

			created, err := fx.service.CreateEmployee(ctx, input)

			assert.Nil(t, created)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestEmployeeService_CreateEmployee_NormalizesCURP(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()
	input := validEmployeeInput()
	input.CURP = "mela900312mdfnrr08"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockEmpRepo := mockRepo.NewMockEmployeeRepository(t)

			mockFactory.EXPECT().EmployeeRepo().Return(mockEmpRepo)
			mockEmpRepo.EXPECT().NSSExists(ctx, input.NSS, uuid.Nil).Return(false, nil)
			mockEmpRepo.EXPECT().CURPExists(ctx, "MELA900312MDFNRR08", uuid.Nil).Return(false, nil)
			mockEmpRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Employee")).
				RunAndReturn(func(ctx context.Context, emp *entity.Employee) (*entity.Employee, error) {
					assert.Equal(t, "MELA900312MDFNRR08", emp.CURP)
					return emp, nil
				})

			_ = fn(mockFactory)
		}).
		Return(nil)

	_, err := fx.service.CreateEmployee(ctx, input)

	require.NoError(t, err)
}

func TestEmployeeService_UpdateEmployee_NotFound(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()
	id := uuid.New()
	wantErr := errors.Wrap(domainerrors.ErrEmployeeNotFound, "employee not found")

	input := validEmployeeInput()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockEmpRepo := mockRepo.NewMockEmployeeRepository(t)

			mockFactory.EXPECT().EmployeeRepo().Return(mockEmpRepo)
			mockEmpRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrEmployeeNotFound)

			_ = fn(mockFactory)
		}).
		Return(wantErr)

	updated, err := fx.service.UpdateEmployee(ctx, usecase.UpdateEmployeeInput{
		ID:              id,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		MothersLastName: input.MothersLastName,
		HireDate:        input.HireDate,
		BirthDate:       input.BirthDate,
		NSS:             input.NSS,
		CURP:            input.CURP,
		Department:      input.Department,
		MonthlySalary:   input.MonthlySalary,
	})

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrEmployeeNotFound))
}

func TestEmployeeService_DeleteEmployee_NotFound(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.employeeRepo.EXPECT().Delete(ctx, id).Return(repository.ErrEmployeeNotFound)

	err := fx.service.DeleteEmployee(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrEmployeeNotFound))
}

func TestEmployeeService_GetEmployee(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()
	id := uuid.New()
	emp := &entity.Employee{ID: id, FirstName: "Laura", LastName: "Mendoza"}

	fx.employeeRepo.EXPECT().FindByID(ctx, id).Return(emp, nil)

	found, err := fx.service.GetEmployee(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, emp, found)
}
