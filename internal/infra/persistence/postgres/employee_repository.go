package postgres

import (
	"context"

	"hrcore/internal/domain/entity"
	"hrcore/internal/domain/repository"
	"hrcore/internal/errors"
	"hrcore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository is the constructor for employeeRepository.
func NewEmployeeRepository(db *gorm.DB) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

func toEmployeeModel(emp *entity.Employee) *model.EmployeeModel {
	return &model.EmployeeModel{
		ID:              emp.ID,
		FirstName:       emp.FirstName,
		LastName:        emp.LastName,
		MothersLastName: emp.MothersLastName,
		HireDate:        emp.HireDate,
		BirthDate:       emp.BirthDate,
		NSS:             emp.NSS,
		CURP:            emp.CURP,
		Department:      emp.Department,
		MonthlySalary:   emp.MonthlySalary,
		CreatedAt:       emp.CreatedAt,
		UpdatedAt:       emp.UpdatedAt,
	}
}

func toEmployeeEntity(m *model.EmployeeModel) *entity.Employee {
	return &entity.Employee{
		ID:              m.ID,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		MothersLastName: m.MothersLastName,
		HireDate:        m.HireDate,
		BirthDate:       m.BirthDate,
		NSS:             m.NSS,
		CURP:            m.CURP,
		Department:      m.Department,
		MonthlySalary:   m.MonthlySalary,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func (r *employeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	var m model.EmployeeModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by id")
	}

	return toEmployeeEntity(&m), nil
}

func (r *employeeRepository) List(ctx context.Context) ([]*entity.Employee, error) {
	var models []*model.EmployeeModel
	if err := r.db.WithContext(ctx).Order("last_name ASC, first_name ASC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list employees")
	}

	employees := make([]*entity.Employee, 0, len(models))
	for _, m := range models {
		employees = append(employees, toEmployeeEntity(m))
	}

	return employees, nil
}

func (r *employeeRepository) Create(ctx context.Context, emp *entity.Employee) (*entity.Employee, error) {
	m := toEmployeeModel(emp)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, errors.Wrap(err, "employee identifier already exists")
		}

		return nil, errors.Wrap(err, "failed to create employee")
	}

	return toEmployeeEntity(m), nil
}

func (r *employeeRepository) Update(ctx context.Context, emp *entity.Employee) (*entity.Employee, error) {
	result := r.db.WithContext(ctx).Model(&model.EmployeeModel{}).
		Where("id = ?", emp.ID).
		Updates(map[string]any{
			"first_name":        emp.FirstName,
			"last_name":         emp.LastName,
			"mothers_last_name": emp.MothersLastName,
			"hire_date":         emp.HireDate,
			"birth_date":        emp.BirthDate,
			"nss":               emp.NSS,
			"curp":              emp.CURP,
			"department":        emp.Department,
			"monthly_salary":    emp.MonthlySalary,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, errors.Wrap(result.Error, "employee identifier already exists")
		}

		return nil, errors.Wrap(result.Error, "failed to update employee")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrEmployeeNotFound
	}

	return r.FindByID(ctx, emp.ID)
}

func (r *employeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.EmployeeModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete employee")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepository) NSSExists(ctx context.Context, nss string, excludeID uuid.UUID) (bool, error) {
	return r.columnExists(ctx, "nss", nss, excludeID)
}

func (r *employeeRepository) CURPExists(ctx context.Context, curp string, excludeID uuid.UUID) (bool, error) {
	return r.columnExists(ctx, "curp", curp, excludeID)
}

func (r *employeeRepository) columnExists(ctx context.Context, column, value string, excludeID uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&model.EmployeeModel{}).Where(column+" = ?", value)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "failed to check %s existence", column)
	}

	return count > 0, nil
}
