package impl

import (
	"io"
	"log/slog"
	"testing"

	"hrcore/config"
	mockRepo "hrcore/internal/mocks/repository"
	mockSvc "hrcore/internal/mocks/service"
	"hrcore/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Bootstrap: &config.BootstrapConfig{
			AdminUsername: "admin",
			AdminSecret:   "Admin",
		},
	}
}

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service        usecase.AccountUsecase
	txManager      *mockRepo.MockTransactionManager
	credentialRepo *mockRepo.MockCredentialRepository
	hasher         *mockSvc.MockPasswordHasher
	tokenService   *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	credentialRepo := mockRepo.NewMockCredentialRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAccountService(AccountServiceParams{
		TxManager:      txManager,
		CredentialRepo: credentialRepo,
		Hasher:         hasher,
		TokenService:   tokenService,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:        service,
		txManager:      txManager,
		credentialRepo: credentialRepo,
		hasher:         hasher,
		tokenService:   tokenService,
	}
}

// employeeServiceFixtures holds all test dependencies for employee service tests.
type employeeServiceFixtures struct {
	service      usecase.EmployeeUsecase
	txManager    *mockRepo.MockTransactionManager
	employeeRepo *mockRepo.MockEmployeeRepository
}

func createTestEmployeeService(t *testing.T) employeeServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	employeeRepo := mockRepo.NewMockEmployeeRepository(t)

	service := NewEmployeeService(EmployeeServiceParams{
		TxManager:    txManager,
		EmployeeRepo: employeeRepo,
		Logger:       newDiscardLogger(),
	})

	return employeeServiceFixtures{
		service:      service,
		txManager:    txManager,
		employeeRepo: employeeRepo,
	}
}
