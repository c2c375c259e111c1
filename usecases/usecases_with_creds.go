package usecases

import (
	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/usecases/security"
)

type UsecasesWithCreds struct {
	Usecases
	Credentials models.Credentials
}

func (usecases *UsecasesWithCreds) NewEnforceSecurity() security.EnforceSecurity {
	return &security.EnforceSecurityImpl{
		Credentials: usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewAutomationUsecase() *AutomationUsecase {
	return &AutomationUsecase{
		enforceSecurity:    usecases.NewEnforceSecurity(),
		executorFactory:    usecases.ExecutorGetter,
		transactionFactory: usecases.ExecutorGetter,
		repository:         usecases.Repositories.AutomationRepository,
		userRepository:     usecases.Repositories.UserRepository,
		notifier:           usecases.Notifier,
		ruleCache:          usecases.Registry,
		credentials:        usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewContactUsecase() *ContactUsecase {
	return &ContactUsecase{
		enforceSecurity:    usecases.NewEnforceSecurity(),
		executorFactory:    usecases.ExecutorGetter,
		transactionFactory: usecases.ExecutorGetter,
		repository:         usecases.Repositories.ContactRepository,
		userRepository:     usecases.Repositories.UserRepository,
		notifier:           usecases.Notifier,
		credentials:        usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewFlowUsecase() *FlowUsecase {
	return &FlowUsecase{
		enforceSecurity:    usecases.NewEnforceSecurity(),
		executorFactory:    usecases.ExecutorGetter,
		transactionFactory: usecases.ExecutorGetter,
		repository:         usecases.Repositories.FlowRepository,
		notifier:           usecases.Notifier,
		credentials:        usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewSequenceUsecase() *SequenceUsecase {
	return &SequenceUsecase{
		enforceSecurity:    usecases.NewEnforceSecurity(),
		executorFactory:    usecases.ExecutorGetter,
		transactionFactory: usecases.ExecutorGetter,
		repository:         usecases.Repositories.SequenceRepository,
		notifier:           usecases.Notifier,
		credentials:        usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewBroadcastUsecase() *BroadcastUsecase {
	return &BroadcastUsecase{
		enforceSecurity:    usecases.NewEnforceSecurity(),
		executorFactory:    usecases.ExecutorGetter,
		transactionFactory: usecases.ExecutorGetter,
		repository:         usecases.Repositories.BroadcastRepository,
		contactRepository:  usecases.Repositories.ContactRepository,
		notifier:           usecases.Notifier,
		credentials:        usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewGrowthToolUsecase() *GrowthToolUsecase {
	return &GrowthToolUsecase{
		enforceSecurity:    usecases.NewEnforceSecurity(),
		executorFactory:    usecases.ExecutorGetter,
		transactionFactory: usecases.ExecutorGetter,
		repository:         usecases.Repositories.GrowthToolRepository,
		notifier:           usecases.Notifier,
		credentials:        usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewPaymentUsecase() *PaymentUsecase {
	return &PaymentUsecase{
		enforceSecurity:    usecases.NewEnforceSecurity(),
		executorFactory:    usecases.ExecutorGetter,
		transactionFactory: usecases.ExecutorGetter,
		repository:         usecases.Repositories.PaymentRepository,
		userRepository:     usecases.Repositories.UserRepository,
		settingsRepository: usecases.Repositories.SettingsRepository,
		notifier:           usecases.Notifier,
		credentials:        usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewCouponUsecase() *CouponUsecase {
	return &CouponUsecase{
		enforceSecurity:    usecases.NewEnforceSecurity(),
		executorFactory:    usecases.ExecutorGetter,
		transactionFactory: usecases.ExecutorGetter,
		repository:         usecases.Repositories.CouponRepository,
		userRepository:     usecases.Repositories.UserRepository,
		notifier:           usecases.Notifier,
		credentials:        usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewSettingsUsecase() *SettingsUsecase {
	return &SettingsUsecase{
		enforceSecurity: usecases.NewEnforceSecurity(),
		executorFactory: usecases.ExecutorGetter,
		repository:      usecases.Repositories.SettingsRepository,
		notifier:        usecases.Notifier,
		credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewUserUsecase() *UserUsecase {
	return &UserUsecase{
		enforceSecurity:     usecases.NewEnforceSecurity(),
		executorFactory:     usecases.ExecutorGetter,
		transactionFactory:  usecases.ExecutorGetter,
		repository:          usecases.Repositories.UserRepository,
		instagramRepository: usecases.Repositories.InstagramRepository,
		settingsRepository:  usecases.Repositories.SettingsRepository,
		notifier:            usecases.Notifier,
		credentials:         usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewAdminUsecase() *AdminUsecase {
	return &AdminUsecase{
		enforceSecurity:    usecases.NewEnforceSecurity(),
		executorFactory:    usecases.ExecutorGetter,
		userRepository:     usecases.Repositories.UserRepository,
		paymentRepository:  usecases.Repositories.PaymentRepository,
		couponRepository:   usecases.Repositories.CouponRepository,
		settingsRepository: usecases.Repositories.SettingsRepository,
		notifier:           usecases.Notifier,
		credentials:        usecases.Credentials,
	}
}
