package usecases

import (
	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/usecases/security"
)

type UsecasesWithCreds struct {
	Usecases
	Credentials models.Credentials
}

func (usecases UsecasesWithCreds) NewEnforceSecurity() security.EnforceSecurity {
	return &security.EnforceSecurityImpl{
		Credentials: usecases.Credentials,
	}
}

func (usecases UsecasesWithCreds) NewEnforceCarSecurity() security.EnforceSecurityCar {
	return &security.EnforceSecurityCarImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases UsecasesWithCreds) NewEnforceCustomerSecurity() security.EnforceSecurityCustomer {
	return &security.EnforceSecurityCustomerImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases UsecasesWithCreds) NewEnforceBookingSecurity() security.EnforceSecurityBooking {
	return &security.EnforceSecurityBookingImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases UsecasesWithCreds) NewEnforceMenuSecurity() security.EnforceSecurityMenu {
	return &security.EnforceSecurityMenuImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases UsecasesWithCreds) NewEnforceUserSecurity() security.EnforceSecurityUser {
	return &security.EnforceSecurityUserImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases UsecasesWithCreds) NewEnforceDashboardSecurity() security.EnforceSecurityDashboard {
	return &security.EnforceSecurityDashboardImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases UsecasesWithCreds) NewEnforceNotificationSecurity() security.EnforceSecurityNotification {
	return &security.EnforceSecurityNotificationImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases UsecasesWithCreds) NewCarUsecase() CarUsecase {
	return CarUsecase{
		enforceSecurity:    usecases.NewEnforceCarSecurity(),
		transactionFactory: usecases.Repositories.ExecutorGetter,
		carRepository:      usecases.Repositories.RentalDbRepository,
	}
}

func (usecases UsecasesWithCreds) NewCustomerUsecase() CustomerUsecase {
	return CustomerUsecase{
		enforceSecurity:    usecases.NewEnforceCustomerSecurity(),
		transactionFactory: usecases.Repositories.ExecutorGetter,
		customerRepository: usecases.Repositories.RentalDbRepository,
		bookingRepository:  usecases.Repositories.RentalDbRepository,
	}
}

func (usecases UsecasesWithCreds) NewBookingUsecase() BookingUsecase {
	return BookingUsecase{
		enforceSecurity:    usecases.NewEnforceBookingSecurity(),
		transactionFactory: usecases.Repositories.ExecutorGetter,
		bookingRepository:  usecases.Repositories.RentalDbRepository,
		notifier:           usecases.newBookingNotifier(),
		clock:              usecases.Repositories.Clock,
		actorUserId:        usecases.Credentials.ActorIdentity.UserId,
		createdBy:          usecases.Credentials.ActorIdentity.Email,
	}
}

func (usecases UsecasesWithCreds) NewDashboardUsecase() DashboardUsecase {
	return DashboardUsecase{
		enforceSecurity:     usecases.NewEnforceDashboardSecurity(),
		executorFactory:     usecases.Repositories.ExecutorGetter,
		dashboardRepository: usecases.Repositories.RentalDbRepository,
		clock:               usecases.Repositories.Clock,
	}
}

func (usecases UsecasesWithCreds) NewMenuUsecase() MenuUsecase {
	return MenuUsecase{
		enforceSecurity:    usecases.NewEnforceMenuSecurity(),
		transactionFactory: usecases.Repositories.ExecutorGetter,
		menuRepository:     usecases.Repositories.RentalDbRepository,
		role:               usecases.Credentials.Role,
	}
}

func (usecases UsecasesWithCreds) NewUserUsecase() UserUsecase {
	return UserUsecase{
		enforceSecurity:    usecases.NewEnforceUserSecurity(),
		transactionFactory: usecases.Repositories.ExecutorGetter,
		userRepository:     usecases.Repositories.RentalDbRepository,
	}
}

func (usecases UsecasesWithCreds) NewNotificationUsecase() NotificationUsecase {
	return NotificationUsecase{
		enforceSecurity:        usecases.NewEnforceNotificationSecurity(),
		transactionFactory:     usecases.Repositories.ExecutorGetter,
		notificationRepository: usecases.Repositories.RentalDbRepository,
		userId:                 usecases.Credentials.ActorIdentity.UserId,
	}
}
