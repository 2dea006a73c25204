package migration

import (
	"courtside/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every model the gorm strategy manages. The users
// table is included so local development works without the identity service;
// in production it already exists.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.InquiryModel{},
		&models.InquiryAssignmentModel{},
		&models.OwnerMessageModel{},
		&models.AssignmentMessageModel{},
		&models.InquiryCategoryModel{},
		&models.InquiryCategoryDisplayNameModel{},
	}
}
