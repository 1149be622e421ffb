package repository

import (
	"account-service/pkg/database"
	"account-service/pkg/utils"

	"go.uber.org/zap"
)

type Repository struct {
	User UserRepository
}

func NewRepository(db *database.DB, config *utils.Config, log *zap.Logger) *Repository {
	return &Repository{
		User: NewUserRepository(db.Collection(config.Mongo.UsersCollection), log),
	}
}
