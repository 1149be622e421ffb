package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"account-service/internal/data/entity"
	"account-service/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User, password string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByName(ctx context.Context, firstName, lastName string) (*entity.User, error)
	ApplyFields(ctx context.Context, user *entity.User, fields map[string]any) (*entity.User, error)
	Update(ctx context.Context, user *entity.User, update *entity.UserUpdate) (*entity.User, error)
}

type userRepository struct {
	collection *mongo.Collection
	log        *zap.Logger
}

func NewUserRepository(collection *mongo.Collection, log *zap.Logger) UserRepository {
	return &userRepository{
		collection: collection,
		log:        log,
	}
}

// Create hashes the password, fills the store-owned fields and inserts the
// document. A duplicate name pair is rejected by the unique index as ErrConflict.
func (ur *userRepository) Create(ctx context.Context, user *entity.User, password string) (*entity.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		ur.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user.ID = utils.GenerateUserID()
	user.HashedPass = hashedPassword
	user.IsActive = false
	user.CreatedAt = time.Now()
	user.LastLogin = nil

	if _, err := ur.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrConflict
		}
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("first_name", user.FirstName),
			zap.String("last_name", user.LastName),
		)
		return nil, fmt.Errorf("create user %s %s: %w", user.FirstName, user.LastName, err)
	}

	return user, nil
}

func (ur *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := ur.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id, err)
	}

	return &user, nil
}

func (ur *userRepository) FindByName(ctx context.Context, firstName, lastName string) (*entity.User, error) {
	filter := bson.M{
		"first_name": firstName,
		"last_name":  lastName,
	}

	var user entity.User
	err := ur.collection.FindOne(ctx, filter).Decode(&user)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		ur.log.Error("Failed to find user by name",
			zap.Error(err),
			zap.String("first_name", firstName),
			zap.String("last_name", lastName),
		)
		return nil, fmt.Errorf("find user by name %s %s: %w", firstName, lastName, err)
	}

	return &user, nil
}

// ApplyFields writes exactly the given fields in one atomic $set and returns
// the post-update document. Used for last_login stamps and activation flips,
// which never need a uniqueness re-check.
func (ur *userRepository) ApplyFields(ctx context.Context, user *entity.User, fields map[string]any) (*entity.User, error) {
	return ur.findOneAndSet(ctx, user.ID, fields)
}

// Update merges only the fields present in update. A new password is re-hashed
// before it is written.
func (ur *userRepository) Update(ctx context.Context, user *entity.User, update *entity.UserUpdate) (*entity.User, error) {
	fields := map[string]any{}

	if update.FirstName != nil {
		fields["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		fields["last_name"] = *update.LastName
	}
	if update.Role != nil {
		fields["role"] = entity.UserRole(*update.Role)
	}
	if update.Password != nil {
		hashedPassword, err := utils.HashPassword(*update.Password)
		if err != nil {
			ur.log.Error("Failed to hash password", zap.Error(err), zap.String("user_id", user.ID))
			return nil, fmt.Errorf("hash password: %w", err)
		}
		fields["hashed_pass"] = hashedPassword
	}

	if len(fields) == 0 {
		return user, nil
	}

	return ur.findOneAndSet(ctx, user.ID, fields)
}

func (ur *userRepository) findOneAndSet(ctx context.Context, id string, fields map[string]any) (*entity.User, error) {
	set := bson.M{}
	for field, value := range fields {
		set[field] = value
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated entity.User
	err := ur.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		opts,
	).Decode(&updated)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrConflict
		}
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", id),
		)
		return nil, fmt.Errorf("update user %s: %w", id, err)
	}

	return &updated, nil
}
