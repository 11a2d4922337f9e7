package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"main/config"
	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UsersRepo struct {
	MongoCollection *mongo.Collection
	Timeout         time.Duration
}

func GetUsersRepo(client *mongo.Client, cfg config.DatabaseConfig) *UsersRepo {
	return &UsersRepo{
		MongoCollection: client.Database(cfg.DatabaseName).Collection("users"),
		Timeout:         cfg.OperationTimeout,
	}
}

func (r *UsersRepo) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.Timeout)
}

// AddUser persists a new account. The unique indexes on username and email
// turn racing registrations into ErrDuplicate.
func (r *UsersRepo) AddUser(ctx context.Context, user *model.User) error {
	timer := utils.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	ctx, cancel := r.opContext(ctx)
	defer cancel()

	if _, err := r.MongoCollection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		utils.TrackError("database", "user_creation_failed")
		return fmt.Errorf("failed to add user: %w", err)
	}
	return nil
}

// FindByIdentifier looks up an account whose username or email equals the
// given identifier. Returns (nil, nil) when no account matches.
func (r *UsersRepo) FindByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	ctx, cancel := r.opContext(ctx)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"username": identifier},
		bson.M{"email": identifier},
	}}

	var user model.User
	err := r.MongoCollection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &user, nil
}

// FindByUsernameOrEmail finds an account colliding with either value.
// Returns (nil, nil) when both are free.
func (r *UsersRepo) FindByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	ctx, cancel := r.opContext(ctx)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}}

	var user model.User
	err := r.MongoCollection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &user, nil
}
