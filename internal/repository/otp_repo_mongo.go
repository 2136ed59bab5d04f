package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"admin-auth/internal/domain"
)

// OTPCollection es la colección que guarda los códigos pendientes.
const OTPCollection = "otp_codes"

// MongoOTPRepository implementa OTPRepository sobre una colección de MongoDB.
type MongoOTPRepository struct {
	codes *mongo.Collection
}

func NewMongoOTPRepository(db *mongo.Database) *MongoOTPRepository {
	return &MongoOTPRepository{codes: db.Collection(OTPCollection)}
}

func (r *MongoOTPRepository) Insert(ctx context.Context, code domain.OneTimeCode) error {
	if _, err := r.codes.InsertOne(ctx, code); err != nil {
		return fmt.Errorf("insert otp record: %w", err)
	}
	return nil
}

func (r *MongoOTPRepository) FindByEmailAndHash(ctx context.Context, email, codeHash string) (domain.OneTimeCode, error) {
	var c domain.OneTimeCode
	filter := bson.M{"email": email, "code_hash": codeHash}
	err := r.codes.FindOne(ctx, filter).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.OneTimeCode{}, ErrNotFound
		}
		return domain.OneTimeCode{}, fmt.Errorf("find otp record: %w", err)
	}
	return c, nil
}

func (r *MongoOTPRepository) DeleteAllForEmail(ctx context.Context, email string) (int64, error) {
	res, err := r.codes.DeleteMany(ctx, bson.M{"email": email})
	if err != nil {
		return 0, fmt.Errorf("delete otp records: %w", err)
	}
	return res.DeletedCount, nil
}
