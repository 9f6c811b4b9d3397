package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rwi001/Valentine-Funs/internal/common"
	"github.com/rwi001/Valentine-Funs/internal/server/models"
)

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

func (r *MongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}

	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: find user: %v", common.ErrorStorage, err)
	}

	return user, nil
}

func (r *MongoRepository) Upsert(ctx context.Context, email string, patch Patch) (*models.User, error) {
	set := bson.M{}
	unset := bson.M{}

	if patch.Code != nil {
		set["otp"] = *patch.Code
	}
	if patch.CodeExpires != nil {
		set["otpExpires"] = *patch.CodeExpires
	}
	if patch.Verified != nil {
		set["isVerified"] = *patch.Verified
	}
	if patch.PaymentStatus != nil {
		set["paymentStatus"] = *patch.PaymentStatus
	}
	if patch.ClearCode {
		unset["otp"] = ""
		unset["otpExpires"] = ""
	}

	// Defaults apply only on insert; keys must not collide with $set.
	onInsert := bson.M{
		"email":     email,
		"createdAt": time.Now().UTC(),
	}
	if patch.Verified == nil {
		onInsert["isVerified"] = false
	}
	if patch.PaymentStatus == nil {
		onInsert["paymentStatus"] = models.PaymentStatusPending
	}

	update := bson.M{"$setOnInsert": onInsert}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	user := &models.User{}
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"email": email}, update, opts).Decode(user)
	if err != nil {
		return nil, fmt.Errorf("%w: upsert user: %v", common.ErrorStorage, err)
	}

	return user, nil
}
