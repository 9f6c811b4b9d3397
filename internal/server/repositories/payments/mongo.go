package payments

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rwi001/Valentine-Funs/internal/common"
	"github.com/rwi001/Valentine-Funs/internal/server/models"
)

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

func (r *MongoRepository) Create(ctx context.Context, payment *models.Payment) error {
	if payment.Date.IsZero() {
		payment.Date = time.Now().UTC()
	}

	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("%w: insert payment: %v", common.ErrorStorage, err)
	}

	return nil
}
