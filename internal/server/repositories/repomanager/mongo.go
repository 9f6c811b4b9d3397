package repomanager

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/rwi001/Valentine-Funs/internal/server/repositories/payments"
	"github.com/rwi001/Valentine-Funs/internal/server/repositories/users"
)

type MongoRepositoryManager struct {
	client   *mongo.Client
	users    *users.MongoRepository
	payments *payments.MongoRepository
}

// NewMongoRepositoryManager connects and pings before returning, so a
// returned manager is known-reachable. Cancellation/timeout comes from ctx.
func NewMongoRepositoryManager(ctx context.Context, dsn string, dbName string) (*MongoRepositoryManager, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(dsn))
	if err != nil {
		return nil, fmt.Errorf("mongo connect error: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping error: %w", err)
	}

	db := client.Database(dbName)

	return &MongoRepositoryManager{
		client:   client,
		users:    users.NewMongoRepository(db.Collection("users")),
		payments: payments.NewMongoRepository(db.Collection("payments")),
	}, nil
}

func (m *MongoRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MongoRepositoryManager) Payments() payments.Repository {
	return m.payments
}

func (m *MongoRepositoryManager) Durable() bool {
	return true
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
