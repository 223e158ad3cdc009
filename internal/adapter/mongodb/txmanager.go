package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// TxManager runs multi-document steps in a session transaction when the
// deployment supports them (replica set or sharded cluster). Against a
// standalone server it has no client and fn runs directly, so each write is
// atomic only on its own document.
type TxManager struct {
	client *mongo.Client
}

// NewTxManager creates a TxManager. A nil client gives the standalone
// behaviour.
func NewTxManager(client *mongo.Client) *TxManager {
	return &TxManager{client: client}
}

// Transactional reports whether RunInTx wraps fn in a transaction.
func (m *TxManager) Transactional() bool {
	return m.client != nil
}

// RunInTx executes fn within a transaction. A RunInTx inside a RunInTx
// callback joins the outer transaction. WithTransaction may call fn again on
// transient errors.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.client == nil || mongo.SessionFromContext(ctx) != nil {
		return fn(ctx)
	}

	sess, err := m.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(context.Background())

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc)
	})
	return err
}

// SupportsTransactions asks the server whether it is a replica set member
// or a mongos router.
func SupportsTransactions(ctx context.Context, client *mongo.Client) (bool, error) {
	var hello struct {
		SetName string `bson:"setName"`
		Msg     string `bson:"msg"`
	}
	err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "hello", Value: 1}}).Decode(&hello)
	if err != nil {
		return false, fmt.Errorf("mongodb: hello: %w", err)
	}
	return hello.SetName != "" || hello.Msg == "isdbgrid", nil
}
