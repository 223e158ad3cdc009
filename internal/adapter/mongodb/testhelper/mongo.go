package testhelper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/heartmarshall/revision-planner-backend/internal/adapter/mongodb"
)

const replicaSet = "rs0"

var (
	once      sync.Once
	sharedURI string
	initErr   error
)

// SetupTestMongo starts a shared single-node replica set (once for the entire
// test run) and returns a fresh, indexed database that is dropped via
// t.Cleanup. Skipped under -short.
func SetupTestMongo(t *testing.T) *mongo.Database {
	t.Helper()

	if testing.Short() {
		t.Skip("testhelper: mongo container skipped in -short mode")
	}

	once.Do(func() {
		sharedURI, initErr = startContainer()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test mongo: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	name := "test_" + strings.ReplaceAll(uuid.NewString()[:13], "-", "")
	client, db, err := mongodb.Connect(ctx, sharedURI, name, 10*time.Second)
	if err != nil {
		t.Fatalf("testhelper: connect: %v", err)
	}

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := mongodb.EnsureIndexes(ctx, db, quiet); err != nil {
		t.Fatalf("testhelper: indexes: %v", err)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return db
}

func startContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		Cmd:          []string{"--replSet", replicaSet, "--bind_ip_all"},
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	uri := fmt.Sprintf("mongodb://%s:%s/?directConnection=true", host, port.Port())
	if err := initiateReplicaSet(ctx, uri); err != nil {
		return "", err
	}
	return uri, nil
}

// initiateReplicaSet turns the fresh node into a primary so sessions can run
// transactions against it.
func initiateReplicaSet(ctx context.Context, uri string) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	admin := client.Database("admin")
	cfg := bson.D{
		{Key: "_id", Value: replicaSet},
		{Key: "members", Value: bson.A{
			bson.D{{Key: "_id", Value: 0}, {Key: "host", Value: "localhost:27017"}},
		}},
	}
	if err := admin.RunCommand(ctx, bson.D{{Key: "replSetInitiate", Value: cfg}}).Err(); err != nil {
		return fmt.Errorf("replSetInitiate: %w", err)
	}

	for {
		var hello struct {
			IsWritablePrimary bool `bson:"isWritablePrimary"`
		}
		err := admin.RunCommand(ctx, bson.D{{Key: "hello", Value: 1}}).Decode(&hello)
		if err == nil && hello.IsWritablePrimary {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for primary: %w", ctx.Err())
		case <-time.After(200 * time.Millisecond):
		}
	}
}
