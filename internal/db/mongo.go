package db

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotConnected = errors.New("mongo: not connected")

type Collections struct {
	FAQs               *mongo.Collection
	Projects           *mongo.Collection
	WelcomeNotes       *mongo.Collection
	ContactSubmissions *mongo.Collection
}

// Provider owns the process-wide client. EnsureConnected may be called from
// any goroutine; only the first successful call dials.
type Provider struct {
	uri    string
	dbName string

	mu     sync.Mutex
	client *mongo.Client
	cols   *Collections
}

func NewProvider(uri, dbName string) *Provider {
	return &Provider{uri: uri, dbName: dbName}
}

func (p *Provider) EnsureConnected(ctx context.Context) (*Collections, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cols != nil {
		return p.cols, nil
	}

	client, cols, err := Connect(ctx, p.uri, p.dbName)
	if err != nil {
		return nil, err
	}
	p.client = client
	p.cols = cols
	return cols, nil
}

func (p *Provider) Ping(ctx context.Context) error {
	p.mu.Lock()
	client := p.client
	p.mu.Unlock()

	if client == nil {
		return ErrNotConnected
	}
	return client.Ping(ctx, nil)
}

func (p *Provider) Disconnect(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client == nil {
		return nil
	}
	err := p.client.Disconnect(ctx)
	p.client = nil
	p.cols = nil
	return err
}

func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *Collections, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	db := client.Database(dbName)

	cols := &Collections{
		FAQs:               db.Collection("faqs"),
		Projects:           db.Collection("projects"),
		WelcomeNotes:       db.Collection("welcome_notes"),
		ContactSubmissions: db.Collection("contact_submissions"),
	}

	return client, cols, nil
}

func EnsureIndexes(ctx context.Context, cols *Collections) error {
	indexTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := cols.FAQs.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "order", Value: 1}}},
		{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "order", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = cols.Projects.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "projectNumber", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "featured", Value: -1}, {Key: "order", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = cols.WelcomeNotes.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return err
	}

	_, err = cols.ContactSubmissions.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{Keys: bson.D{{Key: "formType", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return err
	}

	return nil
}
