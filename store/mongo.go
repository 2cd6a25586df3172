// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/danielhkuo/votingbooth/models"
)

// Collection names
const (
	candidatesCollection = "candidates"
	votersCollection     = "voters"
)

type candidateDoc struct {
	Name string `bson:"name"`
}

type ballotDoc struct {
	Name string `bson:"name"`
}

// Ballot has no omitempty: unvoted voters store an explicit null
type voterDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Name   string             `bson:"name"`
	Ballot *ballotDoc         `bson:"ballot"`
}

type tallyDoc struct {
	Name  string `bson:"_id"`
	Count int    `bson:"count"`
}

// MongoStore keeps candidates and voters as documents in one database
type MongoStore struct {
	client     *mongo.Client
	candidates *mongo.Collection
	voters     *mongo.Collection
}

// OpenMongo connects to uri, verifies the connection and makes sure voter
// names are unique.
func OpenMongo(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	s := NewMongoStore(client.Database(dbName))
	if err := s.EnsureIndexes(ctx); err != nil {
		client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		client:     db.Client(),
		candidates: db.Collection(candidatesCollection),
		voters:     db.Collection(votersCollection),
	}
}

// EnsureIndexes creates the unique indexes on candidate and voter names
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	unique := func() mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		}
	}
	if _, err := s.voters.Indexes().CreateOne(ctx, unique()); err != nil {
		return fmt.Errorf("failed to create voter index: %w", err)
	}
	if _, err := s.candidates.Indexes().CreateOne(ctx, unique()); err != nil {
		return fmt.Errorf("failed to create candidate index: %w", err)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) ListCandidates(ctx context.Context) ([]models.Candidate, error) {
	docs, err := s.findCandidates(ctx)
	if err != nil {
		return nil, serviceError("list candidates", err)
	}

	candidates := make([]models.Candidate, 0, len(docs))
	for _, d := range docs {
		candidates = append(candidates, models.Candidate{Name: d.Name})
	}
	return candidates, nil
}

// ListCandidateTallies groups voters by ballot in one aggregation and joins
// the counts onto the sorted candidate list.
func (s *MongoStore) ListCandidateTallies(ctx context.Context) ([]models.CandidateTally, error) {
	docs, err := s.findCandidates(ctx)
	if err != nil {
		return nil, serviceError("list candidate tallies", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "ballot.name", Value: bson.D{{Key: "$ne", Value: nil}}}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$ballot.name"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cursor, err := s.voters.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, serviceError("list candidate tallies", err)
	}
	var counts []tallyDoc
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, serviceError("list candidate tallies", err)
	}

	byName := make(map[string]int, len(counts))
	for _, c := range counts {
		byName[c.Name] = c.Count
	}

	tallies := make([]models.CandidateTally, 0, len(docs))
	for _, d := range docs {
		tallies = append(tallies, models.CandidateTally{Name: d.Name, VoteCount: byName[d.Name]})
	}
	return tallies, nil
}

func (s *MongoStore) SeedCandidates(ctx context.Context, names []string) error {
	for _, name := range names {
		_, err := s.candidates.UpdateOne(ctx,
			bson.D{{Key: "name", Value: name}},
			bson.D{{Key: "$setOnInsert", Value: bson.D{{Key: "name", Value: name}}}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return serviceError("seed candidates", err)
		}
	}
	return nil
}

func (s *MongoStore) CreateVoter(ctx context.Context, name string) (models.InsertResult, error) {
	res, err := s.voters.InsertOne(ctx, voterDoc{Name: name})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.InsertResult{}, ErrDuplicateName
		}
		return models.InsertResult{}, serviceError("create voter", err)
	}

	var id string
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		id = oid.Hex()
	}
	return models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (s *MongoStore) ListVoters(ctx context.Context) ([]models.Voter, error) {
	cursor, err := s.voters.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, serviceError("list voters", err)
	}
	var docs []voterDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, serviceError("list voters", err)
	}

	voters := make([]models.Voter, 0, len(docs))
	for _, d := range docs {
		v := models.Voter{Name: d.Name}
		if d.Ballot != nil {
			v.Ballot = &models.Ballot{Name: d.Ballot.Name}
		}
		voters = append(voters, v)
	}
	return voters, nil
}

func (s *MongoStore) CastVote(ctx context.Context, name, candidate string) (models.UpdateResult, error) {
	res, err := s.voters.UpdateOne(ctx,
		bson.D{{Key: "name", Value: name}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "ballot", Value: ballotDoc{Name: candidate}}}}},
	)
	if err != nil {
		return models.UpdateResult{}, serviceError("cast vote", err)
	}

	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func (s *MongoStore) RemoveVoter(ctx context.Context, name string) (models.DeleteResult, error) {
	res, err := s.voters.DeleteOne(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return models.DeleteResult{}, serviceError("remove voter", err)
	}

	return models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func (s *MongoStore) findCandidates(ctx context.Context) ([]candidateDoc, error) {
	cursor, err := s.candidates.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []candidateDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
