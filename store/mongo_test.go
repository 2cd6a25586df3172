// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create voter", func(mt *mtest.T) {
		s := NewMongoStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		res, err := s.CreateVoter(ctx, "Alice")
		if err != nil {
			mt.Fatalf("CreateVoter: %v", err)
		}
		if !res.Acknowledged || res.InsertedID == "" {
			mt.Errorf("unexpected insert result: %+v", res)
		}
	})

	mt.Run("create duplicate voter", func(mt *mtest.T) {
		s := NewMongoStore(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := s.CreateVoter(ctx, "Alice")
		if !errors.Is(err, ErrDuplicateName) {
			mt.Errorf("expected ErrDuplicateName, got %v", err)
		}
	})

	mt.Run("create voter server error", func(mt *mtest.T) {
		s := NewMongoStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "bad value",
		}))

		_, err := s.CreateVoter(ctx, "Alice")
		var svcErr *ServiceError
		if !errors.As(err, &svcErr) {
			mt.Errorf("expected ServiceError, got %v", err)
		}
	})

	mt.Run("list voters", func(mt *mtest.T) {
		s := NewMongoStore(mt.DB)
		ns := mt.DB.Name() + "." + votersCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "name", Value: "Alice"}, {Key: "ballot", Value: nil}},
			bson.D{{Key: "name", Value: "Dave"}, {Key: "ballot", Value: bson.D{{Key: "name", Value: "Bob"}}}},
		))

		voters, err := s.ListVoters(ctx)
		if err != nil {
			mt.Fatalf("ListVoters: %v", err)
		}
		if len(voters) != 2 {
			mt.Fatalf("expected 2 voters, got %d", len(voters))
		}
		if voters[0].Name != "Alice" || voters[0].Ballot != nil {
			mt.Errorf("unexpected first voter: %+v", voters[0])
		}
		if voters[1].Ballot == nil || voters[1].Ballot.Name != "Bob" {
			mt.Errorf("unexpected second voter: %+v", voters[1])
		}
	})

	mt.Run("list candidate tallies", func(mt *mtest.T) {
		s := NewMongoStore(mt.DB)
		candidatesNS := mt.DB.Name() + "." + candidatesCollection
		votersNS := mt.DB.Name() + "." + votersCollection
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, candidatesNS, mtest.FirstBatch,
				bson.D{{Key: "name", Value: "Bob"}},
				bson.D{{Key: "name", Value: "Carol"}},
			),
			mtest.CreateCursorResponse(0, votersNS, mtest.FirstBatch,
				bson.D{{Key: "_id", Value: "Bob"}, {Key: "count", Value: int32(2)}},
				bson.D{{Key: "_id", Value: "Zed"}, {Key: "count", Value: int32(1)}},
			),
		)

		tallies, err := s.ListCandidateTallies(ctx)
		if err != nil {
			mt.Fatalf("ListCandidateTallies: %v", err)
		}
		if len(tallies) != 2 {
			mt.Fatalf("expected 2 tallies, got %+v", tallies)
		}
		if tallies[0].Name != "Bob" || tallies[0].VoteCount != 2 {
			mt.Errorf("unexpected Bob tally: %+v", tallies[0])
		}
		if tallies[1].Name != "Carol" || tallies[1].VoteCount != 0 {
			mt.Errorf("unexpected Carol tally: %+v", tallies[1])
		}
	})

	mt.Run("cast vote", func(mt *mtest.T) {
		s := NewMongoStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		res, err := s.CastVote(ctx, "Alice", "Bob")
		if err != nil {
			mt.Fatalf("CastVote: %v", err)
		}
		if res.MatchedCount != 1 || res.ModifiedCount != 1 {
			mt.Errorf("unexpected update result: %+v", res)
		}
	})

	mt.Run("cast vote unknown voter", func(mt *mtest.T) {
		s := NewMongoStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		res, err := s.CastVote(ctx, "Nobody", "Bob")
		if err != nil {
			mt.Fatalf("CastVote: %v", err)
		}
		if res.MatchedCount != 0 || res.ModifiedCount != 0 {
			mt.Errorf("unexpected update result: %+v", res)
		}
	})

	mt.Run("remove voter", func(mt *mtest.T) {
		s := NewMongoStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		res, err := s.RemoveVoter(ctx, "Alice")
		if err != nil {
			mt.Fatalf("RemoveVoter: %v", err)
		}
		if res.DeletedCount != 1 {
			mt.Errorf("expected 1 deleted, got %d", res.DeletedCount)
		}
	})
}
