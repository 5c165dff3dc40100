package store

import (
	"context"
	stderrors "errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/kundali/pkg/errors"
)

// DefaultCollection is the MongoDB collection holding profiles.
const DefaultCollection = "profiles"

// MongoStore keeps profiles in a MongoDB collection, one document per profile
// with the profile ID as _id.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
	owned  bool
}

// NewMongoStore connects to uri and uses database's profiles collection.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetConnectTimeout(10*time.Second))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "ping mongodb")
	}
	s := NewMongoStoreFromCollection(client.Database(database).Collection(DefaultCollection))
	s.client, s.owned = client, true
	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

// NewMongoStoreFromCollection wraps an existing collection. Close does not
// disconnect the caller's client.
func NewMongoStoreFromCollection(coll *mongo.Collection) *MongoStore {
	return &MongoStore{client: coll.Database().Client(), coll: coll}
}

func (s *MongoStore) ensureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create profile index")
	}
	return nil
}

func (s *MongoStore) Save(ctx context.Context, p Profile) (Profile, error) {
	p, err := prepare(p, time.Now())
	if err != nil {
		return Profile{}, err
	}
	_, err = s.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, p, options.Replace().SetUpsert(true))
	if err != nil {
		return Profile{}, errors.Wrap(errors.ErrCodeInternal, err, "save profile %s", p.ID)
	}
	return p, nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (Profile, error) {
	if err := errors.ValidateProfileID(id); err != nil {
		return Profile{}, err
	}
	var p Profile
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return Profile{}, notFound(id)
	}
	if err != nil {
		return Profile{}, errors.Wrap(errors.ErrCodeInternal, err, "load profile %s", id)
	}
	return p, nil
}

func (s *MongoStore) List(ctx context.Context) ([]Profile, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}})
	cur, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list profiles")
	}
	out := []Profile{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode profiles")
	}
	return out, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if err := errors.ValidateProfileID(id); err != nil {
		return err
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "delete profile %s", id)
	}
	if res.DeletedCount == 0 {
		return notFound(id)
	}
	return nil
}

// Close disconnects the client if the store created it.
func (s *MongoStore) Close(ctx context.Context) error {
	if !s.owned {
		return nil
	}
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
