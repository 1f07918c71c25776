package mongo

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "kv_entries"

// Open conecta, hace ping y devuelve el cliente y la base elegida.
func Open(ctx context.Context, uri, database string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, errors.Wrap(err, "mongo: connect")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, errors.Wrap(err, "mongo: ping")
	}
	return client, client.Database(database), nil
}

type kvEntry struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// KV guarda un documento por key en la colección kv_entries.
type KV struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewKV(db *mongo.Database) *KV {
	return &KV{coll: db.Collection(collectionName), now: time.Now}
}

func (r *KV) Load(ctx context.Context, key string) ([]byte, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, nil
	}

	var e kvEntry
	if err := r.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&e); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "mongo: load %q", key)
	}
	return []byte(e.Value), nil
}

func (r *KV) Save(ctx context.Context, key string, value []byte) error {
	e := kvEntry{Key: key, Value: string(value), UpdatedAt: r.now().UTC()}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": key}, e, opts); err != nil {
		return errors.Wrapf(err, "mongo: save %q", key)
	}
	return nil
}
