package mongo

import (
	"context"
	"os"
	"testing"
	"time"

	"pet-friendly-stays/internal/domain/pets"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ pets.KeyValue = (*KV)(nil)

const testDatabase = "pet_friendly_stays_test"

// Necesita un mongo real: MONGO_TEST_URI=mongodb://localhost:27017 go test ./...
func openTestDB(t *testing.T) (*mongo.Client, *mongo.Database) {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	client, db, err := Open(context.Background(), uri, testDatabase)
	require.NoError(t, err)
	return client, db
}

func TestKV_LoadMissingThenSaveAndOverwrite(t *testing.T) {
	client, db := openTestDB(t)
	defer func() { _ = client.Disconnect(context.Background()) }()

	kv := NewKV(db)
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	kv.now = func() time.Time { return fixed }

	ctx := context.Background()
	key := "petProfiles:test-" + uuid.NewString()
	defer func() { _, _ = kv.coll.DeleteOne(ctx, bson.M{"_id": key}) }()

	raw, err := kv.Load(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, raw)

	require.NoError(t, kv.Save(ctx, key, []byte(`[{"id":"a"}]`)))
	require.NoError(t, kv.Save(ctx, key, []byte(`[]`)))

	raw, err = kv.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	// upsert: un solo documento por key
	n, err := kv.coll.CountDocuments(ctx, bson.M{"_id": key})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var e kvEntry
	require.NoError(t, kv.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&e))
	assert.True(t, e.UpdatedAt.Equal(fixed))
}

func TestKV_PetStoreSurvivesReopen(t *testing.T) {
	client, db := openTestDB(t)
	ctx := context.Background()
	key := pets.StorageKey("test-" + uuid.NewString())

	st := pets.OpenStore(ctx, NewKV(db), key, nil)
	created, err := st.Create(ctx, pets.CreateInput{
		Name:    "Dubu",
		Species: pets.SpeciesCat,
		Breed:   "persian",
		Age:     1,
		Weight:  3.1,
	})
	require.NoError(t, err)
	require.NoError(t, client.Disconnect(ctx))

	client2, db2 := openTestDB(t)
	defer func() { _ = client2.Disconnect(context.Background()) }()
	kv2 := NewKV(db2)
	defer func() { _, _ = kv2.coll.DeleteOne(ctx, bson.M{"_id": key}) }()

	items := pets.OpenStore(ctx, kv2, key, nil).List()
	require.Len(t, items, 1)
	assert.Equal(t, created, items[0])
	assert.Equal(t, pets.AgePuppy, items[0].AgeCategory())
}
