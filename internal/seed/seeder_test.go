package seed

import (
	"context"
	"errors"
	"testing"

	"athletic-store/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDocumentRepository is a mock implementation of DocumentRepository.
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) CreateDocument(ctx context.Context, collection string, doc model.Document) (string, error) {
	args := m.Called(ctx, collection, doc)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentRepository) GetDocuments(ctx context.Context, collection string, filter model.Document, limit int) ([]model.Document, error) {
	args := m.Called(ctx, collection, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentRepository) GetDocument(ctx context.Context, collection, id string) (model.Document, error) {
	args := m.Called(ctx, collection, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Document), args.Error(1)
}

func (m *MockDocumentRepository) ListCollectionNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDocumentRepository) Name() string                   { return m.Called().String(0) }
func (m *MockDocumentRepository) Ping(ctx context.Context) error  { return m.Called(ctx).Error(0) }
func (m *MockDocumentRepository) Close(ctx context.Context) error { return m.Called(ctx).Error(0) }

// mapLoader serves records keyed by path.
func mapLoader(files map[string][]string) Loader {
	return &mockLoader{loadFunc: func(ctx context.Context, path string) ([]Record, error) {
		lines, ok := files[path]
		if !ok {
			return nil, errors.New("file not found")
		}
		records := make([]Record, 0, len(lines))
		for i, line := range lines {
			records = append(records, Record{Line: i + 1, Data: []byte(line)})
		}
		return records, nil
	}}
}

func TestSeeder_Prepare(t *testing.T) {
	loader := mapLoader(map[string][]string{
		"a.gz": {
			`{"title":"Runner","price":100,"category":"Running"}`,
			`{"title":"Trainer","price":80,"category":"Training","featured":true}`,
		},
		"b.gz": {
			`{"title":"Spike","price":120,"category":"Track","rating":5}`,
		},
	})
	seeder := NewSeeder(loader, nil, zerolog.Nop())

	docs, err := seeder.Prepare(context.Background(), model.CollectionProduct, "a.gz", "b.gz")

	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "Runner", docs[0]["title"])
	assert.Equal(t, model.DefaultRating, docs[0]["rating"])
	assert.Equal(t, true, docs[1]["featured"])
	assert.Equal(t, "Spike", docs[2]["title"])
	assert.Equal(t, float64(5), docs[2]["rating"])
}

func TestSeeder_Prepare_Errors(t *testing.T) {
	loader := mapLoader(map[string][]string{
		"good.gz": {`{"name":"Trail","slug":"trail","image":"t.jpg"}`},
		"bad.gz": {
			`{"name":"Trail","slug":"trail","image":"t.jpg"}`,
			`{"name":"Court","image":"c.jpg"}`,
		},
		"junk.gz": {`not json`},
	})
	seeder := NewSeeder(loader, nil, zerolog.Nop())
	ctx := context.Background()

	tests := []struct {
		name        string
		collection  string
		paths       []string
		errContains string
		errIs       error
	}{
		{
			name:       "No files",
			collection: model.CollectionCollection,
			errIs:      ErrNoFiles,
		},
		{
			name:        "Unknown collection",
			collection:  "orders",
			paths:       []string{"good.gz"},
			errContains: "unknown collection",
		},
		{
			name:        "Missing file",
			collection:  model.CollectionCollection,
			paths:       []string{"good.gz", "missing.gz"},
			errContains: "failed to load seed file missing.gz",
		},
		{
			name:        "Invalid record reports file and line",
			collection:  model.CollectionCollection,
			paths:       []string{"good.gz", "bad.gz"},
			errContains: "bad.gz:2",
		},
		{
			name:        "Malformed JSON",
			collection:  model.CollectionCollection,
			paths:       []string{"junk.gz"},
			errContains: "junk.gz:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := seeder.Prepare(ctx, tt.collection, tt.paths...)

			require.Error(t, err)
			assert.Nil(t, docs)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
			}
			if tt.errContains != "" {
				assert.Contains(t, err.Error(), tt.errContains)
			}
		})
	}

	t.Run("Validation error is typed", func(t *testing.T) {
		_, err := seeder.Prepare(ctx, model.CollectionCollection, "bad.gz")
		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"body", "slug"}, verr.Fields[0].Loc)
	})
}

func TestSeeder_Seed(t *testing.T) {
	loader := mapLoader(map[string][]string{
		"athletes.gz": {
			`{"name":"Maya","sport":"Track","image":"m.jpg"}`,
			`{"name":"Leo","sport":"Basketball","image":"l.jpg","bio":"Guard"}`,
		},
	})
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockDocumentRepository)
		repo.On("CreateDocument", ctx, model.CollectionAthlete, mock.MatchedBy(func(doc model.Document) bool {
			return doc["name"] == "Maya"
		})).Return("id-1", nil).Once()
		repo.On("CreateDocument", ctx, model.CollectionAthlete, mock.MatchedBy(func(doc model.Document) bool {
			return doc["name"] == "Leo" && doc["bio"] == "Guard"
		})).Return("id-2", nil).Once()

		seeder := NewSeeder(loader, repo, zerolog.Nop())
		result, err := seeder.Seed(ctx, model.CollectionAthlete, "athletes.gz")

		require.NoError(t, err)
		assert.Equal(t, &Result{
			Collection: model.CollectionAthlete,
			Files:      1,
			Inserted:   2,
			IDs:        []string{"id-1", "id-2"},
		}, result)
		repo.AssertExpectations(t)
	})

	t.Run("Insert failure stops the run", func(t *testing.T) {
		repo := new(MockDocumentRepository)
		repo.On("CreateDocument", ctx, model.CollectionAthlete, mock.Anything).Return("id-1", nil).Once()
		repo.On("CreateDocument", ctx, model.CollectionAthlete, mock.Anything).Return("", errors.New("duplicate key")).Once()

		seeder := NewSeeder(loader, repo, zerolog.Nop())
		result, err := seeder.Seed(ctx, model.CollectionAthlete, "athletes.gz")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "record 2 of 2")
		require.NotNil(t, result)
		assert.Equal(t, 1, result.Inserted)
	})

	t.Run("Invalid file inserts nothing", func(t *testing.T) {
		repo := new(MockDocumentRepository)
		bad := mapLoader(map[string][]string{"athletes.gz": {`{"name":"Maya"}`}})

		seeder := NewSeeder(bad, repo, zerolog.Nop())
		_, err := seeder.Seed(ctx, model.CollectionAthlete, "athletes.gz")

		require.Error(t, err)
		repo.AssertNotCalled(t, "CreateDocument", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("No repository", func(t *testing.T) {
		seeder := NewSeeder(loader, nil, zerolog.Nop())
		_, err := seeder.Seed(ctx, model.CollectionAthlete, "athletes.gz")
		assert.ErrorIs(t, err, model.ErrDatabaseUnavailable)
	})
}
