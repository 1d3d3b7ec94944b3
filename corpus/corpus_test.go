package corpus_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aujxn/recipe-analysis/cooccurrence"
	"github.com/aujxn/recipe-analysis/corpus"
)

func fixture() []corpus.Recipe {
	return []corpus.Recipe{
		{ID: 3, Title: "Aglio e olio", Tags: []string{"italian", "pasta"}, Ingredients: []string{"spaghetti", "garlic", "olive oil"}},
		{ID: 1, Title: "Caprese", Tags: []string{"italian"}, Ingredients: []string{"tomato", "basil", "mozzarella", "basil"}},
		{ID: 2, Title: "Pesto", Tags: []string{"sauce"}, Ingredients: []string{"basil", "garlic", "olive oil", "pine nuts"}},
		{ID: 4, Title: "Water", Tags: []string{"italian"}},
	}
}

func filterCases() []struct {
	name   string
	filter corpus.Filter
	ids    []int64
} {
	return []struct {
		name   string
		filter corpus.Filter
		ids    []int64
	}{
		{"everything", corpus.Filter{}, []int64{1, 2, 3, 4}},
		{"tag", corpus.Filter{Tag: "italian"}, []int64{1, 3, 4}},
		{"all of", corpus.Filter{AllIngredients: []string{"garlic", "olive oil"}}, []int64{2, 3}},
		{"any of", corpus.Filter{AnyIngredients: []string{"tomato", "pine nuts"}}, []int64{1, 2}},
		{"intersect", corpus.Filter{Tag: "italian", AnyIngredients: []string{"basil", "garlic"}}, []int64{1, 3}},
		{"nothing", corpus.Filter{Tag: "dessert"}, nil},
	}
}

func ids(recipes []corpus.Recipe) []int64 {
	var out []int64
	for _, r := range recipes {
		out = append(out, r.ID)
	}
	return out
}

func openSQLite(t *testing.T) *corpus.Store {
	t.Helper()
	s, err := corpus.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	require.NoError(t, s.Insert(context.Background(), fixture()...))
	return s
}

func TestStore_SQLiteFilters(t *testing.T) {
	s := openSQLite(t)
	for _, tc := range filterCases() {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.Recipes(context.Background(), tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.ids, ids(got))
		})
	}
}

func TestStore_SQLiteShape(t *testing.T) {
	s := openSQLite(t)

	got, err := s.Recipes(context.Background(), corpus.Filter{})
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, corpus.Recipe{ID: 1, Title: "Caprese", Ingredients: []string{"basil", "mozzarella", "tomato"}}, got[0])
	assert.Empty(t, got[3].Ingredients)

	// upsert replaces the title and adds ingredients
	require.NoError(t, s.Insert(context.Background(), corpus.Recipe{ID: 1, Title: "Insalata caprese", Ingredients: []string{"olive oil"}}))
	got, err = s.Recipes(context.Background(), corpus.Filter{AllIngredients: []string{"tomato"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Insalata caprese", got[0].Title)
	assert.Equal(t, []string{"basil", "mozzarella", "olive oil", "tomato"}, got[0].Ingredients)

	// Migrate is idempotent
	require.NoError(t, s.Migrate(context.Background()))
}

func TestStore_InsertRejectsEmptyNames(t *testing.T) {
	s := openSQLite(t)
	err := s.Insert(context.Background(), corpus.Recipe{ID: 9, Ingredients: []string{"salt", " "}})
	require.ErrorIs(t, err, corpus.ErrInvalidRecipe)

	got, err := s.Recipes(context.Background(), corpus.Filter{AnyIngredients: []string{"salt"}})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := corpus.Open("oracle", "")
	require.ErrorIs(t, err, corpus.ErrUnknownDriver)
}

func TestStore_PostgresQueryShape(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	s := corpus.New(db, corpus.Postgres)

	want := "SELECT r.id, r.title, ri.ingredient FROM recipes r " +
		"LEFT JOIN recipe_ingredient ri ON ri.recipe_id = r.id " +
		"WHERE r.id IN (" +
		"SELECT recipe_id FROM recipe_ingredient WHERE ingredient IN ($1, $2) INTERSECT " +
		"SELECT recipe_id FROM recipe_ingredient WHERE ingredient = $3 INTERSECT " +
		"SELECT recipe_id FROM recipe_tag WHERE tag = $4) " +
		"ORDER BY r.id, ri.ingredient"
	mock.ExpectQuery(regexp.QuoteMeta(want)).
		WithArgs("basil", "garlic", "olive oil", "italian").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "ingredient"}).
			AddRow(int64(3), "Aglio e olio", "garlic").
			AddRow(int64(3), "Aglio e olio", "olive oil").
			AddRow(int64(5), "Bare", nil))

	got, err := s.Recipes(context.Background(), corpus.Filter{
		Tag:            "italian",
		AllIngredients: []string{"olive oil"},
		AnyIngredients: []string{"basil", "garlic"},
	})
	require.NoError(t, err)
	assert.Equal(t, []corpus.Recipe{
		{ID: 3, Title: "Aglio e olio", Ingredients: []string{"garlic", "olive oil"}},
		{ID: 5, Title: "Bare"},
	}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_QueryErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	s := corpus.New(db, corpus.Postgres)

	mock.ExpectQuery("SELECT r.id").WillReturnError(errors.New("connection reset"))
	_, err = s.Recipes(context.Background(), corpus.Filter{})
	require.ErrorIs(t, err, corpus.ErrQuery)

	mock.ExpectQuery("SELECT r.id").WillReturnRows(
		sqlmock.NewRows([]string{"id", "title", "ingredient"}).
			AddRow(int64(1), "x", "salt").
			RowError(0, errors.New("stream broke")))
	_, err = s.Recipes(context.Background(), corpus.Filter{})
	require.ErrorIs(t, err, corpus.ErrQuery)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS recipes")).WillReturnError(sql.ErrConnDone)
	require.ErrorIs(t, s.Migrate(context.Background()), corpus.ErrQuery)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_InsertRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	s := corpus.New(db, corpus.Postgres)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO recipes (id, title) VALUES ($1, $2)")).
		WithArgs(int64(7), "Toast").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO recipe_ingredient (recipe_id, ingredient) VALUES ($1, $2)")).
		WithArgs(int64(7), "bread").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err = s.Insert(context.Background(), corpus.Recipe{ID: 7, Title: "Toast", Ingredients: []string{"bread"}})
	require.ErrorIs(t, err, corpus.ErrQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

const yamlCorpus = `recipes:
  - id: 3
    title: Aglio e olio
    tags: [italian, pasta]
    ingredients: [spaghetti, garlic, olive oil]
  - id: 1
    title: Caprese
    tags: [italian]
    ingredients: [tomato, basil, mozzarella, basil]
  - id: 2
    title: Pesto
    tags: [sauce]
    ingredients: [basil, garlic, olive oil, pine nuts]
  - id: 4
    title: Water
    tags: [italian]
`

func TestFileSource_MatchesStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlCorpus), 0o644))
	src, err := corpus.LoadFile(path)
	require.NoError(t, err)
	store := openSQLite(t)

	for _, tc := range filterCases() {
		t.Run(tc.name, func(t *testing.T) {
			fromFile, err := src.Recipes(context.Background(), tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.ids, ids(fromFile))

			fromStore, err := store.Recipes(context.Background(), tc.filter)
			require.NoError(t, err)
			require.Len(t, fromFile, len(fromStore))
			for k := range fromFile {
				assert.Equal(t, fromStore[k].Title, fromFile[k].Title)
				assert.ElementsMatch(t, fromStore[k].Ingredients, fromFile[k].Ingredients)
			}
		})
	}
}

func TestReadYAML_Errors(t *testing.T) {
	tests := map[string]string{
		"duplicate id":  "recipes:\n  - id: 1\n  - id: 1\n",
		"empty name":    "recipes:\n  - id: 1\n    ingredients: [\"\"]\n",
		"unknown field": "recipes:\n  - id: 1\n    servings: 4\n",
		"not yaml":      "recipes: [",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := corpus.ReadYAML(strings.NewReader(input))
			require.ErrorIs(t, err, corpus.ErrMalformedFile)
		})
	}

	got, err := corpus.ReadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = corpus.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, corpus.ErrIO)
}

func TestToCooccurrence(t *testing.T) {
	got := corpus.ToCooccurrence(corpus.FilterRecipes(fixture(), corpus.Filter{Tag: "sauce"}))
	assert.Equal(t, []cooccurrence.Recipe{
		{ID: 2, Ingredients: []string{"basil", "garlic", "olive oil", "pine nuts"}},
	}, got)
}
