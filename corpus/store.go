// SPDX-License-Identifier: MIT
// Package: corpus
//
// store.go — SQL-backed recipe store.
//
// Schema (portable between SQLite and PostgreSQL):
//
//	recipes(id, title)
//	recipe_ingredient(recipe_id, ingredient)   PRIMARY KEY (recipe_id, ingredient)
//	recipe_tag(recipe_id, tag)                 PRIMARY KEY (recipe_id, tag)

package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx"
	_ "modernc.org/sqlite"             // registers "sqlite"
)

// Dialect selects placeholder syntax.
type Dialect int

const (
	// SQLite uses ? placeholders.
	SQLite Dialect = iota
	// Postgres uses $n placeholders.
	Postgres
)

// placeholder returns the n-th (1-based) bind parameter.
func (d Dialect) placeholder(n int) string {
	if d == Postgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// Store reads and writes recipes through database/sql.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// Open connects with driver "sqlite" (file path or ":memory:") or "pgx"
// (PostgreSQL URL).
func Open(driver, dsn string) (*Store, error) {
	var d Dialect
	switch driver {
	case "sqlite":
		d = SQLite
	case "pgx":
		d = Postgres
	default:
		return nil, fmt.Errorf("Open(%q): %w", driver, ErrUnknownDriver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("Open(%q): %w: %w", driver, ErrQuery, err)
	}
	if d == SQLite {
		// one connection keeps ":memory:" databases shared and writes serial
		db.SetMaxOpenConns(1)
	}
	return New(db, d), nil
}

// New wraps an existing handle.
func New(db *sql.DB, d Dialect) *Store {
	return &Store{db: db, dialect: d}
}

// Close closes the underlying handle.
func (s *Store) Close() error { return s.db.Close() }

var schema = []string{
	`CREATE TABLE IF NOT EXISTS recipes (
	id    BIGINT PRIMARY KEY,
	title TEXT NOT NULL DEFAULT ''
)`,
	`CREATE TABLE IF NOT EXISTS recipe_ingredient (
	recipe_id  BIGINT NOT NULL REFERENCES recipes (id) ON DELETE CASCADE,
	ingredient TEXT NOT NULL,
	PRIMARY KEY (recipe_id, ingredient)
)`,
	`CREATE TABLE IF NOT EXISTS recipe_tag (
	recipe_id BIGINT NOT NULL REFERENCES recipes (id) ON DELETE CASCADE,
	tag       TEXT NOT NULL,
	PRIMARY KEY (recipe_id, tag)
)`,
	`CREATE INDEX IF NOT EXISTS recipe_ingredient_name ON recipe_ingredient (ingredient)`,
	`CREATE INDEX IF NOT EXISTS recipe_tag_name ON recipe_tag (tag)`,
}

// Migrate creates the schema if missing.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("Migrate: %w: %w", ErrQuery, err)
		}
	}
	return nil
}

// Insert upserts recipes in one transaction. A recipe's title is replaced;
// ingredients and tags are added to those already stored.
func (s *Store) Insert(ctx context.Context, recipes ...Recipe) (err error) {
	for _, r := range recipes {
		if err := validate(r); err != nil {
			return fmt.Errorf("Insert: %w", err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Insert: %w: %w", ErrQuery, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	p := s.dialect.placeholder
	upsertRecipe := fmt.Sprintf(
		"INSERT INTO recipes (id, title) VALUES (%s, %s) ON CONFLICT (id) DO UPDATE SET title = excluded.title", p(1), p(2))
	addIngredient := fmt.Sprintf(
		"INSERT INTO recipe_ingredient (recipe_id, ingredient) VALUES (%s, %s) ON CONFLICT DO NOTHING", p(1), p(2))
	addTag := fmt.Sprintf(
		"INSERT INTO recipe_tag (recipe_id, tag) VALUES (%s, %s) ON CONFLICT DO NOTHING", p(1), p(2))

	for _, r := range recipes {
		if _, err = tx.ExecContext(ctx, upsertRecipe, r.ID, r.Title); err != nil {
			return fmt.Errorf("Insert: recipe %d: %w: %w", r.ID, ErrQuery, err)
		}
		for _, name := range normalize(r.Ingredients) {
			if _, err = tx.ExecContext(ctx, addIngredient, r.ID, name); err != nil {
				return fmt.Errorf("Insert: recipe %d: %w: %w", r.ID, ErrQuery, err)
			}
		}
		for _, tag := range normalize(r.Tags) {
			if _, err = tx.ExecContext(ctx, addTag, r.ID, tag); err != nil {
				return fmt.Errorf("Insert: recipe %d: %w: %w", r.ID, ErrQuery, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("Insert: %w: %w", ErrQuery, err)
	}
	return nil
}

// Recipes implements Source with one query: the filter becomes an
// INTERSECT of id subqueries.
func (s *Store) Recipes(ctx context.Context, f Filter) ([]Recipe, error) {
	query, args := s.recipesQuery(f)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("Recipes: %w: %w", ErrQuery, err)
	}
	defer rows.Close()

	var out []Recipe
	for rows.Next() {
		var (
			id         int64
			title      string
			ingredient sql.NullString
		)
		if err := rows.Scan(&id, &title, &ingredient); err != nil {
			return nil, fmt.Errorf("Recipes: %w: %w", ErrQuery, err)
		}
		if len(out) == 0 || out[len(out)-1].ID != id {
			out = append(out, Recipe{ID: id, Title: title})
		}
		if ingredient.Valid {
			last := &out[len(out)-1]
			last.Ingredients = append(last.Ingredients, ingredient.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Recipes: %w: %w", ErrQuery, err)
	}

	return out, nil
}

const selectRecipes = "SELECT r.id, r.title, ri.ingredient FROM recipes r " +
	"LEFT JOIN recipe_ingredient ri ON ri.recipe_id = r.id"

// recipesQuery renders the filtered query and its bind arguments. Subquery
// order is any-of, all-of, tag.
func (s *Store) recipesQuery(f Filter) (string, []any) {
	var (
		subs []string
		args []any
	)
	next := func(v string) string {
		args = append(args, v)
		return s.dialect.placeholder(len(args))
	}

	if len(f.AnyIngredients) > 0 {
		ps := make([]string, len(f.AnyIngredients))
		for k, name := range f.AnyIngredients {
			ps[k] = next(name)
		}
		subs = append(subs, "SELECT recipe_id FROM recipe_ingredient WHERE ingredient IN ("+strings.Join(ps, ", ")+")")
	}
	for _, name := range f.AllIngredients {
		subs = append(subs, "SELECT recipe_id FROM recipe_ingredient WHERE ingredient = "+next(name))
	}
	if f.Tag != "" {
		subs = append(subs, "SELECT recipe_id FROM recipe_tag WHERE tag = "+next(f.Tag))
	}

	var sb strings.Builder
	sb.WriteString(selectRecipes)
	if len(subs) > 0 {
		sb.WriteString(" WHERE r.id IN (")
		sb.WriteString(strings.Join(subs, " INTERSECT "))
		sb.WriteString(")")
	}
	sb.WriteString(" ORDER BY r.id, ri.ingredient")

	return sb.String(), args
}

// validate rejects empty ingredient and tag names.
func validate(r Recipe) error {
	for _, name := range r.Ingredients {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("recipe %d: empty ingredient: %w", r.ID, ErrInvalidRecipe)
		}
	}
	for _, tag := range r.Tags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("recipe %d: empty tag: %w", r.ID, ErrInvalidRecipe)
		}
	}
	return nil
}
