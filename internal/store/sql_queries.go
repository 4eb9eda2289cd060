// SPDX-License-Identifier: Apache-2.0

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/echosell-api/models"
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// dollar placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Column lists shared by static queries and squirrel builders. Order matters:
// every scan of a full row follows these lists.
var (
	userColumns = []string{
		"id",
		"username",
		"email",
		"full_name",
		"hashed_password",
		"is_active",
		"is_superuser",
		"created_at",
		"updated_at",
	}

	itemColumns = []string{
		"id",
		"title",
		"description",
		"owner_id",
		"is_completed",
		"created_at",
		"updated_at",
	}
)

const (
	createUser = `INSERT INTO users (username, email, full_name, hashed_password)
	VALUES ($1, $2, $3, $4)
	RETURNING id, username, email, full_name, hashed_password, is_active, is_superuser, created_at, updated_at;`

	getUserByID = `SELECT id, username, email, full_name, hashed_password, is_active, is_superuser, created_at, updated_at
	FROM users
	WHERE id = $1;`

	findUserByUsername = `SELECT id, username, email, full_name, hashed_password, is_active, is_superuser, created_at, updated_at
	FROM users
	WHERE username = $1;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	countUsers = `SELECT count(*) FROM users;`

	createItem = `INSERT INTO items (title, description, owner_id)
	VALUES ($1, $2, $3)
	RETURNING id, title, description, owner_id, is_completed, created_at, updated_at;`

	getItemByID = `SELECT id, title, description, owner_id, is_completed, created_at, updated_at
	FROM items
	WHERE id = $1;`

	deleteItem = `DELETE FROM items WHERE id = $1;`

	countItems = `SELECT count(*) FROM items;`

	countItemsByOwner = `SELECT count(*) FROM items WHERE owner_id = $1;`
)

// buildUserExistsQuery builds a count query checking whether any user other
// than excludeID holds the given value in column. excludeID = 0 matches all
// rows since ids start at 1.
func buildUserExistsQuery(column, value string, excludeID int64) (string, []any, error) {
	return psql.Select("count(*)").
		From("users").
		Where(sq.Eq{column: value}).
		Where(sq.NotEq{"id": excludeID}).
		ToSql()
}

// buildListUsersQuery builds one page of the user listing, ordered by
// descending id so the most recently created accounts come first.
func buildListUsersQuery(offset, limit int) (string, []any, error) {
	return psql.Select(userColumns...).
		From("users").
		OrderBy("id DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
}

// buildUserUpdateQuery builds a partial UPDATE from the set fields of patch.
// updated_at always advances. The statement returns the canonical row.
//
// Returns ErrNothingToUpdate when the patch is empty.
func buildUserUpdateQuery(id int64, patch models.UserUpdate) (string, []any, error) {
	if patch.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	qb := psql.Update("users").Set("updated_at", sq.Expr("now()"))

	if patch.Username != nil {
		qb = qb.Set("username", *patch.Username)
	}
	if patch.Email != nil {
		qb = qb.Set("email", *patch.Email)
	}
	if patch.FullName != nil {
		qb = qb.Set("full_name", *patch.FullName)
	}
	if patch.IsActive != nil {
		qb = qb.Set("is_active", *patch.IsActive)
	}

	return qb.Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, username, email, full_name, hashed_password, is_active, is_superuser, created_at, updated_at").
		ToSql()
}

// buildListItemsQuery builds one page of the item listing. A zero ownerID
// lists items of all owners.
func buildListItemsQuery(ownerID int64, offset, limit int) (string, []any, error) {
	qb := psql.Select(itemColumns...).
		From("items")

	if ownerID != 0 {
		qb = qb.Where(sq.Eq{"owner_id": ownerID})
	}

	return qb.OrderBy("id DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
}

// buildItemUpdateQuery builds a partial UPDATE from the set fields of patch.
// updated_at always advances. The statement returns the canonical row.
//
// Returns ErrNothingToUpdate when the patch is empty.
func buildItemUpdateQuery(id int64, patch models.ItemUpdate) (string, []any, error) {
	if patch.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	qb := psql.Update("items").Set("updated_at", sq.Expr("now()"))

	if patch.Title != nil {
		qb = qb.Set("title", *patch.Title)
	}
	if patch.Description != nil {
		qb = qb.Set("description", *patch.Description)
	}
	if patch.IsCompleted != nil {
		qb = qb.Set("is_completed", *patch.IsCompleted)
	}

	return qb.Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, title, description, owner_id, is_completed, created_at, updated_at").
		ToSql()
}
