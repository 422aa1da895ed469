package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const worksTable = "works"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// publicWorkColumns never include author or contact.
var publicWorkColumns = []string{"id", "slug", "title", "description", "tags", "created_at"}

// buildFindWorksQuery selects at most n postings below cursor, newest id
// first. Ids are fixed-width lowercase hex, so text order equals id order.
func buildFindWorksQuery(cursor string, n int) (string, []any, error) {
	builder := psql.Select(publicWorkColumns...).
		From(worksTable).
		OrderBy("id DESC").
		Limit(uint64(n))

	if cursor != "" {
		builder = builder.Where(sq.Lt{"id": cursor})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindWorkByIDQuery(id string) (string, []any, error) {
	query, args, err := psql.Select(publicWorkColumns...).
		From(worksTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindWorkContactQuery(id string) (string, []any, error) {
	query, args, err := psql.Select("contact").
		From(worksTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildFindWorksByIDsQuery expands ids into an IN list.
func buildFindWorksByIDsQuery(ids []string) (string, []any, error) {
	query, args, err := psql.Select(publicWorkColumns...).
		From(worksTable).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
