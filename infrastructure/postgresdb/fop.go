package postgresdb

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Set of directions for data ordering.
const (
	ASC  = "ASC"
	DESC = "DESC"
)

// AddOrderByClause adds ORDER BY clause to the query buffer. The primary
// key is appended as a tie-breaker so repeated reads return a stable order.
func AddOrderByClause(buf *bytes.Buffer, orderField, pkField, direction string) error {
	quotedOrderField, err := QuoteIdentifier(orderField)
	if err != nil {
		return fmt.Errorf("invalid order field name: %w", err)
	}
	quotedPKField, err := QuoteIdentifier(pkField)
	if err != nil {
		return fmt.Errorf("invalid pk field name: %w", err)
	}

	dir := strings.ToUpper(direction)
	if dir != ASC && dir != DESC {
		return fmt.Errorf("invalid direction: %s", direction)
	}

	buf.WriteString(fmt.Sprintf(" ORDER BY %s %s", quotedOrderField, dir))

	if orderField != pkField {
		buf.WriteString(fmt.Sprintf(", %s %s", quotedPKField, dir))
	}

	return nil
}

// AddLimitClause adds LIMIT clause to the query buffer
func AddLimitClause(limit int, data pgx.NamedArgs, buf *bytes.Buffer) {
	buf.WriteString(" LIMIT @limit")
	data["limit"] = limit
}

// AddWhere appends cond with WHERE or AND depending on what the buffer
// already holds.
func AddWhere(buf *bytes.Buffer, cond string) {
	if strings.Contains(buf.String(), " WHERE ") {
		buf.WriteString(" AND ")
	} else {
		buf.WriteString(" WHERE ")
	}
	buf.WriteString(cond)
}

// LikePattern escapes the LIKE metacharacters in s and wraps it in %.
func LikePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
