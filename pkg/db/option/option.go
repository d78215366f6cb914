package option

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QueryOption mutates a gorm query before it is executed by the repository.
type QueryOption func(*gorm.DB) *gorm.DB

// Operator enumerates the comparison operators ApplyOperator understands.
type Operator string

const (
	EQ  Operator = "="
	GT  Operator = ">"
	GTE Operator = ">="
	LT  Operator = "<"
	LTE Operator = "<="
)

// Condition is a single field comparison appended to the WHERE clause.
type Condition struct {
	Field    string
	Operator Operator
	Value    any
}

// QuerySortBy describes an ORDER BY request. Allow is a column allow-list;
// a sort request outside the allow-list falls back to created_at.
type QuerySortBy struct {
	SortBy  string
	OrderBy string
	Allow   map[string]bool
}

// LockingUpdate is a gorm scope enabling pessimistic row locks for every
// query in the transaction. Dialects without FOR UPDATE (sqlite) ignore
// the clause and rely on their single-writer semantics.
func LockingUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

func WithLockingUpdate() QueryOption {
	return func(db *gorm.DB) *gorm.DB {
		return LockingUpdate(db)
	}
}

func WithSortBy(sort QuerySortBy) QueryOption {
	return func(db *gorm.DB) *gorm.DB {
		column := sort.SortBy
		if column == "" || (sort.Allow != nil && !sort.Allow[column]) {
			column = "created_at"
		}

		order := "ASC"
		if strings.EqualFold(sort.OrderBy, "desc") {
			order = "DESC"
		}

		return db.Order(fmt.Sprintf("%s %s", column, order))
	}
}

func ApplyOperator(cond Condition) QueryOption {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(fmt.Sprintf("%s %s ?", cond.Field, cond.Operator), cond.Value)
	}
}

func WithLimit(limit int) QueryOption {
	return func(db *gorm.DB) *gorm.DB {
		if limit > 0 {
			return db.Limit(limit)
		}
		return db
	}
}
