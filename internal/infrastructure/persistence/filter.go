package persistence

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/coop-erp/backend/internal/domain/shared"
	"gorm.io/gorm"
)

var columnNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// applyFilter applies pagination, ordering and column filters to a query.
// Column and order-by names are validated against a plain identifier pattern
// so filter keys can never carry SQL.
func applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		if !columnNamePattern.MatchString(key) {
			continue
		}
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	orderBy := filter.OrderBy
	if !columnNamePattern.MatchString(orderBy) {
		orderBy = "created_at"
	}
	dir := "DESC"
	if strings.EqualFold(filter.OrderDir, "asc") {
		dir = "ASC"
	}
	query = query.Order(fmt.Sprintf("%s %s", orderBy, dir))

	return query.Offset(filter.Offset()).Limit(filter.Limit())
}

// applyCountFilter applies only the column filters, for Count queries
func applyCountFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		if !columnNamePattern.MatchString(key) {
			continue
		}
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}
	return query
}
