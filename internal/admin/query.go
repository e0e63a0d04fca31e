package admin

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/raqazhet/informatics/internal/apperr"
)

// ListRequest описывает параметры списочного запроса от админ-консоли
type ListRequest struct {
	Search  string
	Filters map[string]string
	OrderBy string
	Desc    bool
	Limit   int
	Offset  int
}

// ApplyListQuery накладывает на запрос поиск, фильтры и сортировку
// согласно спецификации сущности. Неизвестное поле фильтра или
// сортировки — ошибка валидации
func ApplyListQuery(q *gorm.DB, spec EntitySpec, req ListRequest) (*gorm.DB, error) {
	for _, join := range spec.Joins {
		q = q.Joins(join)
	}

	if req.Search != "" && len(spec.SearchFields) > 0 {
		pattern := "%" + strings.ToLower(req.Search) + "%"
		conds := make([]string, 0, len(spec.SearchFields))
		args := make([]interface{}, 0, len(spec.SearchFields))
		for _, field := range spec.SearchFields {
			conds = append(conds, fmt.Sprintf("LOWER(%s) LIKE ?", field))
			args = append(args, pattern)
		}
		q = q.Where(strings.Join(conds, " OR "), args...)
	}

	for name, value := range req.Filters {
		expr, ok := spec.FilterFields[name]
		if !ok {
			return nil, apperr.Validation(name, "unknown filter field")
		}
		if spec.BoolFilterFields[name] {
			b, err := strconv.ParseBool(value)
			if err != nil {
				return nil, apperr.Validation(name, "invalid boolean value")
			}
			q = q.Where(fmt.Sprintf("%s = ?", expr), b)
			continue
		}
		q = q.Where(fmt.Sprintf("%s = ?", expr), value)
	}

	order := spec.DefaultOrder
	if req.OrderBy != "" {
		expr, ok := spec.SortFields[req.OrderBy]
		if !ok {
			return nil, apperr.Validation(req.OrderBy, "unknown sort field")
		}
		order = expr
		if req.Desc {
			order += " DESC"
		}
	} else if req.Desc {
		return nil, apperr.Validation("desc", "requires order_by")
	}
	if order != "" {
		q = q.Order(order)
	}

	if req.Limit > 0 {
		q = q.Limit(req.Limit)
	}
	if req.Offset > 0 {
		q = q.Offset(req.Offset)
	}
	return q, nil
}
