package psqlbuilder

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

// uniqueViolation код ошибки postgres для нарушения уникального ограничения
const uniqueViolation = "23505"

// builder базовый построитель запросов с плейсхолдерами $1, $2, ...
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select начинает SELECT запрос
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert начинает INSERT запрос
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update начинает UPDATE запрос
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete начинает DELETE запрос
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}

// IsUniqueViolation проверяет, что ошибка вызвана нарушением уникального ограничения
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}

// ConstraintName возвращает имя нарушенного ограничения или пустую строку
func ConstraintName(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}
