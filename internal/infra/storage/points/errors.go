package points

import "errors"

var (
	// ErrInconsistentEntry возвращается для записи, у которой разница не равна new - old
	ErrInconsistentEntry = errors.New("points.repository: difference does not match balances")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("points.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("points.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("points.repository: failed to scan row")
)
