package salon

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда настройки салона ещё не созданы
	ErrSettingsNotFound = errors.New("salon.repository: settings not found")

	// ErrOffDayNotFound возвращается, когда выходной не найден
	ErrOffDayNotFound = errors.New("salon.repository: off-day not found")

	// ErrOffDayExists возвращается при добавлении повторяющегося правила
	ErrOffDayExists = errors.New("salon.repository: off-day rule already exists")

	// ErrUnknownOffDayKind возвращается для строки с неизвестным типом правила
	ErrUnknownOffDayKind = errors.New("salon.repository: unknown off-day kind")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("salon.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("salon.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("salon.repository: failed to scan row")
)
