package settings

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда документ настроек отсутствует
	ErrSettingsNotFound = errors.New("settings.repository: settings not found")

	// ErrTemplateNotFound возвращается, когда шаблон сообщения не найден
	ErrTemplateNotFound = errors.New("settings.repository: template not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("settings.repository: failed to scan row")
)
