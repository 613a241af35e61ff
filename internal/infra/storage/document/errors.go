package document

import "errors"

var (
	// ErrEncode возвращается, когда документ не удалось сериализовать
	ErrEncode = errors.New("document.repository: failed to encode document")

	// ErrDecode возвращается, когда документ не удалось десериализовать
	ErrDecode = errors.New("document.repository: failed to decode document")

	// ErrInvalidKey возвращается при пустом виде или идентификаторе документа
	ErrInvalidKey = errors.New("document.repository: invalid document key")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("document.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("document.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("document.repository: failed to scan row")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("document.repository: transaction error")
)
