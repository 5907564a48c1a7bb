package customer

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("customer.repository: customer not found")

	// ErrReferralNotFound возвращается, когда приглашение не найдено
	ErrReferralNotFound = errors.New("customer.repository: referral not found")

	// ErrPhoneExists возвращается при регистрации уже занятого номера
	ErrPhoneExists = errors.New("customer.repository: phone already registered")

	// ErrReferralCodeExists возвращается при совпадении реферального кода
	ErrReferralCodeExists = errors.New("customer.repository: referral code already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("customer.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("customer.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("customer.repository: failed to scan row")
)
