package register_customer

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("register_customer: invalid input data")

	// ErrPhoneTaken возвращается, когда телефон уже зарегистрирован
	ErrPhoneTaken = errors.New("register_customer: phone already registered")

	// ErrInvalidReferralCode возвращается, когда код не принадлежит ни одному клиенту
	ErrInvalidReferralCode = errors.New("register_customer: invalid referral code")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("register_customer: internal error")
)
