package services

import "errors"

// Классы ошибок на границах внешних вызовов. Контроллеры переводят их
// в HTTP-коды через errors.Is, внутрь отображения сырые ошибки не уходят
var (
	// ErrRetrieval - каталог/конфиг/заказы недоступны; вызывающий падает на фолбэк
	ErrRetrieval = errors.New("источник данных недоступен")
	// ErrValidation - некорректный запрос, отклоняется до любых побочных эффектов
	ErrValidation = errors.New("некорректные данные")
	// ErrAuth - операция требует входа
	ErrAuth = errors.New("требуется авторизация")
	// ErrConflict - конфликт состояния (дубликат), без мутации
	ErrConflict = errors.New("конфликт данных")
)
