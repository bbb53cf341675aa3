package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Forbidden           failure.ErrorCode = "Forbidden"
	InvalidPaging       failure.ErrorCode = "InvalidPaging"

	// Объекты недвижимости
	PropertyNotFound      failure.ErrorCode = "PropertyNotFound"
	InvalidPropertyID     failure.ErrorCode = "InvalidPropertyID"
	InvalidProperty       failure.ErrorCode = "InvalidProperty"       // Цена/юниты вне допустимых значений
	InvalidFinancialInput failure.ErrorCode = "InvalidFinancialInput" // price/rent/down в калькуляторе

	// Подписки
	SubscriberNotFound        failure.ErrorCode = "SubscriberNotFound"
	InvalidSubscriptionStatus failure.ErrorCode = "InvalidSubscriptionStatus"
	InvalidWebhookSignature   failure.ErrorCode = "InvalidWebhookSignature"
	InvalidWebhookPayload     failure.ErrorCode = "InvalidWebhookPayload"

	// Внешние интеграции
	IntegrationNotConfigured failure.ErrorCode = "IntegrationNotConfigured"
	TextGenerationFailed     failure.ErrorCode = "TextGenerationFailed"
	PaymentProviderFailed    failure.ErrorCode = "PaymentProviderFailed"
)
