package models

// SubscriptionStatusActive — статус, присваиваемый подписке при создании.
const SubscriptionStatusActive = "active"

// Поля подписки, которые сервер выставляет сам при вставке.
// Остальные поля документа задаёт клиент в объекте info.
const (
	SubscriptionFieldCreatedAt = "createdAt"
	SubscriptionFieldStatus    = "status"
)
