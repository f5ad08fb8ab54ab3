package service

import "errors"

// Специфичные ошибки сервисов
var (
	// ErrContainerInactive возвращается при попытке получить рекламу из
	// контейнера, который выключен или на обслуживании.
	ErrContainerInactive = errors.New("container is not active")

	// ErrAdNotLinked возвращается при попытке назначить контейнеру рекламу,
	// не привязанную к его игре.
	ErrAdNotLinked = errors.New("ad is not assigned to this game")
)
