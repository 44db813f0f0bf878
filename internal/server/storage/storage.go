// Package storage описывает хранилища пользователей и задач.
// Реализации лежат в подпакетах sqlite и postgres.
package storage

// Storage объединяет все, что нужно серверу от хранилища
type Storage interface {
	UserStorage
	TaskStorage
	Pinger
	Close() error
}
