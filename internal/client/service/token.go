package service

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const keyringUser = "session-token"

// TokenStore хранит токен сессии между запусками клиента.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}

// KeyringTokenStore держит токен в системном хранилище ключей.
type KeyringTokenStore struct {
	app string
}

func NewKeyringTokenStore(app string) *KeyringTokenStore {
	return &KeyringTokenStore{app: app}
}

func (s *KeyringTokenStore) Save(token string) error {
	if err := keyring.Set(s.app, keyringUser, token); err != nil {
		return fmt.Errorf("сохранение токена в keyring: %w", err)
	}
	return nil
}

// Load возвращает пустую строку, если токена ещё нет.
func (s *KeyringTokenStore) Load() (string, error) {
	token, err := keyring.Get(s.app, keyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("чтение токена из keyring: %w", err)
	}
	return token, nil
}

func (s *KeyringTokenStore) Clear() error {
	err := keyring.Delete(s.app, keyringUser)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("удаление токена из keyring: %w", err)
	}
	return nil
}
