package model

import "time"

// User запись во внешнем хранилище идентификации (заполняется после OAuth входа)
type User struct {
	TelegramID  int64     `json:"telegram_id"`
	Login       string    `json:"login"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// Requester пользователь, вызвавший команду
type Requester struct {
	ID       int64
	Username string
	Name     string
}

// Mention имя для сообщений: @username, если есть, иначе имя
func (r Requester) Mention() string {
	if r.Username != "" {
		return "@" + r.Username
	}
	return r.Name
}

// DisplayName имя для OAuth state
func (r Requester) DisplayName() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Name
}
