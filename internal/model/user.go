package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID string `json:"id"`
	Name string `json:"name"`
	Email string `json:"email"`
	Password string `json:"-"` // bcrypt-хэш, наружу не отдаем
	CreatedAt time.Time `json:"created_at"`
}

// NewUser хэширует пароль сразу при создании - пользователя
// с открытым паролем в системе не существует в принципе
func NewUser(name, email, password string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	return User{
		Name: name,
		Email: email,
		Password: string(hash),
	}, nil
}

// CheckPassword сверяет открытый пароль с хэшем
func (u User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
