// Package models содержит структуры записей, хранящихся в MongoDB.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Роли пользователей. Роль хранится в записи пользователя и попадает
// в claims токена сессии.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User — запись пользователя в коллекции users.
// Email уникален и используется как ключ входа.
// Хэш пароля наружу не отдаётся.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	Name         string             `bson:"name,omitempty" json:"name,omitempty"`
	Role         string             `bson:"role" json:"role"`
}
