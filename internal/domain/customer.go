package domain

import (
	"fmt"
	"time"
)

// Customer представляет собой сохраненную запись клиента
type Customer struct {
	ID       int64      `json:"id"`
	FullName string     `json:"fullName"`
	Email    string     `json:"email"`
	Phone    string     `json:"phone"`
	Created  time.Time  `json:"created"`
	Updated  *time.Time `json:"updated,omitempty"`
	Deleted  bool       `json:"deleted"`
}

// RegistrationDto запрос на регистрацию клиента
type RegistrationDto struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// String используется в сообщениях об ошибках
func (d RegistrationDto) String() string {
	return fmt.Sprintf("RegistrationDto{fullName=%q, email=%q, phone=%q}", d.FullName, d.Email, d.Phone)
}

// UpdateDto запрос на обновление клиента. Phone == nil оставляет телефон без изменений.
type UpdateDto struct {
	ID       int64   `json:"id"`
	FullName string  `json:"fullName"`
	Phone    *string `json:"phone"`
}

// String используется в сообщениях об ошибках
func (d UpdateDto) String() string {
	phone := "null"
	if d.Phone != nil {
		phone = fmt.Sprintf("%q", *d.Phone)
	}
	return fmt.Sprintf("UpdateDto{id=%d, fullName=%q, phone=%s}", d.ID, d.FullName, phone)
}

// ResponseDto проекция клиента для внешних потребителей
type ResponseDto struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// NewCustomerFromRegistration создает нового активного клиента из запроса на регистрацию
func NewCustomerFromRegistration(dto RegistrationDto, now time.Time) Customer {
	return Customer{
		FullName: dto.FullName,
		Email:    dto.Email,
		Phone:    dto.Phone,
		Created:  now,
		Deleted:  false,
	}
}

// ApplyUpdate переносит изменения из UpdateDto в клиента
func (c *Customer) ApplyUpdate(dto UpdateDto, now time.Time) {
	c.FullName = dto.FullName
	if dto.Phone != nil {
		c.Phone = *dto.Phone
	}
	c.touch(now)
}

// MarkDeleted помечает клиента удаленным. Повторный вызов только обновляет время изменения.
func (c *Customer) MarkDeleted(now time.Time) {
	c.Deleted = true
	c.touch(now)
}

func (c *Customer) touch(now time.Time) {
	updated := now
	c.Updated = &updated
}

// ToResponse строит проекцию клиента
func ToResponse(c Customer) ResponseDto {
	return ResponseDto{
		ID:       c.ID,
		FullName: c.FullName,
		Email:    c.Email,
		Phone:    c.Phone,
	}
}

// ToResponseList строит проекции для списка клиентов
func ToResponseList(customers []Customer) []ResponseDto {
	result := make([]ResponseDto, 0, len(customers))
	for _, c := range customers {
		result = append(result, ToResponse(c))
	}
	return result
}
