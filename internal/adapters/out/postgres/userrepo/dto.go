// Package userrepo persists user aggregates in the users table.
package userrepo

import (
	"time"

	"parceltrack/internal/adapters/out/postgres/listingsql"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is the users table row.
type UserDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name         string     `gorm:"type:varchar(255);not null"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	Phone        string     `gorm:"type:varchar(64)"`
	Role         string     `gorm:"type:varchar(32);not null;index"`
	Address      AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	IsActive     bool       `gorm:"not null"`
	CreatedAt    time.Time  `gorm:"type:timestamptz;not null;autoCreateTime:false"`
	UpdatedAt    time.Time  `gorm:"type:timestamptz;not null;autoUpdateTime:false"`
}

func (UserDTO) TableName() string {
	return "users"
}

// AddressDTO is an embedded postal address. An empty street means no address.
type AddressDTO struct {
	Street  string `gorm:"type:varchar(255)"`
	City    string `gorm:"type:varchar(255)"`
	State   string `gorm:"type:varchar(255)"`
	ZipCode string `gorm:"type:varchar(32)"`
	Country string `gorm:"type:varchar(255)"`
}

// FromAddress maps a domain address to its embedded form.
func FromAddress(a kernel.Address) AddressDTO {
	return AddressDTO{Street: a.Street, City: a.City, State: a.State, ZipCode: a.ZipCode, Country: a.Country}
}

// ToAddress maps the embedded form back to a domain address.
func (a AddressDTO) ToAddress() kernel.Address {
	return kernel.Address{Street: a.Street, City: a.City, State: a.State, ZipCode: a.ZipCode, Country: a.Country}
}

var columns = listingsql.Columns{
	"name":      "name",
	"email":     "email",
	"phone":     "phone",
	"role":      "role",
	"isActive":  "is_active",
	"createdAt": "created_at",
}

func fromDomain(u *user.User, now time.Time) UserDTO {
	dto := UserDTO{
		ID:           u.ID().Bytes(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Phone:        u.Phone(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    now,
	}
	if a := u.Address(); a != nil {
		dto.Address = FromAddress(*a)
	}
	return dto
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	profile := user.Profile{Name: dto.Name, Email: dto.Email, Phone: dto.Phone}
	if dto.Address.Street != "" {
		a := dto.Address.ToAddress()
		profile.Address = &a
	}

	return user.RestoreUser(id, profile, dto.PasswordHash, user.Role(dto.Role), dto.IsActive, dto.CreatedAt.UTC())
}
