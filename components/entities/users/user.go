// Package users defines the account record and its collection kind.
package users

import (
	"fmt"
	"strconv"

	"github.com/goliatone/go-admin-console/components/collection"
)

// CollectionName is the collection code used by routes and exports.
const CollectionName = "users"

// Draft field names.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldContact = "contact"
	FieldAddress = "address"
	FieldRole    = "role"
)

// User is an admin console account.
type User struct {
	ID      int    `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Email   string `json:"email" yaml:"email"`
	Contact string `json:"contact" yaml:"contact"`
	Address string `json:"address" yaml:"address"`
	Role    Role   `json:"role" yaml:"role"`
}

// Kind implements collection.Kind for users. Ids are assigned by the store.
type Kind struct{}

var (
	_ collection.Kind[User]     = Kind{}
	_ collection.CategoryLister = Kind{}
)

func (Kind) Name() string { return CollectionName }

func (Kind) Identity(u User) int { return u.ID }

func (Kind) WithIdentity(u User, id int) User {
	u.ID = id
	return u
}

func (Kind) AssignsIdentity() bool { return true }

func (Kind) Fields() []string {
	return []string{FieldName, FieldEmail, FieldContact, FieldAddress, FieldRole}
}

func (k Kind) Blank() collection.Draft {
	draft := collection.Draft{}
	for _, field := range k.Fields() {
		draft[field] = ""
	}
	return draft
}

func (Kind) DraftOf(u User) collection.Draft {
	return collection.Draft{
		"id":         strconv.Itoa(u.ID),
		FieldName:    u.Name,
		FieldEmail:   u.Email,
		FieldContact: u.Contact,
		FieldAddress: u.Address,
		FieldRole:    string(u.Role),
	}
}

// Build never fails: user commits are not validated, blank fields and
// unknown roles included.
func (Kind) Build(d collection.Draft) (User, error) {
	return User{
		Name:    d[FieldName],
		Email:   d[FieldEmail],
		Contact: d[FieldContact],
		Address: d[FieldAddress],
		Role:    Role(d[FieldRole]),
	}, nil
}

// SetField supports the role transition.
func (Kind) SetField(u User, field, value string) (User, error) {
	if field != FieldRole {
		return u, fmt.Errorf("%w: %s", collection.ErrUnknownField, field)
	}
	role, ok := ParseRole(value)
	if !ok {
		return u, fmt.Errorf("%w: role %q", collection.ErrInvalidValue, value)
	}
	u.Role = role
	return u, nil
}

func (Kind) SearchText(u User) []string {
	return []string{u.Name, u.Email}
}

func (Kind) Category(u User) string { return string(u.Role) }

func (Kind) CategoryOptions() []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}

func (Kind) Row(u User) collection.Row {
	return collection.Row{
		{Name: "id", Value: strconv.Itoa(u.ID)},
		{Name: FieldName, Value: u.Name},
		{Name: FieldEmail, Value: u.Email},
		{Name: FieldContact, Value: u.Contact},
		{Name: FieldAddress, Value: u.Address},
		{Name: FieldRole, Value: string(u.Role)},
	}
}
