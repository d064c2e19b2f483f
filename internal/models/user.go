package models

// User is a locally registered account. The email is normalized to lowercase
// before storage and lookup and is unique across users.
type User struct {
	// Id is a globally unique identifier.
	Id string

	// Name is non-empty display text.
	Name string

	// Email acts as the login key.
	Email string

	// AvatarUrl is optional.
	AvatarUrl string
}
