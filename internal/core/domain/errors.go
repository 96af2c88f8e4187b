package domain

import "errors"

// Error kinds. Stores return these (possibly wrapped); services translate
// them into the entity errors below.
var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
	ErrInvalidKey    = errors.New("invalid record key")
)

// EntityError is a user-facing error for one collection. Its message is safe
// to show to clients; errors.Is matches both the EntityError itself and its
// Kind.
type EntityError struct {
	Kind error
	Msg  string
}

func (e *EntityError) Error() string { return e.Msg }

func (e *EntityError) Unwrap() error { return e.Kind }

var (
	ErrUsuarioNotFound       = &EntityError{Kind: ErrNotFound, Msg: "Usuario no encontrado"}
	ErrUsuarioExists         = &EntityError{Kind: ErrAlreadyExists, Msg: "Usuario ya existe"}
	ErrUsuarioInvalidEmail   = &EntityError{Kind: ErrInvalidKey, Msg: "El email es obligatorio"}
	ErrVoluntariadoNotFound  = &EntityError{Kind: ErrNotFound, Msg: "Voluntariado no encontrado"}
	ErrVoluntariadoExists    = &EntityError{Kind: ErrAlreadyExists, Msg: "Voluntariado ya existe"}
	ErrVoluntariadoInvalidID = &EntityError{Kind: ErrInvalidKey, Msg: "Identificador de voluntariado inválido"}
)
