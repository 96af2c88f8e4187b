package domain

// Usuario models a registered person in the system. The email is the
// identity key: a store holds at most one Usuario per email.
//
// Password is kept as received. Clients read it back verbatim, so no hashing
// happens at this layer.
type Usuario struct {
	User     string `json:"user" bson:"user" yaml:"user"`
	Email    string `json:"email" bson:"email" yaml:"email"`
	Password string `json:"password" bson:"password" yaml:"password"`
	Nombre   string `json:"nombre" bson:"nombre" yaml:"nombre"`
	Tipo     string `json:"tipo" bson:"tipo" yaml:"tipo"`
}

// UsuarioKey returns the identity key of u.
func UsuarioKey(u Usuario) string { return u.Email }

const (
	MsgUsuarioCreado    = "Usuario creado con éxito"
	MsgUsuarioEliminado = "Usuario eliminado con éxito"
)
