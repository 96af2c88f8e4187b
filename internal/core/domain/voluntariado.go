package domain

// TipoVoluntariado tells whether a posting offers help or asks for it.
type TipoVoluntariado string

const (
	TipoOferta   TipoVoluntariado = "Oferta"
	TipoPeticion TipoVoluntariado = "Peticion"
)

// Valid reports whether t is one of the known posting kinds.
func (t TipoVoluntariado) Valid() bool {
	return t == TipoOferta || t == TipoPeticion
}

// Voluntariado is a volunteer posting. ID is the identity key; when empty on
// insert the store assigns one. Email belongs to the creator and is not
// checked against the usuarios collection.
type Voluntariado struct {
	ID          string           `json:"id" bson:"-" yaml:"id"`
	Titulo      string           `json:"titulo" bson:"titulo" yaml:"titulo"`
	Usuario     string           `json:"usuario" bson:"usuario" yaml:"usuario"`
	Fecha       string           `json:"fecha" bson:"fecha" yaml:"fecha"`
	Descripcion string           `json:"descripcion" bson:"descripcion" yaml:"descripcion"`
	Tipo        TipoVoluntariado `json:"tipo" bson:"tipo" yaml:"tipo"`
	Email       string           `json:"email" bson:"email" yaml:"email"`
}

// VoluntariadoKey returns the identity key of v.
func VoluntariadoKey(v Voluntariado) string { return v.ID }

const (
	MsgVoluntariadoCreado    = "Voluntariado creado con éxito"
	MsgVoluntariadoEliminado = "Voluntariado eliminado con éxito"
)
