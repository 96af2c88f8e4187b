package handler

// --- Request / Response types ---

type usuarioRequest struct {
	User     string `json:"user"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password"`
	Nombre   string `json:"nombre"`
	Tipo     string `json:"tipo"`
}

type voluntariadoRequest struct {
	ID          string `json:"id"`
	Titulo      string `json:"titulo"`
	Usuario     string `json:"usuario"`
	Fecha       string `json:"fecha"`
	Descripcion string `json:"descripcion"`
	Tipo        string `json:"tipo"        validate:"omitempty,oneof=Oferta Peticion"`
	Email       string `json:"email"`
}

// messageResponse is the envelope for every non-data response, success or
// failure: {"message": "<text>"}.
type messageResponse struct {
	Message string `json:"message"`
}

type createdVoluntariadoResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
