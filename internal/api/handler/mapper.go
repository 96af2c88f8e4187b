package handler

import (
	"github.com/voluntariados/backend/internal/core/domain"
)

// --- Request → domain ---

func toUsuario(r usuarioRequest) domain.Usuario {
	return domain.Usuario{
		User:     r.User,
		Email:    r.Email,
		Password: r.Password,
		Nombre:   r.Nombre,
		Tipo:     r.Tipo,
	}
}

func toVoluntariado(r voluntariadoRequest) domain.Voluntariado {
	return domain.Voluntariado{
		ID:          r.ID,
		Titulo:      r.Titulo,
		Usuario:     r.Usuario,
		Fecha:       r.Fecha,
		Descripcion: r.Descripcion,
		Tipo:        domain.TipoVoluntariado(r.Tipo),
		Email:       r.Email,
	}
}
