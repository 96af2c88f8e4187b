// Package seed loads initial records from a YAML (or JSON) file and creates
// them through the record services at start-up.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/voluntariados/backend/internal/core/domain"
	"github.com/voluntariados/backend/internal/core/ports"
)

// Data is the content of a seed file.
type Data struct {
	Usuarios      []domain.Usuario      `yaml:"usuarios"`
	Voluntariados []domain.Voluntariado `yaml:"voluntariados"`
}

// Result counts what Apply did.
type Result struct {
	Created int
	Skipped int
}

// Load reads and decodes the seed file at path.
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes seed data. JSON input is accepted as YAML.
func Parse(raw []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("seed: decode: %w", err)
	}
	for _, v := range d.Voluntariados {
		if v.Tipo != "" && !v.Tipo.Valid() {
			return nil, fmt.Errorf("seed: voluntariado %q: unknown tipo %q", v.Titulo, v.Tipo)
		}
	}
	return &d, nil
}

// Apply creates every record of d. Records whose key is already taken are
// skipped; any other error stops the run. Voluntariados listed without an id
// are assigned a new one each time.
func Apply(
	ctx context.Context,
	d *Data,
	usuarios ports.RecordService[domain.Usuario],
	voluntariados ports.RecordService[domain.Voluntariado],
	log zerolog.Logger,
) (Result, error) {
	var res Result

	for _, u := range d.Usuarios {
		created, err := create(ctx, usuarios, u)
		if err != nil {
			return res, fmt.Errorf("seed: usuario %q: %w", u.Email, err)
		}
		res.count(created)
		if !created {
			log.Debug().Str("email", u.Email).Msg("seed usuario already present")
		}
	}

	for _, v := range d.Voluntariados {
		created, err := create(ctx, voluntariados, v)
		if err != nil {
			return res, fmt.Errorf("seed: voluntariado %q: %w", v.Titulo, err)
		}
		res.count(created)
		if !created {
			log.Debug().Str("id", v.ID).Msg("seed voluntariado already present")
		}
	}

	log.Info().Int("created", res.Created).Int("skipped", res.Skipped).Msg("seed applied")
	return res, nil
}

func create[T any](ctx context.Context, svc ports.RecordService[T], rec T) (bool, error) {
	_, err := svc.Create(ctx, rec)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrAlreadyExists):
		return false, nil
	}
	return false, err
}

func (r *Result) count(created bool) {
	if created {
		r.Created++
		return
	}
	r.Skipped++
}
