package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mikropanel/internal/client"
	"github.com/MrJamesThe3rd/mikropanel/internal/validation"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=importer
type ClientWriter interface {
	Create(ctx context.Context, params client.CreateParams) (*client.Client, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*client.Client, error)
}

type Service struct {
	clients ClientWriter
}

func NewService(clients ClientWriter) *Service {
	return &Service{clients: clients}
}

// Result summarizes an import. Errors are ordered by line.
type Result struct {
	Created []*client.Client
	Errors  []LineError
}

// Import creates one client per valid row. Imported clients get no equipment
// and no proration; a row that fails does not stop the rest.
func (s *Service) Import(ctx context.Context, r io.Reader, actor string) (*Result, error) {
	rows, errs, err := Parse(r)
	if err != nil {
		return nil, err
	}

	res := &Result{Errors: errs}

	for _, row := range rows {
		c, err := s.clients.Create(ctx, client.CreateParams{Params: row.Params, Actor: actor})
		if err != nil {
			msg, ok := rowMessage(err)
			if !ok {
				return nil, fmt.Errorf("line %d: %w", row.Line, err)
			}

			res.Errors = append(res.Errors, LineError{Line: row.Line, Message: msg})

			continue
		}

		if !row.Active {
			if c, err = s.clients.SetActive(ctx, c.ID, false); err != nil {
				return nil, fmt.Errorf("line %d: %w", row.Line, err)
			}
		}

		res.Created = append(res.Created, c)
	}

	sort.SliceStable(res.Errors, func(i, j int) bool { return res.Errors[i].Line < res.Errors[j].Line })

	slog.Info("clients imported", "created", len(res.Created), "rejected", len(res.Errors))

	return res, nil
}

// rowMessage turns a per-row validation failure into a message. Any other
// error aborts the import.
func rowMessage(err error) (string, bool) {
	var verr *validation.Error
	if !errors.As(err, &verr) {
		return "", false
	}

	keys := make([]string, 0, len(verr.Fields))
	for k := range verr.Fields {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + " " + verr.Fields[k]
	}

	return strings.Join(parts, "; "), true
}
