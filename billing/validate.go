package billing

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"encore.dev/beta/errs"
)

var validate = validator.New()

func parseID(name, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid " + name}
	}
	return id, nil
}

func parseIDs(name string, raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(raw))
	for i, r := range raw {
		id, err := parseID(name, r)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}
