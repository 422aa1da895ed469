package validators

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/spotted-relay/models"
	"github.com/go-playground/validator/v10"
)

// Catalog limits.
const (
	DefaultPageLimit = 25
	MaxPageLimit     = 25
	MaxFavorites     = 100
)

// Field names reported by CatalogValidator.
const (
	FieldID      = "id"
	FieldIDs     = "ids"
	FieldLimit   = "limit"
	FieldCursor  = "cursor"
	FieldContact = "contact"
)

var (
	objectIDPattern = regexp.MustCompile(`^[a-fA-F0-9]{24}$`)
	phonePattern    = regexp.MustCompile(`^[\d+\s().-]+$`)
)

type listQuerySchema struct {
	Limit  int    `validate:"min=1,max=25"`
	Cursor string `validate:"omitempty,objectid"`
}

type favoritesSchema struct {
	IDs []string `validate:"min=1,max=100,dive,objectid"`
}

type contactSchema struct {
	Email   string `validate:"omitempty,email"`
	Address string
	Phone   string `validate:"omitempty,min=3,max=32,phone"`
}

var contactKeys = map[string]struct{}{
	"email":   {},
	"address": {},
	"phone":   {},
}

// CatalogValidator validates and normalizes the inputs of the job-posting
// catalog and checks stored contact details against the output schema.
type CatalogValidator struct {
	validate *validator.Validate
}

// NewCatalogValidator constructs a CatalogValidator with the objectid and
// phone rules registered.
func NewCatalogValidator() *CatalogValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return objectIDPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return &CatalogValidator{validate: v}
}

// Validate checks already-normalized catalog inputs: models.ListQuery and
// models.FavoritesRequest.
func (v *CatalogValidator) Validate(_ context.Context, obj any, _ ...string) error {
	switch value := obj.(type) {
	case models.ListQuery:
		return v.firstError(v.validate.Struct(listQuerySchema{Limit: value.Limit, Cursor: value.Cursor}))
	case *models.ListQuery:
		return v.firstError(v.validate.Struct(listQuerySchema{Limit: value.Limit, Cursor: value.Cursor}))
	case models.FavoritesRequest:
		return v.firstError(v.validate.Struct(favoritesSchema{IDs: value.IDs}))
	case *models.FavoritesRequest:
		return v.firstError(v.validate.Struct(favoritesSchema{IDs: value.IDs}))
	default:
		return ErrUnsupportedType
	}
}

// NormalizeID trims id, checks it is 24 hexadecimal characters and returns
// it in lowercase.
func (v *CatalogValidator) NormalizeID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if err := v.validate.Var(id, "objectid"); err != nil {
		return "", newFieldError(FieldID, MsgInvalidID, ErrInvalidID)
	}
	return strings.ToLower(id), nil
}

// ParseListQuery builds a ListQuery from raw query-string values. An absent
// or empty limit means DefaultPageLimit. A nil rawCursor means no cursor; a
// cursor that is present must be a valid id, so an empty one is rejected.
func (v *CatalogValidator) ParseListQuery(rawLimit string, rawCursor *string) (models.ListQuery, error) {
	query := models.ListQuery{Limit: DefaultPageLimit}

	if s := strings.TrimSpace(rawLimit); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil {
			return models.ListQuery{}, newFieldError(FieldLimit, MsgInvalidLimit, ErrInvalidLimit)
		}
		query.Limit = limit
	}
	if rawCursor != nil {
		query.Cursor = strings.TrimSpace(*rawCursor)
		if query.Cursor == "" {
			return models.ListQuery{}, newFieldError(FieldCursor, MsgInvalidID, ErrInvalidID)
		}
	}

	if err := v.Validate(context.Background(), query); err != nil {
		return models.ListQuery{}, err
	}
	query.Cursor = strings.ToLower(query.Cursor)

	return query, nil
}

// NormalizeFavorites validates the requested ids and returns them trimmed,
// lowercased and without duplicates, in first-occurrence order.
func (v *CatalogValidator) NormalizeFavorites(ids []string) ([]string, error) {
	trimmed := make([]string, len(ids))
	for i, id := range ids {
		trimmed[i] = strings.TrimSpace(id)
	}

	if err := v.Validate(context.Background(), models.FavoritesRequest{IDs: trimmed}); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(trimmed))
	unique := make([]string, 0, len(trimmed))
	for _, id := range trimmed {
		id = strings.ToLower(id)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return unique, nil
}

// ContactFromRaw checks stored contact details against the output schema:
// only email, address and phone are allowed, each a string; blank values
// count as absent. A nil raw contact yields an empty Contact.
func (v *CatalogValidator) ContactFromRaw(raw models.RawContact) (models.Contact, error) {
	var values [3]string
	for key, value := range raw {
		if _, ok := contactKeys[key]; !ok {
			return models.Contact{}, ErrInvalidContact
		}
		s, ok := value.(string)
		if !ok {
			return models.Contact{}, ErrInvalidContact
		}
		switch key {
		case "email":
			values[0] = strings.TrimSpace(s)
		case "address":
			values[1] = strings.TrimSpace(s)
		case "phone":
			values[2] = strings.TrimSpace(s)
		}
	}

	contact := contactSchema{Email: values[0], Address: values[1], Phone: values[2]}
	if err := v.validate.Struct(contact); err != nil {
		return models.Contact{}, errors.Join(ErrInvalidContact, err)
	}

	return models.Contact{Email: contact.Email, Address: contact.Address, Phone: contact.Phone}, nil
}

// firstError converts the first failed rule into a *FieldError carrying the
// client-facing message.
func (v *CatalogValidator) firstError(err error) error {
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}

	fe := errs[0]
	switch fe.StructField() {
	case "Limit":
		return newFieldError(FieldLimit, MsgInvalidLimit, ErrInvalidLimit)
	case "Cursor":
		return newFieldError(FieldCursor, MsgInvalidID, ErrInvalidID)
	case "IDs":
		switch fe.Tag() {
		case "min":
			return newFieldError(FieldIDs, MsgEmptyIDs, ErrEmptyIDs)
		case "max":
			return newFieldError(FieldIDs, MsgTooManyIDs, ErrTooManyIDs)
		}
	}

	// dive errors report the element as IDs[i]
	if strings.HasPrefix(fe.StructField(), "IDs[") {
		return newFieldError(FieldIDs, MsgInvalidID, ErrInvalidID)
	}
	return err
}
