package command

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jbeshir/product-showcase/internal/datasources"
	"github.com/jbeshir/product-showcase/internal/domain"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// SubmitProductRequest is the raw form data for a product submission.
// Tags is a comma separated list.
type SubmitProductRequest struct {
	Name        string `json:"name" validate:"min=3,max=120"`
	Slug        string `json:"slug" validate:"min=3,max=140,slug"`
	Tagline     string `json:"tagline" validate:"max=200"`
	Description string `json:"description"`
	WebsiteURL  string `json:"website_url" validate:"min=1"`
	Tags        string `json:"tags" validate:"min=1"`
}

// submissionMessages maps a field and failed validation tag to the message shown for it.
var submissionMessages = map[string]map[string]string{
	"name": {
		"min": "Product name is required",
		"max": "name must be less than 120 characters",
	},
	"slug": {
		"min":  "slug name is required",
		"max":  "slug must be less than 140 characters",
		"slug": "Slug can only contain lowercase letters, numbers, and hyphens",
	},
	"tagline": {
		"max": "tagline must be less than 200 characters",
	},
	"website_url": {
		"min": "Website URL is required",
	},
	"tags": {
		"min": "At least one tag is required",
	},
}

// SubmitProduct validates a product submission and stores it as pending review.
type SubmitProduct struct {
	Creator  datasources.ProductCreator
	validate *validator.Validate
}

// NewSubmitProduct creates a properly initialized SubmitProduct command.
func NewSubmitProduct(creator datasources.ProductCreator) *SubmitProduct {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})
	if err := validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("registering slug validation: %v", err))
	}

	return &SubmitProduct{
		Creator:  creator,
		validate: validate,
	}
}

// Execute stores the submission. Failures return a populated FormState alongside the error.
func (c *SubmitProduct) Execute(ctx context.Context, req SubmitProductRequest) (domain.FormState, error) {
	logger := domain.LoggerFromContext(ctx)

	principal := domain.PrincipalFromContext(ctx)
	if principal.UserID == "" {
		return domain.FormState{Message: "You must be logged in to submit a product"}, domain.ErrUnauthenticated
	}
	if principal.OrganizationID == "" {
		return domain.FormState{
			Message: "You must be a member of an organization to submit a product",
		}, domain.ErrUnauthorized
	}

	product, err := c.parse(req)
	if err != nil {
		return validationFailure(err)
	}

	product.UserID = principal.UserID
	product.OrganizationID = principal.OrganizationID
	product.SubmittedBy = principal.Email
	if product.SubmittedBy == "" {
		product.SubmittedBy = "anonymous"
	}

	id, err := c.Creator.CreateProduct(ctx, product)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return validationFailure(err)
		}
		return domain.FormState{Message: "Product submission failed!"},
			fmt.Errorf("%w: creating product: %w", domain.ErrPersistence, err)
	}

	logger.InfoContext(ctx, "product submitted", "product_id", id, "slug", product.Slug)

	return domain.FormState{
		Success: true,
		Message: "Product submitted successfully! It will be reviewed soon.",
	}, nil
}

func (c *SubmitProduct) parse(req SubmitProductRequest) (domain.NewProduct, error) {
	validationErr := &domain.ValidationError{}

	if err := c.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return domain.NewProduct{}, fmt.Errorf("validating submission: %w", err)
		}
		for _, fe := range fieldErrs {
			message, ok := submissionMessages[fe.Field()][fe.Tag()]
			if !ok {
				message = fmt.Sprintf("%s is invalid", fe.Field())
			}
			validationErr.Add(fe.Field(), message)
		}
	}

	tags := parseTags(req.Tags)
	if len(tags) == 0 && validationErr.Fields["tags"] == nil {
		validationErr.Add("tags", submissionMessages["tags"]["min"])
	}

	if len(validationErr.Fields) > 0 {
		return domain.NewProduct{}, validationErr
	}

	return domain.NewProduct{
		Name:        req.Name,
		Slug:        req.Slug,
		Tagline:     req.Tagline,
		Description: req.Description,
		WebsiteURL:  req.WebsiteURL,
		Tags:        tags,
	}, nil
}

// parseTags splits a comma separated tag list, trimming and lowercasing each tag.
func parseTags(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func validationFailure(err error) (domain.FormState, error) {
	state := domain.FormState{Message: "Validation failed"}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		state.Errors = validationErr.Fields
		return state, validationErr
	}
	return state, fmt.Errorf("%w: %w", domain.ErrValidation, err)
}
