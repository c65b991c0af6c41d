package tree

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/tsukinoko-kun/listkit/internal/icons"
)

//go:embed demo.yaml
var demoYAML []byte

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("icon", func(fl validator.FieldLevel) bool {
			return icons.Has(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// Warning describes a configuration value that will be degraded when rendered.
type Warning struct {
	Field   string
	Message string
}

func (w Warning) String() string {
	return w.Field + ": " + w.Message
}

// Parse decodes a YAML document. Nil entries are dropped.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode list tree: %w", err)
	}
	doc.Items = compact(doc.Items)
	return &doc, nil
}

// LoadFile reads, validates and normalizes a list tree file.
func LoadFile(path string) (*Document, []Warning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read list tree: %w", err)
	}
	return load(data)
}

// Demo returns the built-in list tree.
func Demo() (*Document, []Warning, error) {
	return load(demoYAML)
}

func load(data []byte) (*Document, []Warning, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, nil, err
	}
	warnings := Validate(doc)
	doc.Items = Normalize(doc.Items)
	return doc, warnings, nil
}

// Validate checks doc and reports problems as warnings. It never fails.
func Validate(doc *Document) []Warning {
	err := validatorInstance().Struct(doc)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Warning{{Field: "document", Message: err.Error()}}
	}

	warnings := make([]Warning, 0, len(verrs))
	for _, fe := range verrs {
		warnings = append(warnings, Warning{
			Field:   strings.TrimPrefix(fe.Namespace(), "Document."),
			Message: describe(fe),
		})
	}
	return warnings
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of %s, got %v", fe.Param(), fe.Value())
	case "icon":
		return fmt.Sprintf("unknown icon %q", fe.Value())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

func compact(nodes []*Node) []*Node {
	out := nodes[:0]
	for _, node := range nodes {
		if node == nil {
			continue
		}
		node.Children = compact(node.Children)
		out = append(out, node)
	}
	return out
}
