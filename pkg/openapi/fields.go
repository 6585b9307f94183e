package openapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formkit/pkg/model"
)

var (
	// ErrOperationNotFound is returned when no operation carries the
	// requested operationId.
	ErrOperationNotFound = errors.New("openapi: operation not found")
	// ErrNoRequestBody is returned when the operation has no object schema
	// to derive fields from.
	ErrNoRequestBody = errors.New("openapi: operation has no request body schema")
)

// Vendor extensions read from schemas and operations.
const (
	ExtensionPlaceholder = "x-formkit-placeholder"
	ExtensionOrder       = "x-formkit-order"
	ExtensionType        = "x-formkit-type"
	ExtensionSubmit      = "x-formkit-submit"
)

var requestMediaTypes = []string{
	"application/json",
	"application/x-www-form-urlencoded",
	"multipart/form-data",
}

var methods = []string{"GET", "PUT", "POST", "DELETE", "PATCH", "HEAD", "OPTIONS", "TRACE"}

type operation struct {
	id     string
	method string
	path   string
	op     *openapi3.Operation
}

// Operations lists the operation ids declared by the document, sorted.
// Operations without an id are reported as "method:path".
func Operations(ctx context.Context, data []byte) ([]string, error) {
	ops, err := parseOperations(ctx, data)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(ops))
	for id := range ops {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// LoadFields maps the request body properties of operationID to field
// configs ordered by x-formkit-order, then name.
func LoadFields(ctx context.Context, data []byte, operationID string) ([]model.FieldConfig, error) {
	op, err := findOperation(ctx, data, operationID)
	if err != nil {
		return nil, err
	}
	return fieldsFromOperation(op)
}

// LoadDefinition derives a full form definition: fields plus the
// operation's summary as title, its path and method as the submission
// target, and x-formkit-submit as the submit label.
func LoadDefinition(ctx context.Context, data []byte, operationID string) (model.Definition, error) {
	op, err := findOperation(ctx, data, operationID)
	if err != nil {
		return model.Definition{}, err
	}
	fields, err := fieldsFromOperation(op)
	if err != nil {
		return model.Definition{}, err
	}

	def := model.Definition{
		Title:  strings.TrimSpace(op.op.Summary),
		Action: op.path,
		Method: op.method,
		Fields: fields,
		Submit: model.ButtonProps{Label: stringExtension(op.op.Extensions, ExtensionSubmit), Type: "submit"},
	}
	if def.Title == "" {
		def.Title = op.id
	}
	if err := def.Validate(); err != nil {
		return model.Definition{}, err
	}
	return def, nil
}

func findOperation(ctx context.Context, data []byte, operationID string) (operation, error) {
	ops, err := parseOperations(ctx, data)
	if err != nil {
		return operation{}, err
	}
	op, ok := ops[strings.TrimSpace(operationID)]
	if !ok {
		return operation{}, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}
	return op, nil
}

func parseOperations(ctx context.Context, data []byte) (map[string]operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, errors.New("openapi: document does not contain any paths")
	}

	ops := make(map[string]operation)
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, method := range methods {
			op := item.GetOperation(method)
			if op == nil {
				continue
			}
			id := op.OperationID
			if id == "" {
				id = strings.ToLower(method) + ":" + path
			}
			ops[id] = operation{id: id, method: method, path: path, op: op}
		}
	}
	return ops, nil
}

func fieldsFromOperation(op operation) ([]model.FieldConfig, error) {
	schema := requestSchema(op.op.RequestBody)
	if schema == nil || len(schema.Properties) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoRequestBody, op.id)
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	type ordered struct {
		order int
		field model.FieldConfig
	}
	list := make([]ordered, 0, len(schema.Properties))
	for name, ref := range schema.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		prop := ref.Value
		isRequired := required[name]
		field := model.FieldConfig{
			Name:     name,
			Default:  prop.Default,
			Required: &isRequired,
			Validate: validateTag(prop),
			Input: model.InputConfig{
				Type:             fieldType(prop),
				Label:            firstNonEmpty(prop.Title, name),
				Tip:              strings.TrimSpace(prop.Description),
				Placeholder:      placeholder(prop),
				Disabled:         prop.ReadOnly,
				ShowRequiredSign: isRequired,
			},
		}
		order, ok := intExtension(prop.Extensions, ExtensionOrder)
		if !ok {
			order = int(^uint(0) >> 1)
		}
		list = append(list, ordered{order: order, field: field})
	}

	sort.SliceStable(list, func(i, j int) bool {
		if list[i].order != list[j].order {
			return list[i].order < list[j].order
		}
		return list[i].field.Name < list[j].field.Name
	})

	fields := make([]model.FieldConfig, 0, len(list))
	for _, entry := range list {
		fields = append(fields, entry.field)
	}
	return fields, nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range requestMediaTypes {
		if mt, ok := content[mediaType]; ok && mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func fieldType(schema *openapi3.Schema) model.FieldType {
	if override := stringExtension(schema.Extensions, ExtensionType); override != "" {
		return model.ParseFieldType(override)
	}
	switch firstSchemaType(schema.Type) {
	case openapi3.TypeNumber, openapi3.TypeInteger:
		return model.FieldTypeNumber
	}
	switch strings.ToLower(schema.Format) {
	case "date":
		return model.FieldTypeDate
	case "date-time":
		return model.FieldTypeDatetime
	case "password":
		return model.FieldTypePassword
	case "email":
		return model.FieldTypeEmail
	case "uri", "url":
		return model.FieldTypeURL
	}
	return model.FieldTypeText
}

// validateTag maps string formats and length limits onto validator tags.
// Other schema types carry no tag.
func validateTag(schema *openapi3.Schema) string {
	if kind := firstSchemaType(schema.Type); kind != "" && kind != openapi3.TypeString {
		return ""
	}
	var tags []string
	switch strings.ToLower(schema.Format) {
	case "email":
		tags = append(tags, "email")
	case "uri", "url":
		tags = append(tags, "url")
	case "uuid":
		tags = append(tags, "uuid")
	case "ipv4", "ipv6", "hostname":
		tags = append(tags, strings.ToLower(schema.Format))
	}
	if schema.MinLength > 0 {
		tags = append(tags, fmt.Sprintf("min=%d", schema.MinLength))
	}
	if schema.MaxLength != nil {
		tags = append(tags, fmt.Sprintf("max=%d", *schema.MaxLength))
	}
	return strings.Join(tags, ",")
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func placeholder(schema *openapi3.Schema) string {
	if value := stringExtension(schema.Extensions, ExtensionPlaceholder); value != "" {
		return value
	}
	switch example := schema.Example.(type) {
	case nil:
		return ""
	case string:
		return example
	case float64:
		return strconv.FormatFloat(example, 'f', -1, 64)
	default:
		return fmt.Sprint(example)
	}
}

func stringExtension(ext map[string]any, key string) string {
	switch value := ext[key].(type) {
	case string:
		return strings.TrimSpace(value)
	case json.RawMessage:
		var text string
		if err := json.Unmarshal(value, &text); err == nil {
			return strings.TrimSpace(text)
		}
	}
	return ""
}

func intExtension(ext map[string]any, key string) (int, bool) {
	switch value := ext[key].(type) {
	case float64:
		return int(value), true
	case int:
		return value, true
	case int64:
		return int(value), true
	case json.RawMessage:
		var n float64
		if err := json.Unmarshal(value, &n); err == nil {
			return int(n), true
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return n, true
		}
	}
	return 0, false
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
