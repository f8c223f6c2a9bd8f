package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/go-playground/validator/v10"

	"rest-explorer/internal/types"
)

var documentValidator = newDocumentValidator()

func newDocumentValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report document key names instead of Go field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func malformedDocument(msg string, cause error) error {
	err := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("malformed document: " + msg)
	if cause != nil {
		err = err.WithCause(cause)
	}
	return err
}

// DecodeDocument parses the raw catalog JSON. Structural keys that decode to
// nothing (Groups, Items, Headers, Body) are reported here because the JSON
// decoder silently leaves them empty.
func DecodeDocument(data []byte) (types.Document, error) {
	var doc types.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return types.Document{}, malformedDocument("invalid JSON", err)
	}
	if doc.Groups == nil {
		return types.Document{}, malformedDocument("Groups must be an array", nil)
	}
	for gi, group := range doc.Groups {
		if group.Items == nil {
			return types.Document{}, malformedDocument(fmt.Sprintf("Groups[%d].Items must be an array", gi), nil)
		}
		for ii, item := range group.Items {
			path := fmt.Sprintf("Groups[%d].Items[%d].Request", gi, ii)
			if item.Request.Headers == nil {
				return types.Document{}, malformedDocument(path+".Headers must be an object", nil)
			}
			if item.Request.Body == nil {
				return types.Document{}, malformedDocument(path+".Body must be an object", nil)
			}
		}
	}
	return doc, nil
}

// ValidateDocument checks required values and id uniqueness: group ids among
// groups, item ids across every group.
func ValidateDocument(doc types.Document) error {
	if err := documentValidator.Struct(doc); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
			return malformedDocument("validation failed", err)
		}
		messages := make([]string, 0, len(fieldErrs))
		for _, fieldErr := range fieldErrs {
			messages = append(messages, fmt.Sprintf("%s failed %s", fieldErr.Namespace(), fieldErr.Tag()))
		}
		return malformedDocument(strings.Join(messages, "; "), err)
	}

	groupIDs := map[string]struct{}{}
	itemIDs := map[string]string{}
	for _, group := range doc.Groups {
		if _, exists := groupIDs[group.UniqueID]; exists {
			return malformedDocument(fmt.Sprintf("duplicate group id %s", group.UniqueID), nil)
		}
		groupIDs[group.UniqueID] = struct{}{}
		for _, item := range group.Items {
			if owner, exists := itemIDs[item.UniqueID]; exists {
				return malformedDocument(fmt.Sprintf("duplicate item id %s (groups %s and %s)", item.UniqueID, owner, group.UniqueID), nil)
			}
			itemIDs[item.UniqueID] = group.UniqueID
		}
	}
	return nil
}
