package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"exsum/internal/domain"
)

// ErrMalformedDocument is returned when a pre-parsed document cannot be decoded.
var ErrMalformedDocument = errors.New("malformed parsed document")

const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "definitions": {
    "token": {
      "type": "object",
      "required": ["text", "lemma", "index"],
      "properties": {
        "text": {"type": "string"},
        "lemma": {"type": "string"},
        "tag": {"type": "string"},
        "index": {"type": "integer", "minimum": 0}
      }
    },
    "sentence": {
      "type": "object",
      "required": ["tokens"],
      "properties": {
        "tokens": {"type": "array", "items": {"$ref": "#/definitions/token"}}
      }
    },
    "sentences": {"type": "array", "items": {"$ref": "#/definitions/sentence"}}
  },
  "oneOf": [
    {
      "type": "object",
      "required": ["sentences"],
      "properties": {"sentences": {"$ref": "#/definitions/sentences"}}
    },
    {"$ref": "#/definitions/sentences"}
  ]
}`

var schema = mustSchema(documentSchema)

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("compile document schema: %v", err))
	}
	return s
}

// JSON reads documents already processed by an external NLP pipeline. The
// input is either {"sentences": [...]} or a bare array of sentences, where
// each sentence is {"tokens": [{"text", "lemma", "tag", "index"}, ...]}.
type JSON struct{}

// NewJSON creates a parser for pre-parsed JSON documents.
func NewJSON() *JSON { return &JSON{} }

// Name returns the identifier of this parser implementation.
func (p *JSON) Name() string { return "json" }

// Parse checks the document against its schema, decodes it and checks token ordering.
func (p *JSON) Parse(text string) ([]domain.Sentence, error) {
	data := bytes.TrimSpace([]byte(text))
	if len(data) == 0 {
		return nil, nil
	}
	if err := validateDocument(data); err != nil {
		return nil, err
	}
	var sentences []domain.Sentence
	if data[0] == '{' {
		var doc struct {
			Sentences []domain.Sentence `json:"sentences"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
		sentences = doc.Sentences
	} else if err := json.Unmarshal(data, &sentences); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if err := domain.ValidateDocument(sentences); err != nil {
		return nil, err
	}
	return sentences, nil
}

func validateDocument(data []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if result.Valid() {
		return nil
	}
	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		problems = append(problems, field+": "+desc.Description())
	}
	return fmt.Errorf("%w: %s", ErrMalformedDocument, strings.Join(problems, "; "))
}

var _ domain.Parser = (*JSON)(nil)
