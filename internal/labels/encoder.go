// Package labels holds the bijective label-to-code tables the classifiers
// were trained with. The tables are loaded once from the encoders artifact
// at process start and are immutable afterwards, so they are safe to read
// concurrently without locking.
package labels

import (
	"encoding/json"
	"os"
	"sort"

	"fintrack/pkg/errors"
)

// Field identifies one of the four encoded label sets
type Field string

const (
	FieldRisk    Field = "risk"
	FieldHorizon Field = "horizon"
	FieldStock   Field = "stock"
	FieldFund    Field = "mf"
)

var requiredFields = []Field{FieldRisk, FieldHorizon, FieldStock, FieldFund}

// Encoder maps human-readable labels to the integer codes the classifiers
// consume and back. Each field's mapping is a total bijection.
type Encoder struct {
	classes map[Field][]string
	codes   map[Field]map[string]int
}

// Load reads the encoders artifact (a JSON object with the four class
// lists in trained order) and builds the lookup tables. A missing or
// corrupt artifact yields a ModelLoadError naming the file.
func Load(path string) (*Encoder, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.ModelLoadError{Path: path, Err: err}
	}

	var artifact map[Field][]string
	if err := json.Unmarshal(raw, &artifact); err != nil {
		return nil, &errors.ModelLoadError{Path: path, Err: errors.Wrap(err, "decode encoders artifact")}
	}

	enc, err := New(artifact)
	if err != nil {
		return nil, &errors.ModelLoadError{Path: path, Err: err}
	}
	return enc, nil
}

// New builds an encoder directly from class lists. Used by Load and by
// tests that stub the trained label sets.
func New(classes map[Field][]string) (*Encoder, error) {
	enc := &Encoder{
		classes: make(map[Field][]string, len(requiredFields)),
		codes:   make(map[Field]map[string]int, len(requiredFields)),
	}

	for _, field := range requiredFields {
		list, ok := classes[field]
		if !ok || len(list) == 0 {
			return nil, errors.Newf("encoders artifact is missing the %q class list", field)
		}

		codes := make(map[string]int, len(list))
		for i, label := range list {
			if _, dup := codes[label]; dup {
				return nil, errors.Newf("duplicate %s label %q in encoders artifact", field, label)
			}
			codes[label] = i
		}

		enc.classes[field] = append([]string(nil), list...)
		enc.codes[field] = codes
	}

	return enc, nil
}

// Encode maps a label to its trained integer code. Unknown labels yield an
// UnknownLabelError enumerating the valid labels for the field.
func (e *Encoder) Encode(field Field, label string) (int, error) {
	code, ok := e.codes[field][label]
	if !ok {
		return 0, &errors.UnknownLabelError{
			Field: string(field),
			Label: label,
			Valid: e.Classes(field),
		}
	}
	return code, nil
}

// Decode maps a predicted code back to its label. Codes outside the
// trained range indicate an internal-consistency fault.
func (e *Encoder) Decode(field Field, code int) (string, error) {
	classes := e.classes[field]
	if code < 0 || code >= len(classes) {
		return "", &errors.InvalidCodeError{
			Field: string(field),
			Code:  code,
			Size:  len(classes),
		}
	}
	return classes[code], nil
}

// Classes returns a sorted copy of the valid labels for a field
func (e *Encoder) Classes(field Field) []string {
	out := append([]string(nil), e.classes[field]...)
	sort.Strings(out)
	return out
}

// NumClasses returns the number of trained labels for a field
func (e *Encoder) NumClasses(field Field) int {
	return len(e.classes[field])
}
