package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MrE-Fog/certgenMF/internal/certgen"
)

// SubjectFlags collects distinguished-name input. Flags win over the subject
// file; entries in the file may be a single value or a list, in which case
// the pipeline uses the first element.
type SubjectFlags struct {
	Country     string `help:"Subject country (C)." name:"country" env:"CERTGEN_C"`
	State       string `help:"Subject state or province (ST)." name:"state" env:"CERTGEN_ST"`
	Locality    string `help:"Subject locality (L)." name:"locality" env:"CERTGEN_L"`
	Org         string `help:"Subject organization (O)." name:"org" env:"CERTGEN_O"`
	OrgUnit     string `help:"Subject organizational unit (OU)." name:"org-unit" env:"CERTGEN_OU"`
	CommonName  string `help:"Subject common name (CN)." name:"cn" env:"CERTGEN_CN"`
	SubjectFile string `help:"YAML file of subject attributes (keys C, ST, L, O, OU, CN)." name:"subject-file" type:"existingfile"`
}

// Attributes merges the subject file (if any) and the individual flags into
// pipeline input.
func (s *SubjectFlags) Attributes() (certgen.Attributes, error) {
	attrs := certgen.Attributes{}

	if s.SubjectFile != "" {
		loaded, err := loadSubjectFile(s.SubjectFile)
		if err != nil {
			return nil, err
		}
		attrs = loaded
	}

	flagValues := map[string]string{
		"C":  s.Country,
		"ST": s.State,
		"L":  s.Locality,
		"O":  s.Org,
		"OU": s.OrgUnit,
		"CN": s.CommonName,
	}
	for key, value := range flagValues {
		if value != "" {
			attrs.Set(key, value)
		}
	}

	return attrs, nil
}

// loadSubjectFile reads a YAML mapping of subject attributes. Values may be
// scalars or sequences; sequences are preserved so the pipeline's first-wins
// policy applies.
func loadSubjectFile(path string) (certgen.Attributes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read subject file: %w", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse subject file %s: %w", path, err)
	}

	attrs := certgen.Attributes{}
	for key, value := range doc {
		switch v := value.(type) {
		case string:
			attrs[key] = []string{v}
		case []any:
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("subject file %s: key %s: expected string values", path, key)
				}
				attrs[key] = append(attrs[key], s)
			}
		default:
			return nil, fmt.Errorf("subject file %s: key %s: expected a string or list of strings", path, key)
		}
	}

	return attrs, nil
}
