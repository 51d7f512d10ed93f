// Package labels holds the title vocabularies for repeatable list entries and
// the transient per-entry state of the title picker. Vocabularies and URL
// placeholders ship as an embedded YAML document so the contact and web
// pickers stay data-driven.
package labels

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed labels.yaml
var vocabData []byte

// Vocabulary names as used by the pickers.
const (
	VocabContact = "contact"
	VocabWeb     = "web"
)

type document struct {
	Vocabularies map[string][]string `yaml:"vocabularies"`
	Placeholders struct {
		Default string            `yaml:"default"`
		ByTitle map[string]string `yaml:"byTitle"`
	} `yaml:"placeholders"`
}

var (
	vocabOnce sync.Once
	vocabDoc  document
	vocabErr  error
)

func loadDocument() (document, error) {
	vocabOnce.Do(func() {
		if err := yaml.Unmarshal(vocabData, &vocabDoc); err != nil {
			vocabErr = fmt.Errorf("labels: parse embedded vocabularies: %w", err)
		}
	})
	return vocabDoc, vocabErr
}

// Vocabulary returns the predefined titles for the named vocabulary.
// VocabContact serves emails, phones, and addresses; VocabWeb serves links.
// Unknown names return nil.
func Vocabulary(name string) []string {
	doc, err := loadDocument()
	if err != nil {
		return nil
	}
	titles := doc.Vocabularies[name]
	if len(titles) == 0 {
		return nil
	}
	return append([]string(nil), titles...)
}

// Placeholder returns the URL input placeholder for a link title. Lookup is
// case-insensitive and unknown titles fall back to the generic website hint.
func Placeholder(title string) string {
	doc, err := loadDocument()
	if err != nil {
		return ""
	}
	if hint, ok := doc.Placeholders.ByTitle[strings.ToLower(strings.TrimSpace(title))]; ok {
		return hint
	}
	return doc.Placeholders.Default
}
