// Package generator builds synthetic record corpora.
package generator

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/verte-zerg/tagstat/internal/model"
)

// Limits of a generated record.
const (
	MaxTexts      = 4
	MaxTags       = 3
	MaxTextWords  = 12
	defaultPunct  = ".,!?;:"
	fileExtension = ".jsonl"
)

// DefaultWords is the vocabulary used when no word list is supplied.
var DefaultWords = []string{
	"the", "how", "why", "when", "does", "can", "should", "error", "value",
	"list", "map", "query", "index", "server", "client", "build", "test",
	"loop", "file", "read", "write", "parse", "cache", "lock", "thread",
	"memory", "stack", "heap", "type", "return", "string", "number", "array",
	"request", "response", "timeout", "config", "module", "package", "deploy",
}

// DefaultTags is the tag vocabulary of generated records.
var DefaultTags = []string{
	"go", "rust", "python", "sql", "docker", "kubernetes", "linux",
	"networking", "concurrency", "testing", "performance", "security",
}

// Options controls corpus generation.
type Options struct {
	Files    int
	Records  int
	Words    []string
	Tags     []string
	CapsPct  float64
	PunctPct float64
}

// Generator produces randomized records.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator with a fixed seed. Equal seeds yield equal corpora.
func New(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

type line struct {
	ID    string   `json:"id"`
	Texts []string `json:"texts"`
	Tags  []string `json:"tags,omitempty"`
}

// Record builds one record with 1 to MaxTexts texts and 0 to MaxTags tags.
func (g *Generator) Record(opts Options) model.Record {
	words := opts.Words
	if len(words) == 0 {
		words = DefaultWords
	}
	tags := opts.Tags
	if len(tags) == 0 {
		tags = DefaultTags
	}

	rec := model.Record{Texts: make([]string, 1+g.rnd.Intn(MaxTexts))}
	for i := range rec.Texts {
		rec.Texts[i] = g.text(words, 1+g.rnd.Intn(MaxTextWords), opts)
	}
	tagCount := g.rnd.Intn(MaxTags + 1)
	for i := 0; i < tagCount; i++ {
		rec.Tags = append(rec.Tags, tags[g.rnd.Intn(len(tags))])
	}
	return rec
}

func (g *Generator) text(words []string, count int, opts Options) string {
	parts := make([]string, count)
	for i := range parts {
		word := words[g.rnd.Intn(len(words))]
		if i == 0 {
			word = applyCaps(g.rnd, word, opts.CapsPct)
		}
		if i == count-1 {
			word = applyPunct(g.rnd, word, opts.PunctPct, []rune(defaultPunct))
		}
		parts[i] = word
	}
	return strings.Join(parts, " ")
}

// FileName returns the name of the i-th generated file.
func FileName(i int) string {
	return fmt.Sprintf("site-%02d%s", i+1, fileExtension)
}

// WriteCorpus writes opts.Files files of opts.Records lines each into dir and returns their paths.
func (g *Generator) WriteCorpus(dir string, opts Options) ([]string, error) {
	if opts.Files <= 0 {
		return nil, fmt.Errorf("--files must be > 0")
	}
	if opts.Records < 0 {
		return nil, fmt.Errorf("--records must be >= 0")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	paths := make([]string, 0, opts.Files)
	for i := 0; i < opts.Files; i++ {
		path := filepath.Join(dir, FileName(i))
		if err := g.writeFile(path, opts); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (g *Generator) writeFile(path string, opts Options) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	writer := bufio.NewWriter(file)
	enc := json.NewEncoder(writer)
	enc.SetEscapeHTML(false)
	for i := 0; i < opts.Records; i++ {
		id, err := uuid.NewRandomFromReader(g.rnd)
		if err != nil {
			return fmt.Errorf("failed to generate record id: %w", err)
		}
		rec := g.Record(opts)
		if err := enc.Encode(line{ID: id.String(), Texts: rec.Texts, Tags: rec.Tags}); err != nil {
			return err
		}
	}
	return writer.Flush()
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 {
		return word
	}
	if rnd.Float64() > capsPct {
		return word
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func applyPunct(rnd *rand.Rand, word string, punctPct float64, punctSet []rune) string {
	if punctPct <= 0 || len(punctSet) == 0 {
		return word
	}
	if rnd.Float64() > punctPct {
		return word
	}
	punct := punctSet[rnd.Intn(len(punctSet))]
	return word + string(punct)
}
