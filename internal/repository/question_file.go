package repository

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aliskhannn/neet-quiz-bot/internal/domain/entities"
)

var ErrUnsupportedFormat = errors.New("unsupported question file format")

const utf8BOM = "\ufeff"

// FileSource reads questions from a CSV or YAML file chosen by extension.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and parses the file on every call.
func (s *FileSource) Load(_ context.Context) ([]entities.QuestionRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read questions file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".csv", "":
		return ParseQuestionsCSV(bytes.NewReader(data))
	case ".yaml", ".yml":
		return ParseQuestionsYAML(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, s.path)
	}
}

// ParseQuestionsCSV parses a comma-delimited table with a header row.
// Header names are matched case-insensitively. Missing columns and short rows
// yield empty strings; rows are not otherwise validated.
func ParseQuestionsCSV(r io.Reader) ([]entities.QuestionRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []entities.QuestionRecord{}, nil
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	records := make([]entities.QuestionRecord, 0)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		cell := func(column string) string {
			i, ok := columns[column]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		records = append(records, entities.QuestionRecord{
			Chapter:       cell("chapter"),
			Question:      cell("question"),
			OptionA:       cell(entities.ColumnOptionA),
			OptionB:       cell(entities.ColumnOptionB),
			OptionC:       cell(entities.ColumnOptionC),
			OptionD:       cell(entities.ColumnOptionD),
			CorrectOption: cell("correct_option"),
			Explanation:   cell("explanation"),
		})
	}

	return records, nil
}

// ParseQuestionsYAML parses a document of the form `questions: [...]`.
func ParseQuestionsYAML(data []byte) ([]entities.QuestionRecord, error) {
	var wrapper struct {
		Questions []entities.QuestionRecord `yaml:"questions"`
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&wrapper); err != nil {
		if errors.Is(err, io.EOF) {
			return []entities.QuestionRecord{}, nil
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if wrapper.Questions == nil {
		return []entities.QuestionRecord{}, nil
	}

	return wrapper.Questions, nil
}
