package typegen

import "github.com/teranos/dartpoet/dart/spec"

// Generator defines the interface for language-specific generators.
// A generator turns the Result of one package into one source file.
type Generator interface {
	// GenerateFile creates a complete output file from parsed Go types
	GenerateFile(result *Result) (*spec.File, error)

	// FileExtension returns the file extension for this language (e.g., "dart")
	FileExtension() string

	// Language returns the language name (e.g., "dart")
	Language() string
}
