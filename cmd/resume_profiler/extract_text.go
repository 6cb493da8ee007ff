package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/resume-profiler/internal/document"
)

var extractTextCmd = &cobra.Command{
	Use:   "extract-text",
	Short: "Extract cleaned plain text from a resume file",
	Long:  "Extract plain text from a PDF, Word, or text resume and normalize its whitespace for downstream parsing.",
	RunE:  runExtractText,
}

var (
	extractInputFile  string
	extractOutputFile string
)

func init() {
	extractTextCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to resume file (.pdf, .doc, .docx, .txt)")
	extractTextCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output text file (default: stdout)")
	_ = extractTextCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractTextCmd)
}

func runExtractText(_ *cobra.Command, _ []string) error {
	text, err := extractResumeText(extractInputFile)
	if err != nil {
		return err
	}

	if extractOutputFile == "" {
		_, _ = fmt.Fprintln(os.Stdout, text)
		return nil
	}

	if err := os.WriteFile(extractOutputFile, []byte(text+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", extractOutputFile)
	return nil
}

// extractResumeText reads a resume file and returns its cleaned text
func extractResumeText(path string) (string, error) {
	mediaType := document.MediaTypeForExtension(strings.ToLower(filepath.Ext(path)))
	if mediaType == "" {
		return "", fmt.Errorf("unsupported file extension %q (expected .pdf, .doc, .docx, or .txt)", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file: %w", err)
	}

	text, err := document.ExtractText(document.Document{Data: data, MediaType: mediaType})
	if err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
	}

	return document.CleanText(text), nil
}
