package main

import (
	"bytes"
	"testing"
)

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "iconsmith" {
		t.Errorf("expected root command Use to be 'iconsmith', got %q", rootCmd.Use)
	}

	expectedSubcommands := []string{"generate", "preview", "sheet", "publish", "config", "version"}
	commands := rootCmd.Commands()

	nameSet := make(map[string]bool)
	for _, cmd := range commands {
		nameSet[cmd.Name()] = true
	}

	for _, expected := range expectedSubcommands {
		if !nameSet[expected] {
			t.Errorf("expected root command to have subcommand %q", expected)
		}
	}
}

func TestGenerateFlags(t *testing.T) {
	expectedFlags := []string{"output", "manifest", "glyph", "no-glyph"}
	for _, name := range expectedFlags {
		flag := generateCmd.Flags().Lookup(name)
		if flag == nil {
			t.Errorf("expected generate command to have flag %q", name)
		}
	}

	// Verify output has short flag -o
	flag := generateCmd.Flags().ShorthandLookup("o")
	if flag == nil {
		t.Error("expected generate command to have short flag -o for output")
	} else if flag.Name != "output" {
		t.Errorf("expected short flag -o to map to 'output', got %q", flag.Name)
	}
}

func TestPreviewFlags(t *testing.T) {
	expectedFlags := []string{"port", "host", "no-live-reload"}
	for _, name := range expectedFlags {
		flag := previewCmd.Flags().Lookup(name)
		if flag == nil {
			t.Errorf("expected preview command to have flag %q", name)
		}
	}

	// Verify default values
	portFlag := previewCmd.Flags().Lookup("port")
	if portFlag != nil && portFlag.DefValue != "4747" {
		t.Errorf("expected port default to be '4747', got %q", portFlag.DefValue)
	}

	hostFlag := previewCmd.Flags().Lookup("host")
	if hostFlag != nil && hostFlag.DefValue != "localhost" {
		t.Errorf("expected host default to be 'localhost', got %q", hostFlag.DefValue)
	}
}

func TestSheetFlags(t *testing.T) {
	expectedFlags := []string{"output", "format", "columns"}
	for _, name := range expectedFlags {
		flag := sheetCmd.Flags().Lookup(name)
		if flag == nil {
			t.Errorf("expected sheet command to have flag %q", name)
		}
	}
}

func TestPublishFlags(t *testing.T) {
	expectedFlags := []string{"bucket", "prefix", "dry-run"}
	for _, name := range expectedFlags {
		flag := publishCmd.Flags().Lookup(name)
		if flag == nil {
			t.Errorf("expected publish command to have flag %q", name)
		}
	}
}

func TestVersionOutput(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"version"})

	err := rootCmd.Execute()
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	output := buf.String()
	if len(output) == 0 {
		t.Error("expected version command to produce output")
	}

	// Reset for other tests
	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
	rootCmd.SetArgs(nil)
}
