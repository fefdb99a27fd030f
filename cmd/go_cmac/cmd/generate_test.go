package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func executeCommand(root *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()

	return buf.String(), err
}

func TestGenerateCommand_RFC4493Vector(t *testing.T) {
	output, err := executeCommand(rootCmd,
		"generate",
		"--cipher", "aes",
		"--key", "2B7E151628AED2A6ABF7158809CF4F3C",
		"--message", "6BC1BEE22E409F96E93D7E117393172A",
		"--tag-length", "16",
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !strings.Contains(output, "070A16B46B4D4144F79BDD9DD04A287C") {
		t.Fatalf("expected vector tag in output, got %q", output)
	}
}

func TestGenerateCommand_MissingKey(t *testing.T) {
	// Flag values persist on rootCmd between executions, so clear the key
	// explicitly.
	_, err := executeCommand(rootCmd, "generate", "--key", "", "--message", "00")
	if err == nil {
		t.Fatal("expected an error, got none")
	}
}

func TestGenerateCommand_InvalidTagLength(t *testing.T) {
	_, err := executeCommand(rootCmd,
		"generate",
		"--key", "2B7E151628AED2A6ABF7158809CF4F3C",
		"--tag-length", "15",
	)
	if err == nil {
		t.Fatal("expected an error, got none")
	}
}

func TestVerifyCommand_RoundTrip(t *testing.T) {
	output, err := executeCommand(rootCmd,
		"verify",
		"--cipher", "aes",
		"--key", "2B7E151628AED2A6ABF7158809CF4F3C",
		"--message", "6BC1BEE22E409F96E93D7E117393172A",
		"--tag", "070A16B46B4D4144F79BDD9DD04A287C",
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(output, "mac verified") {
		t.Fatalf("expected confirmation, got %q", output)
	}
}

func TestVerifyCommand_Tampered(t *testing.T) {
	_, err := executeCommand(rootCmd,
		"verify",
		"--key", "2B7E151628AED2A6ABF7158809CF4F3C",
		"--message", "6BC1BEE22E409F96E93D7E117393172A",
		"--tag", "FF0A16B46B4D4144F79BDD9DD04A287C",
	)
	if err == nil {
		t.Fatal("expected verification failure, got none")
	}
}

func TestPrfCommand_RFC4615Vector(t *testing.T) {
	output, err := executeCommand(rootCmd,
		"prf",
		"--key", "000102030405060708090A0B0C0D0E0FEDCB",
		"--message", "000102030405060708090A0B0C0D0E0F10111213",
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(output, "84A348A4A45D235BABFFFC0D2B4DA09A") {
		t.Fatalf("expected vector output, got %q", output)
	}
}

func TestCiphersCommand(t *testing.T) {
	output, err := executeCommand(rootCmd, "ciphers")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if output == "" {
		t.Fatal("expected output, got none")
	}
}
