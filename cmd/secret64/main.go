package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/codeglen/secret64"
	"golang.org/x/term"
)

type cli struct {
	Encode      encodeCmd      `cmd:"" help:"Encode data with a key-permuted alphabet."`
	Decode      decodeCmd      `cmd:"" help:"Decode data encoded with a key-permuted alphabet."`
	Fingerprint fingerprintCmd `cmd:"" help:"Print the alphabet fingerprint for a key."`
}

func main() {
	var cli cli

	ctx := kong.Parse(&cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func newCodec(key string) (*secret64.Codec, error) {
	if key != "" {
		return secret64.New([]byte(key))
	}

	// No key on the command line; prompt for it without echo.
	b, err := askKey("Enter key: ")
	if err != nil {
		return nil, err
	}

	return secret64.New(b)
}

func askKey(prompt string) ([]byte, error) {
	defer func() { _, _ = fmt.Fprintln(os.Stderr) }()

	_, _ = fmt.Fprint(os.Stderr, prompt)

	return term.ReadPassword(int(os.Stdin.Fd()))
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return os.Stdout, nil
	}

	return os.Create(path)
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return os.Stdin, nil
	}

	return os.Open(path)
}
