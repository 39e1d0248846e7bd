package main

import (
	"io"
	"strings"

	"github.com/alecthomas/kong"
)

type decodeCmd struct {
	Input  string `arg:"" optional:"" default:"-" type:"path" help:"The path to the input file."`
	Output string `arg:"" optional:"" default:"-" type:"path" help:"The path to the output file."`

	Key string `help:"The secret key. Prompted for when omitted."`
}

func (cmd *decodeCmd) Run(_ *kong.Context) error {
	codec, err := newCodec(cmd.Key)
	if err != nil {
		return err
	}

	src, err := openInput(cmd.Input)
	if err != nil {
		return err
	}

	defer func() { _ = src.Close() }()

	text, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	data, err := codec.Decode(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}

	dst, err := openOutput(cmd.Output)
	if err != nil {
		return err
	}

	defer func() { _ = dst.Close() }()

	_, err = dst.Write(data)

	return err
}
