package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/kong"
)

type encodeCmd struct {
	Input  string `arg:"" optional:"" default:"-" type:"path" help:"The path to the input file."`
	Output string `arg:"" optional:"" default:"-" type:"path" help:"The path to the output file."`

	Key string `help:"The secret key. Prompted for when omitted."`
}

func (cmd *encodeCmd) Run(_ *kong.Context) error {
	codec, err := newCodec(cmd.Key)
	if err != nil {
		return err
	}

	src, err := openInput(cmd.Input)
	if err != nil {
		return err
	}

	defer func() { _ = src.Close() }()

	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	dst, err := openOutput(cmd.Output)
	if err != nil {
		return err
	}

	defer func() { _ = dst.Close() }()

	_, err = fmt.Fprintln(dst, codec.Encode(data))

	return err
}
