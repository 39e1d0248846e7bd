package main

import (
	"fmt"

	"github.com/alecthomas/kong"
)

type fingerprintCmd struct {
	Key string `help:"The secret key. Prompted for when omitted."`
}

func (cmd *fingerprintCmd) Run(_ *kong.Context) error {
	codec, err := newCodec(cmd.Key)
	if err != nil {
		return err
	}

	fmt.Println(codec.Fingerprint())

	return nil
}
