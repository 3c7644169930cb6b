package commands

import (
	"encoding/base64"
	"encoding/hex"

	"github.com/pkg/errors"
)

func (o *options) encode(b []byte) string {
	if o.hex {
		return hex.EncodeToString(b)
	}
	return base64.StdEncoding.EncodeToString(b)
}

// decode never includes s in the error, it may be a secret key.
func (o *options) decode(name, s string) ([]byte, error) {
	var b []byte
	var err error
	if o.hex {
		b, err = hex.DecodeString(s)
	} else {
		b, err = base64.StdEncoding.DecodeString(s)
	}
	if err != nil {
		return nil, errors.Errorf("%s: invalid encoding", name)
	}
	return b, nil
}
