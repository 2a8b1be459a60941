package config

import (
	"encoding/base64"
	"os"

	"github.com/pkg/errors"
)

var (
	// ErrMissingCredential indicates that no private key source was
	// provided for the GitHub App.
	ErrMissingCredential = errors.New(
		"either a private key path or a base64-encoded private key is required",
	)
	// ErrConflictingCredential indicates that more than one private key
	// source was provided for the GitHub App.
	ErrConflictingCredential = errors.New(
		"a private key path and a base64-encoded private key are mutually exclusive",
	)
	// ErrUnreadableKey indicates that the private key file could not be
	// read.
	ErrUnreadableKey = errors.New("private key file could not be read")
	// ErrInvalidEncoding indicates that the base64-encoded private key
	// could not be decoded.
	ErrInvalidEncoding = errors.New("private key is not valid base64")
)

// Credential encapsulates the identity of a GitHub App: its ID and the
// PEM-encoded private key used to sign authentication assertions. A
// Credential is immutable once loaded.
type Credential struct {
	// AppID specifies the ID of the GitHub App.
	AppID int64
	// PrivateKey is the PEM-encoded RSA private key for the GitHub App.
	PrivateKey []byte
}

// LoadCredential builds a Credential for the GitHub App having the specified
// ID from exactly one of two possible private key sources: a path to a key
// file on disk or a base64-encoded copy of the key itself. Supplying both
// sources or neither is an error. The key's PEM encoding is validated later,
// when the credential is used to construct a client.
func LoadCredential(appID int64, keyPath, keyBase64 string) (Credential, error) {
	credential := Credential{
		AppID: appID,
	}
	switch {
	case keyPath != "" && keyBase64 != "":
		return credential, ErrConflictingCredential
	case keyPath != "":
		keyBytes, err := os.ReadFile(keyPath)
		if err != nil {
			return credential, errors.Wrapf(ErrUnreadableKey, "%s: %s", keyPath, err)
		}
		credential.PrivateKey = keyBytes
	case keyBase64 != "":
		keyBytes, err :=
			base64.StdEncoding.DecodeString(keyBase64)
		if err != nil {
			return credential, errors.Wrap(ErrInvalidEncoding, err.Error())
		}
		credential.PrivateKey = keyBytes
	default:
		return credential, ErrMissingCredential
	}
	return credential, nil
}
