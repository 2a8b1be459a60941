package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// signaturePrefix introduces the hex digest in GitHub's signature header.
const signaturePrefix = "sha256="

var (
	// ErrSignaturePrefix indicates that the signature header does not
	// begin with "sha256=".
	ErrSignaturePrefix = errors.New(`signature does not begin with "sha256="`)
	// ErrSignatureEncoding indicates that the signature digest is not
	// valid hex.
	ErrSignatureEncoding = errors.New("signature digest is not valid hex")
	// ErrSignatureMismatch indicates that the signature does not match
	// the payload. It reveals nothing about how the two diverge.
	ErrSignatureMismatch = errors.New("signature does not match payload")
)

// VerifySignature validates that the provided signature, of the form
// "sha256=<hex digest>", is the HMAC-SHA256 of body under secret. The digest
// comparison runs in constant time.
func VerifySignature(signature string, body, secret []byte) error {
	encoded, ok := strings.CutPrefix(signature, signaturePrefix)
	if !ok {
		return ErrSignaturePrefix
	}
	digest, err := hex.DecodeString(encoded)
	if err != nil {
		return errors.Wrap(ErrSignatureEncoding, err.Error())
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write(body) // nolint: errcheck
	if !hmac.Equal(mac.Sum(nil), digest) {
		return ErrSignatureMismatch
	}
	return nil
}

// Signature computes the HMAC-SHA256 of body under secret and formats it the
// way GitHub delivers it: "sha256=<hex digest>". It is the counterpart of
// VerifySignature and is chiefly useful for signing test payloads.
func Signature(body, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body) // nolint: errcheck
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}
