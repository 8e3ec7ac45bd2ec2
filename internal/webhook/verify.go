// Package webhook verifies signed deliveries from the identity provider.
//
// The provider signs HMAC-SHA256 over "<id>.<timestamp>.<body>" with a shared
// base64 secret and sends the result in a signature header holding one or
// more space-separated "v1,<base64>" entries. Every failure mode reports the
// same error so a caller cannot be turned into a signature oracle.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"time"
)

var ErrVerificationFailed = errors.New("webhook verification failed")

const defaultTolerance = 5 * time.Minute

type Verifier struct {
	key       []byte
	tolerance time.Duration

	// overridable in tests
	now func() time.Time
}

func NewVerifier(secret string) (*Verifier, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(secret), "whsec_")
	if trimmed == "" {
		return nil, errors.New("webhook secret is empty")
	}
	key, err := base64.StdEncoding.DecodeString(trimmed)
	if err != nil {
		return nil, errors.New("webhook secret is not valid base64")
	}
	return &Verifier{key: key, tolerance: defaultTolerance, now: time.Now}, nil
}

// Verify checks the signature header against the recomputed signature for the
// given message id, timestamp header and raw body. Malformed input, stale
// timestamps and signature mismatches are indistinguishable to the caller.
func (v *Verifier) Verify(msgID, timestamp, signatureHeader string, body []byte) error {
	if msgID == "" || timestamp == "" || signatureHeader == "" {
		return ErrVerificationFailed
	}

	unix, err := strconv.ParseInt(strings.TrimSpace(timestamp), 10, 64)
	if err != nil {
		return ErrVerificationFailed
	}
	sent := time.Unix(unix, 0)
	now := v.now()
	if sent.Before(now.Add(-v.tolerance)) || sent.After(now.Add(v.tolerance)) {
		return ErrVerificationFailed
	}

	expected := v.sign(msgID, timestamp, body)

	for _, entry := range strings.Fields(signatureHeader) {
		version, encoded, found := strings.Cut(entry, ",")
		if !found || version != "v1" {
			continue
		}
		supplied, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			continue
		}
		if hmac.Equal(supplied, expected) {
			return nil
		}
	}
	return ErrVerificationFailed
}

// Sign produces the "v1,<base64>" entry for the given message; used by the
// provider simulator in tests.
func (v *Verifier) Sign(msgID, timestamp string, body []byte) string {
	return "v1," + base64.StdEncoding.EncodeToString(v.sign(msgID, timestamp, body))
}

func (v *Verifier) sign(msgID, timestamp string, body []byte) []byte {
	mac := hmac.New(sha256.New, v.key)
	mac.Write([]byte(msgID))
	mac.Write([]byte("."))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(body)
	return mac.Sum(nil)
}
