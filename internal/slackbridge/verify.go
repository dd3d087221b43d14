package slackbridge

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// SignatureHeader carries the HMAC signature Slack computes per request.
	SignatureHeader = "X-Slack-Signature"
	// TimestampHeader carries the request timestamp the signature covers.
	TimestampHeader = "X-Slack-Request-Timestamp"

	signatureVersion = "v0"
	// Requests older than this are treated as replays.
	timestampTolerance = 5 * time.Minute
)

var (
	errMissingSignature  = errors.New("missing signature header")
	errMissingTimestamp  = errors.New("missing timestamp header")
	errStaleTimestamp    = errors.New("timestamp outside tolerance")
	errSignatureMismatch = errors.New("signature mismatch")
)

// verifySignature checks the Slack request signature: HMAC-SHA256 over
// "v0:<timestamp>:<body>" with the signing secret, hex encoded.
func verifySignature(body []byte, timestamp, signature, secret string, now time.Time) error {
	signature = strings.ToLower(strings.TrimSpace(signature))
	if signature == "" {
		return errMissingSignature
	}
	timestamp = strings.TrimSpace(timestamp)
	if timestamp == "" {
		return errMissingTimestamp
	}
	issued, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("malformed timestamp: %w", err)
	}
	if drift := now.Sub(time.Unix(issued, 0)); drift > timestampTolerance || drift < -timestampTolerance {
		return errStaleTimestamp
	}

	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s:%s:", signatureVersion, timestamp)
	mac.Write(body)
	expected := signatureVersion + "=" + hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return errSignatureMismatch
	}
	return nil
}
