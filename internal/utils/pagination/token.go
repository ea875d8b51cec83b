package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const sequenceTokenPrefix = "seq"

// EncodeSequenceToken creates a token that resumes a log scan after the
// given sequence number.
func EncodeSequenceToken(afterSequence uint64) string {
	return EncodeMultiFieldToken(sequenceTokenPrefix, strconv.FormatUint(afterSequence, 10))
}

// DecodeSequenceToken parses a token produced by EncodeSequenceToken.
// An empty token decodes to zero, i.e. the start of the log.
func DecodeSequenceToken(token string) (uint64, error) {
	if token == "" {
		return 0, nil
	}
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return 0, err
	}
	if len(parts) != 2 || parts[0] != sequenceTokenPrefix {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}
	seq, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (sequence parse): %w", err)
	}
	return seq, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), "|"), nil
}
