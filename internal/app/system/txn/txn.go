// Package txn classifies MongoDB transaction errors so callers can tell a
// server that cannot run transactions (standalone mongod) apart from a
// transaction that legitimately failed.
package txn

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// Server error codes that indicate transactions are unavailable rather than
// failed: 20 IllegalOperation, 51 NoSuchKey (session), 263 OperationNotSupportedInTransaction.
var notSupportedCodes = map[int32]bool{
	20:  true,
	51:  true,
	263: true,
}

// IsNotSupported reports whether err means the server cannot run
// multi-document transactions at all.
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return notSupportedCodes[cmdErr.Code]
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "transaction") && strings.Contains(msg, "replica set"):
		return true
	case strings.Contains(msg, "session") && strings.Contains(msg, "not supported"):
		return true
	case strings.Contains(msg, "transaction") && strings.Contains(msg, "session"):
		return true
	case strings.Contains(msg, "illegal operation") && strings.Contains(msg, "transaction"):
		return true
	}
	return false
}
