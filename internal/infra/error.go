package infra

import (
	"errors"
	"log/slog"

	"sarmiento-f5/internal/pkg/errs"
)

type RepositoryErrorKind string

// RepositoryError reports which operation on which stored key failed.
type RepositoryError struct {
	Kind RepositoryErrorKind
	Op   string
	Key  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	msg := string(e.Kind) + ": " + e.Op + " " + e.Key
	if e.err != nil {
		return msg + ": " + e.err.Error()
	}
	return msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, op, key string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
		slog.String("op", op),
		slog.String("key", key),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Error("Repository error", logArgs...)

	if err != nil {
		err = errs.Wrapf(err, "%s %s", op, key)
	}

	return RepositoryError{Kind: kind, Op: op, Key: key, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	KindStoreFailure RepositoryErrorKind = "STORE_FAILURE"
	KindEncode       RepositoryErrorKind = "ENCODE_FAILURE"
)
