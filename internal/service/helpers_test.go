package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	txMocks "github.com/SergeyBogomolovv/furniture-resale/pkg/trm/mocks"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// passThroughTx runs callbacks directly, as if every transaction committed.
func passThroughTx(t *testing.T) *txMocks.MockManager {
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, cb func(ctx context.Context) error) error {
				return cb(ctx)
			}).
		Maybe()
	return tx
}
